package models

import (
	"fmt"
)

type ErrorDetail struct {
	Code         string `json:"code,omitempty"`
	ErrorMessage error  `json:"message,omitempty"`
}

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}
