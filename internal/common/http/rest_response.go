package http

import (
	"errors"

	"bitbucket.org/Amartha/go-payment-instruction/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok {
			res.Message = msg
		}
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, statusCode int, errs error) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: "validation error",
	}
	var data *multierror.Error
	if errors.As(errs, &data) {
		res.Errors = data.Errors
	}

	return c.JSON(statusCode, res)
}
