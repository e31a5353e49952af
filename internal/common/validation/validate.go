package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bitbucket.org/Amartha/go-payment-instruction/internal/common/dateutil"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", e.Field, e.Message))
}

var validate = validator.New()

func init() {
	registerISODate()
	registerNoStartEndSpaces()
}

func ValidateStruct(toValidate interface{}) error {
	// register function to get tag name from json tags.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				errs = multierror.Append(errs, ErrorValidateResponse{
					Field:   valErr.Field(),
					Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
				})
			}
		}
	}

	return errs.ErrorOrNil()
}

func registerISODate() {
	validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		if input == "" {
			return true
		}
		_, ok := dateutil.ParseISODate(input)
		return ok
	})
}

func registerNoStartEndSpaces() {
	validate.RegisterValidation("noStartEndSpaces", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		return str == "" || (str[0] != ' ' && str[len(str)-1] != ' ')
	})
}
