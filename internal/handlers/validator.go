package handlers

import (
	stderrors "errors"
	"fmt"

	"finance-dashboard/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the echo validator backed by the dashboard's validation rules
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.NewValidator().GetValidate()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ValidationDetails renders validator errors as "field: rule" lines
func ValidationDetails(err error) []string {
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s: is required", fe.Field()))
		case "oneof":
			details = append(details, fmt.Sprintf("%s: must be one of [%s]", fe.Field(), fe.Param()))
		case "money":
			details = append(details, fmt.Sprintf("%s: must be a decimal amount with at most %d decimal places", fe.Field(), validation.MaxMoneyScale))
		case "currency_code":
			details = append(details, fmt.Sprintf("%s: must be a 3-letter currency code", fe.Field()))
		case "date":
			details = append(details, fmt.Sprintf("%s: must be YYYY-MM-DD or RFC 3339", fe.Field()))
		default:
			if fe.Param() != "" {
				details = append(details, fmt.Sprintf("%s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			} else {
				details = append(details, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
			}
		}
	}
	return details
}
