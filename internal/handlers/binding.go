package handlers

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hxudev/currency_exchange_api/internal/dto"
)

// currencyNameRegexp accepts letters, CJK characters and spaces only.
var currencyNameRegexp = regexp.MustCompile(`^[a-zA-Z\p{Han}\s]+$`)

// RegisterValidators installs custom validation rules on Gin's binding
// validator. Must run once before routes are served.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencyname", func(fl validator.FieldLevel) bool {
			return currencyNameRegexp.MatchString(fl.Field().String())
		})
	}
}

// validationDetails converts a binding error into the per-field detail list
// of the validation envelope. Non-validator errors (malformed JSON and the
// like) become a single body-level detail.
func validationDetails(req interface{}, err error) []dto.ValidationErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.ValidationErrorDetail{{
			Field:   "body",
			Message: "Invalid request format: " + err.Error(),
		}}
	}

	details := make([]dto.ValidationErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, dto.ValidationErrorDetail{
			Field:   jsonFieldName(req, fe.StructField()),
			Message: messageForTag(fe),
			Value:   fe.Value(),
		})
	}
	return details
}

// jsonFieldName resolves a struct field to its json tag name.
func jsonFieldName(req interface{}, structField string) string {
	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return structField
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := f.Tag.Get("json")
		if tag == "" {
			tag = f.Tag.Get("form")
		}
		if name := strings.Split(tag, ",")[0]; name != "" && name != "-" {
			return name
		}
	}
	return structField
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is a required field"
	case "min":
		return "is shorter than the minimum length of " + fe.Param()
	case "max":
		return "is longer than the maximum length of " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be greater than " + fe.Param()
	case "currencyname":
		return "may only contain letters, CJK characters and spaces"
	default:
		return "failed validation rule " + fe.Tag()
	}
}
