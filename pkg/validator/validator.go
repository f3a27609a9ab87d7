package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern      = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
	personNamePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their json names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("phone", validatePhone)
	_ = v.RegisterValidation("personname", validatePersonName)
	_ = v.RegisterValidation("isodate", validateISODate)
	_ = v.RegisterValidation("hhmm", validateClock)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "phone":
				errors[field] = field + " must be a valid phone number"
			case "personname":
				errors[field] = field + " must be at least 2 characters and contain only letters and spaces"
			case "isodate":
				errors[field] = field + " must be a date in YYYY-MM-DD format"
			case "hhmm":
				errors[field] = field + " must be a time in HH:MM format"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func validatePersonName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	return len(name) >= 2 && personNamePattern.MatchString(name)
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

func validateClock(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != len("15:04") {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}
