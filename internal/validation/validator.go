package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	RateMax  = 999.9999
	YearsMax = 99
)

type Validator struct{ v *validator.Validate }

func New() *Validator {
	v := validator.New()

	// report json names so messages line up with form fields
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	// DECIMAL(7,4) rate
	_ = v.RegisterValidation("rate", func(fl validator.FieldLevel) bool {
		f, ok := number(fl.Field())
		return ok && f >= 0 && f <= RateMax
	})
	// whole years in 0..99
	_ = v.RegisterValidation("years", func(fl validator.FieldLevel) bool {
		f, ok := number(fl.Field())
		return ok && f >= 0 && f <= YearsMax && math.Abs(f-math.Round(f)) < 1e-9
	})

	return &Validator{v: v}
}

func number(f reflect.Value) (float64, bool) {
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return f.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(f.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(f.Uint()), true
	}
	return 0, false
}

func (cv *Validator) Validate(i any) error { return cv.v.Struct(i) }

// Fields validates i and returns field -> message, or nil when clean.
func (cv *Validator) Fields(i any) map[string]string {
	err := cv.Validate(i)
	if err == nil {
		return nil
	}
	out := map[string]string{}
	for _, fe := range ToFieldErrors(err) {
		if _, seen := out[fe.Field]; !seen {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		out = append(out, FieldError{Field: e.Field(), Message: message(e)})
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Required."
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Max %s characters.", e.Param())
		}
		return "Must be <= " + e.Param() + "."
	case "gte":
		return "Must be >= " + e.Param() + "."
	case "lte":
		return "Must be <= " + e.Param() + "."
	case "rate":
		return "Must be 0–999.9999."
	case "years":
		return "Must be 0–99."
	case "oneof":
		return "Must be one of: " + e.Param() + "."
	case "datetime":
		return "Must be a date (YYYY-MM-DD)."
	default:
		return e.Tag() + " validation failed"
	}
}
