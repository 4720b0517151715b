package model

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// MaxAmount bounds every money field a client can send.
const MaxAmount = 1e15

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Date is checked as the time it wraps, so "required" rejects the zero time.
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		if d, ok := f.Interface().(Date); ok {
			return d.Time
		}
		return nil
	}, Date{})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && math.Abs(f) <= MaxAmount
	})
	return v
}

// Validate runs the validate tags of doc and reports the first failing
// field as an ErrValidation.
func Validate(doc interface{}) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return Invalid("%v", err)
	}
	return Invalid("%s", describe(fields[0]))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of " + fe.Param()
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "gte":
		return fe.Field() + " must be at least " + fe.Param()
	case "amount":
		return fe.Field() + " is out of range"
	default:
		return fe.Field() + " is invalid"
	}
}
