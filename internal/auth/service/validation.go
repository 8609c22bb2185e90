package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validator checks request structs against their validate tags and renders
// every violation as a readable message.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json field names so messages match the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return passwordComplex(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate returns one message per violated rule, nil when s is valid.
func (v *Validator) Validate(s any) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "alphanum":
		return fmt.Sprintf("%s may only contain letters and digits", field)
	case "password":
		return fmt.Sprintf("%s must contain an uppercase letter, a lowercase letter, a digit and a symbol", field)
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}

// passwordComplex requires one character from each class: upper, lower,
// digit and symbol.
func passwordComplex(password string) bool {
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsSymbol(r) || unicode.IsPunct(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
