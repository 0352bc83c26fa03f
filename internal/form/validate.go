package form

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPosition   = "position"
	FieldDepartment = "department"
	FieldSalary     = "salary"
	FieldIsActive   = "is_active"
)

var fieldMessages = map[string]string{
	FieldName:       "Name is required",
	FieldEmail:      "Email is required",
	FieldPosition:   "Position is required",
	FieldDepartment: "Department is required",
	FieldSalary:     "Valid salary is required",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		_, err := parseSalary(fl.Field().String())
		return err == nil
	})

	return v
}

var errInvalidSalary = errors.New("salary must be a positive number")

// parseSalary accepts plain decimal input such as "75000" or "75000.50".
func parseSalary(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, err
	}

	if !d.IsPositive() {
		return decimal.Zero, errInvalidSalary
	}

	return d, nil
}

// check validates trimmed values and returns one message per failing field.
func check(v Values) map[string]string {
	trimmed := v
	trimmed.Name = strings.TrimSpace(v.Name)
	trimmed.Email = strings.TrimSpace(v.Email)
	trimmed.Salary = strings.TrimSpace(v.Salary)

	errs := map[string]string{}

	err := validate.Struct(trimmed)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs[FieldName] = err.Error()
		return errs
	}

	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.Field()]; ok {
			errs[fe.Field()] = msg
		}
	}

	return errs
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
