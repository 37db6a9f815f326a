package service

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// FieldError 單一欄位的驗證失敗，供表單重繪時顯示
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UserFields 使用者表單中允許寫入的欄位
type UserFields struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"-"`
}

const passwordRules = "min=6,password_strength"

// Validator 建立與更新共用的欄位規則；password 規則可依情境略過
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	if err := v.RegisterValidation("password_strength", passwordStrength); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
}

// passwordStrength 至少一個大寫字母 (A-Z) 與一個數字
func passwordStrength(fl validator.FieldLevel) bool {
	var upper, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return upper && digit
}

// Validate 依 name、email、password 順序回傳每個欄位第一個失敗的規則
func (v *Validator) Validate(f UserFields, checkPassword bool) []FieldError {
	errs := []FieldError{}
	errs = append(errs, toFieldErrors(v.validate.Struct(f), "")...)
	if checkPassword {
		errs = append(errs, toFieldErrors(v.validate.Var(f.Password, passwordRules), "password")...)
	}
	return errs
}

func toFieldErrors(err error, field string) []FieldError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: field, Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if name == "" {
			name = field
		}
		out = append(out, FieldError{Field: name, Message: message(name, fe.Tag(), fe.Param())})
	}
	return out
}

func message(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "email is not a valid address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, param)
	case "password_strength":
		return "password must contain at least one uppercase letter and one digit"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
