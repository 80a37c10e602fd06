package config

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate runs struct-tag validation on a request DTO.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
