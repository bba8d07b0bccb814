package models

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Validate checks if the account meets all validation requirements
func (a *Account) Validate() error {
	return validate.Struct(a)
}

// BeforeCreate sets up any necessary fields before creation
func (a *Account) BeforeCreate() {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
}
