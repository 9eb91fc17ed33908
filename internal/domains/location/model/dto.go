package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateLocationRequest - admin thêm custom location
type CreateLocationRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r CreateLocationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 120),
		),
	)
}

// UpdateLocationRequest - rename hoặc toggle active
type UpdateLocationRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"isActive"`
}

func (r UpdateLocationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 120)),
	)
}
