package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LoginRequest - admin login form
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		// Chỉ check required: admin email đến từ env config và có thể
		// dùng TLD nội bộ (.local) mà strict email check sẽ reject
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
}

// LoginResponse chứa access token cho admin session
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"` // seconds
}
