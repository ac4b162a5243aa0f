package auth

import (
	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/core/common/validation"
)

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (dto LoginDTO) Validate() *internal.AppError {
	return validation.New().
		Require("email", dto.Email).
		Email("email", dto.Email).
		Require("password", dto.Password).
		Err()
}

type LoginResponse struct {
	Token string    `json:"token"`
	Role  Role      `json:"role"`
	User  LoginUser `json:"user"`
}

type LoginUser struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
