package employer

import (
	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/core/common/validation"
)

type CreateEmployerDTO struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Poste     string `json:"poste"`
	Phone     string `json:"phone"`
	ServiceID int64  `json:"service_id"`
}

func (dto CreateEmployerDTO) Validate() *internal.AppError {
	return validation.New().
		Require("full_name", dto.FullName).
		MaxLen("full_name", dto.FullName, 255).
		Require("email", dto.Email).
		Email("email", dto.Email).
		MaxLen("email", dto.Email, 255).
		Require("poste", dto.Poste).
		MaxLen("poste", dto.Poste, 255).
		Require("phone", dto.Phone).
		MaxLen("phone", dto.Phone, 255).
		PositiveID("service_id", dto.ServiceID).
		Err()
}

// UpdateEmployerDTO carries partial updates; nil means "leave untouched".
type UpdateEmployerDTO struct {
	FullName  *string `json:"full_name"`
	Email     *string `json:"email"`
	Poste     *string `json:"poste"`
	Phone     *string `json:"phone"`
	ServiceID *int64  `json:"service_id"`
}

func (dto UpdateEmployerDTO) Validate() *internal.AppError {
	v := validation.New().
		RequireIfSet("full_name", dto.FullName).
		RequireIfSet("email", dto.Email).
		RequireIfSet("poste", dto.Poste).
		RequireIfSet("phone", dto.Phone)
	if dto.FullName != nil {
		v.MaxLen("full_name", *dto.FullName, 255)
	}
	if dto.Email != nil {
		v.Email("email", *dto.Email).MaxLen("email", *dto.Email, 255)
	}
	if dto.Poste != nil {
		v.MaxLen("poste", *dto.Poste, 255)
	}
	if dto.Phone != nil {
		v.MaxLen("phone", *dto.Phone, 255)
	}
	if dto.ServiceID != nil {
		v.PositiveID("service_id", *dto.ServiceID)
	}
	return v.Err()
}

type SearchDTO struct {
	Name string `json:"name"`
}

func (dto SearchDTO) Validate() *internal.AppError {
	return validation.New().
		Require("name", dto.Name).
		MaxLen("name", dto.Name, 255).
		Err()
}
