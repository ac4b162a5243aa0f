package license

import (
	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/core/common/validation"
)

type CreateLicenseDTO struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Key            string `json:"key"`
	ExpirationDate string `json:"expiration_date"`
	EquipmentID    int64  `json:"equipment_id"`
}

func (dto CreateLicenseDTO) Validate() *internal.AppError {
	return validation.New().
		Require("name", dto.Name).MaxLen("name", dto.Name, 255).
		Require("type", dto.Type).MaxLen("type", dto.Type, 255).
		Require("key", dto.Key).MaxLen("key", dto.Key, 255).
		Require("expiration_date", dto.ExpirationDate).
		Date("expiration_date", dto.ExpirationDate).
		PositiveID("equipment_id", dto.EquipmentID).
		Err()
}

type UpdateLicenseDTO struct {
	Name           *string `json:"name"`
	Type           *string `json:"type"`
	Key            *string `json:"key"`
	ExpirationDate *string `json:"expiration_date"`
	EquipmentID    *int64  `json:"equipment_id"`
}

func (dto UpdateLicenseDTO) Validate() *internal.AppError {
	v := validation.New()
	if dto.Name != nil {
		v.Require("name", *dto.Name).MaxLen("name", *dto.Name, 255)
	}
	if dto.Type != nil {
		v.Require("type", *dto.Type).MaxLen("type", *dto.Type, 255)
	}
	if dto.Key != nil {
		v.Require("key", *dto.Key).MaxLen("key", *dto.Key, 255)
	}
	if dto.ExpirationDate != nil {
		v.Require("expiration_date", *dto.ExpirationDate).
			Date("expiration_date", *dto.ExpirationDate)
	}
	if dto.EquipmentID != nil {
		v.PositiveID("equipment_id", *dto.EquipmentID)
	}
	return v.Err()
}
