package directory

import (
	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/core/common/validation"
)

type ServiceDTO struct {
	Name string `json:"name"`
}

func (dto ServiceDTO) Validate() *internal.AppError {
	return validation.New().
		Require("name", dto.Name).
		MaxLen("name", dto.Name, 255).
		Err()
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
