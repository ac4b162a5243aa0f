package intervention

import (
	"time"

	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/core/common/validation"
)

type CreateInterventionDTO struct {
	Date           string `json:"date"`
	TechnicianName string `json:"technician_name"`
	Note           string `json:"note"`
	EquipmentID    int64  `json:"equipment_id"`
}

func (dto CreateInterventionDTO) Validate() *internal.AppError {
	return validation.New().
		Require("date", dto.Date).
		Date("date", dto.Date).
		Require("technician_name", dto.TechnicianName).
		Require("note", dto.Note).
		PositiveID("equipment_id", dto.EquipmentID).
		Err()
}

func (dto CreateInterventionDTO) ParsedDate() time.Time {
	d, _ := validation.ParseDate(dto.Date)
	return d
}

type UpdateInterventionDTO struct {
	Date           *string `json:"date"`
	TechnicianName *string `json:"technician_name"`
	Note           *string `json:"note"`
	EquipmentID    *int64  `json:"equipment_id"`
}

func (dto UpdateInterventionDTO) Validate() *internal.AppError {
	v := validation.New().
		RequireIfSet("technician_name", dto.TechnicianName).
		RequireIfSet("note", dto.Note)
	if dto.Date != nil {
		v.Require("date", *dto.Date).Date("date", *dto.Date)
	}
	if dto.EquipmentID != nil {
		v.PositiveID("equipment_id", *dto.EquipmentID)
	}
	return v.Err()
}
