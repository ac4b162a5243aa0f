package maintenance

import (
	"time"

	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/core/common/validation"
)

type CreateMaintenanceDTO struct {
	InterventionID      int64   `json:"intervention_id"`
	MaintenanceType     string  `json:"maintenance_type"`
	ScheduledDate       string  `json:"scheduled_date"`
	PerformedDate       *string `json:"performed_date"`
	NextMaintenanceDate *string `json:"next_maintenance_date"`
	Observations        *string `json:"observations"`
}

func (dto CreateMaintenanceDTO) Validate() *internal.AppError {
	v := validation.New().
		PositiveID("intervention_id", dto.InterventionID).
		Require("maintenance_type", dto.MaintenanceType).
		MaxLen("maintenance_type", dto.MaintenanceType, 255).
		Require("scheduled_date", dto.ScheduledDate).
		Date("scheduled_date", dto.ScheduledDate)
	if dto.PerformedDate != nil {
		v.Date("performed_date", *dto.PerformedDate)
	}
	if dto.NextMaintenanceDate != nil {
		v.Date("next_maintenance_date", *dto.NextMaintenanceDate)
	}
	return v.Err()
}

type UpdateMaintenanceDTO struct {
	InterventionID      *int64  `json:"intervention_id"`
	MaintenanceType     *string `json:"maintenance_type"`
	ScheduledDate       *string `json:"scheduled_date"`
	PerformedDate       *string `json:"performed_date"`
	NextMaintenanceDate *string `json:"next_maintenance_date"`
	Observations        *string `json:"observations"`
}

func (dto UpdateMaintenanceDTO) Validate() *internal.AppError {
	v := validation.New()
	if dto.InterventionID != nil {
		v.PositiveID("intervention_id", *dto.InterventionID)
	}
	if dto.MaintenanceType != nil {
		v.Require("maintenance_type", *dto.MaintenanceType).
			MaxLen("maintenance_type", *dto.MaintenanceType, 255)
	}
	if dto.ScheduledDate != nil {
		v.Require("scheduled_date", *dto.ScheduledDate).
			Date("scheduled_date", *dto.ScheduledDate)
	}
	if dto.PerformedDate != nil {
		v.Date("performed_date", *dto.PerformedDate)
	}
	if dto.NextMaintenanceDate != nil {
		v.Date("next_maintenance_date", *dto.NextMaintenanceDate)
	}
	return v.Err()
}

func parseOptionalDate(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	d, err := validation.ParseDate(*value)
	if err != nil {
		return nil
	}
	return &d
}
