package equipment

import (
	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/core/common/validation"
	equipmentmodel "github.com/itparc/asset-management/internal/core/datamodel/equipment"
)

type CreateEquipmentDTO struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	NSC           string `json:"nsc"`
	Status        string `json:"status"`
	IPAddress     string `json:"ip_address"`
	SerialNumber  string `json:"serial_number"`
	Processor     string `json:"processor"`
	Brand         string `json:"brand"`
	OfficeVersion string `json:"office_version"`
	Label         string `json:"label"`
	BackupEnabled *bool  `json:"backup_enabled"`
	EmployerID    int64  `json:"employer_id"`
}

func (dto CreateEquipmentDTO) Validate() *internal.AppError {
	return validation.New().
		Require("name", dto.Name).MaxLen("name", dto.Name, 255).
		Require("type", dto.Type).MaxLen("type", dto.Type, 255).
		Require("nsc", dto.NSC).MaxLen("nsc", dto.NSC, 255).
		Require("status", dto.Status).
		OneOf("status", dto.Status, equipmentmodel.Statuses).
		Require("ip_address", dto.IPAddress).MaxLen("ip_address", dto.IPAddress, 255).
		Require("serial_number", dto.SerialNumber).MaxLen("serial_number", dto.SerialNumber, 255).
		Require("processor", dto.Processor).MaxLen("processor", dto.Processor, 255).
		Require("brand", dto.Brand).MaxLen("brand", dto.Brand, 255).
		Require("office_version", dto.OfficeVersion).MaxLen("office_version", dto.OfficeVersion, 255).
		Require("label", dto.Label).MaxLen("label", dto.Label, 255).
		PositiveID("employer_id", dto.EmployerID).
		Err()
}

type UpdateEquipmentDTO struct {
	Name          *string `json:"name"`
	Type          *string `json:"type"`
	NSC           *string `json:"nsc"`
	Status        *string `json:"status"`
	IPAddress     *string `json:"ip_address"`
	SerialNumber  *string `json:"serial_number"`
	Processor     *string `json:"processor"`
	Brand         *string `json:"brand"`
	OfficeVersion *string `json:"office_version"`
	Label         *string `json:"label"`
	BackupEnabled *bool   `json:"backup_enabled"`
	EmployerID    *int64  `json:"employer_id"`
}

func (dto UpdateEquipmentDTO) Validate() *internal.AppError {
	v := validation.New()
	for field, value := range map[string]*string{
		"name": dto.Name, "type": dto.Type, "nsc": dto.NSC,
		"ip_address": dto.IPAddress, "serial_number": dto.SerialNumber,
		"processor": dto.Processor, "brand": dto.Brand,
		"office_version": dto.OfficeVersion, "label": dto.Label,
	} {
		if value != nil {
			v.Require(field, *value).MaxLen(field, *value, 255)
		}
	}
	if dto.Status != nil {
		v.OneOf("status", *dto.Status, equipmentmodel.Statuses)
	}
	if dto.EmployerID != nil {
		v.PositiveID("employer_id", *dto.EmployerID)
	}
	return v.Err()
}
