// Package intervention records technician interventions on equipment.
package intervention

import (
	"github.com/itparc/asset-management/internal"
	equipmentmodel "github.com/itparc/asset-management/internal/core/datamodel/equipment"
	interventionmodel "github.com/itparc/asset-management/internal/core/datamodel/intervention"
)

var (
	ErrInterventionNotFound = internal.NewNotFoundError("Intervention not found", internal.ErrCodeResourceAbsent)
	ErrUnknownEquipment     = internal.NewFieldValidationError("equipment_id", "The selected equipment id is invalid.")
)

// Detail is an intervention row with its equipment embedded.
type Detail struct {
	interventionmodel.Intervention
	Equipment *equipmentmodel.Equipment `json:"equipment" gorm:"-"`
}
