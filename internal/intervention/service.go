package intervention

import (
	"log/slog"

	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/core/common/validation"
	interventionmodel "github.com/itparc/asset-management/internal/core/datamodel/intervention"
)

type Repository interface {
	List(equipmentID int64) ([]*interventionmodel.Intervention, error)
	Get(id int64) (*interventionmodel.Intervention, error)
	GetDetail(id int64) (*Detail, error)
	EquipmentExists(id int64) (bool, error)
	Create(i *interventionmodel.Intervention) error
	Save(i *interventionmodel.Intervention) error
	Delete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListInterventions returns all interventions, narrowed to one equipment when
// equipmentID is positive.
func (s *Service) ListInterventions(equipmentID int64) ([]*interventionmodel.Intervention, error) {
	return s.repo.List(equipmentID)
}

func (s *Service) GetIntervention(id int64) (*Detail, error) {
	detail, err := s.repo.GetDetail(id)
	if err != nil {
		return nil, ErrInterventionNotFound
	}
	return detail, nil
}

func (s *Service) CreateIntervention(dto CreateInterventionDTO) (*interventionmodel.Intervention, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.EquipmentExists(dto.EquipmentID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check equipment", err)
	}
	if !exists {
		return nil, ErrUnknownEquipment
	}

	iv := &interventionmodel.Intervention{
		Date:           dto.ParsedDate(),
		TechnicianName: dto.TechnicianName,
		Note:           dto.Note,
		EquipmentID:    dto.EquipmentID,
	}
	if err := s.repo.Create(iv); err != nil {
		s.logger.Error("failed to create intervention", "error", err)
		return nil, internal.NewInternalError("Failed to create intervention", err)
	}

	s.logger.Info("intervention created", "intervention_id", iv.ID, "equipment_id", iv.EquipmentID)
	return iv, nil
}

func (s *Service) UpdateIntervention(id int64, dto UpdateInterventionDTO) (*interventionmodel.Intervention, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	iv, err := s.repo.Get(id)
	if err != nil {
		return nil, ErrInterventionNotFound
	}

	if dto.EquipmentID != nil {
		exists, err := s.repo.EquipmentExists(*dto.EquipmentID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check equipment", err)
		}
		if !exists {
			return nil, ErrUnknownEquipment
		}
		iv.EquipmentID = *dto.EquipmentID
	}
	if dto.Date != nil {
		d, _ := validation.ParseDate(*dto.Date)
		iv.Date = d
	}
	if dto.TechnicianName != nil {
		iv.TechnicianName = *dto.TechnicianName
	}
	if dto.Note != nil {
		iv.Note = *dto.Note
	}

	if err := s.repo.Save(iv); err != nil {
		s.logger.Error("failed to update intervention", "error", err, "intervention_id", id)
		return nil, internal.NewInternalError("Failed to update intervention", err)
	}

	return iv, nil
}

func (s *Service) DeleteIntervention(id int64) error {
	if _, err := s.repo.Get(id); err != nil {
		return ErrInterventionNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete intervention", "error", err, "intervention_id", id)
		return internal.NewInternalError("Failed to delete intervention", err)
	}
	return nil
}
