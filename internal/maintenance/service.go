package maintenance

import (
	"log/slog"

	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/core/common/validation"
	maintenancemodel "github.com/itparc/asset-management/internal/core/datamodel/maintenance"
)

type Repository interface {
	List(interventionID int64) ([]*Detail, error)
	Get(id int64) (*maintenancemodel.Maintenance, error)
	GetDetail(id int64) (*Detail, error)
	InterventionExists(id int64) (bool, error)
	Create(m *maintenancemodel.Maintenance) error
	Save(m *maintenancemodel.Maintenance) error
	Delete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListMaintenances(interventionID int64) ([]*Detail, error) {
	return s.repo.List(interventionID)
}

func (s *Service) GetMaintenance(id int64) (*Detail, error) {
	detail, err := s.repo.GetDetail(id)
	if err != nil {
		return nil, ErrMaintenanceNotFound
	}
	return detail, nil
}

func (s *Service) CreateMaintenance(dto CreateMaintenanceDTO) (*Detail, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.InterventionExists(dto.InterventionID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check intervention", err)
	}
	if !exists {
		return nil, ErrUnknownIntervention
	}

	scheduled, _ := validation.ParseDate(dto.ScheduledDate)
	m := &maintenancemodel.Maintenance{
		InterventionID:      dto.InterventionID,
		MaintenanceType:     dto.MaintenanceType,
		ScheduledDate:       scheduled,
		PerformedDate:       parseOptionalDate(dto.PerformedDate),
		NextMaintenanceDate: parseOptionalDate(dto.NextMaintenanceDate),
		Observations:        dto.Observations,
	}

	if err := s.repo.Create(m); err != nil {
		s.logger.Error("failed to create maintenance", "error", err)
		return nil, internal.NewInternalError("Failed to create maintenance", err)
	}

	s.logger.Info("maintenance created", "maintenance_id", m.ID, "intervention_id", m.InterventionID)
	return s.repo.GetDetail(m.ID)
}

func (s *Service) UpdateMaintenance(id int64, dto UpdateMaintenanceDTO) (*Detail, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	m, err := s.repo.Get(id)
	if err != nil {
		return nil, ErrMaintenanceNotFound
	}

	if dto.InterventionID != nil {
		exists, err := s.repo.InterventionExists(*dto.InterventionID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check intervention", err)
		}
		if !exists {
			return nil, ErrUnknownIntervention
		}
		m.InterventionID = *dto.InterventionID
	}
	if dto.MaintenanceType != nil {
		m.MaintenanceType = *dto.MaintenanceType
	}
	if dto.ScheduledDate != nil {
		scheduled, _ := validation.ParseDate(*dto.ScheduledDate)
		m.ScheduledDate = scheduled
	}
	if dto.PerformedDate != nil {
		m.PerformedDate = parseOptionalDate(dto.PerformedDate)
	}
	if dto.NextMaintenanceDate != nil {
		m.NextMaintenanceDate = parseOptionalDate(dto.NextMaintenanceDate)
	}
	if dto.Observations != nil {
		m.Observations = dto.Observations
	}

	if err := s.repo.Save(m); err != nil {
		s.logger.Error("failed to update maintenance", "error", err, "maintenance_id", id)
		return nil, internal.NewInternalError("Failed to update maintenance", err)
	}

	return s.repo.GetDetail(id)
}

func (s *Service) DeleteMaintenance(id int64) error {
	if _, err := s.repo.Get(id); err != nil {
		return ErrMaintenanceNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete maintenance", "error", err, "maintenance_id", id)
		return internal.NewInternalError("Failed to delete maintenance", err)
	}
	return nil
}
