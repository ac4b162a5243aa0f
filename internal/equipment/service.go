package equipment

import (
	"log/slog"

	"github.com/itparc/asset-management/internal"
	equipmentmodel "github.com/itparc/asset-management/internal/core/datamodel/equipment"
)

type Repository interface {
	List(filter Filter) ([]*Detail, error)
	GetDetail(id int64) (*Detail, error)
	Get(id int64) (*equipmentmodel.Equipment, error)
	EmployerExists(id int64) (bool, error)
	Create(e *equipmentmodel.Equipment) error
	Save(e *equipmentmodel.Equipment) error
	Delete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListEquipments(filter Filter) ([]*Detail, error) {
	if filter.Status != "" {
		if err := validateStatus(filter.Status); err != nil {
			return nil, err
		}
	}
	return s.repo.List(filter)
}

func validateStatus(status string) *internal.AppError {
	for _, allowed := range equipmentmodel.Statuses {
		if status == allowed {
			return nil
		}
	}
	return internal.NewFieldValidationError("status", "The selected status is invalid.")
}

func (s *Service) GetEquipment(id int64) (*Detail, error) {
	detail, err := s.repo.GetDetail(id)
	if err != nil {
		return nil, ErrEquipmentNotFound
	}
	return detail, nil
}

func (s *Service) CreateEquipment(dto CreateEquipmentDTO) (*Detail, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.EmployerExists(dto.EmployerID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check employer", err)
	}
	if !exists {
		return nil, ErrUnknownEmployer
	}

	eq := &equipmentmodel.Equipment{
		Name:          dto.Name,
		Type:          dto.Type,
		NSC:           dto.NSC,
		Status:        dto.Status,
		IPAddress:     dto.IPAddress,
		SerialNumber:  dto.SerialNumber,
		Processor:     dto.Processor,
		Brand:         dto.Brand,
		OfficeVersion: dto.OfficeVersion,
		Label:         dto.Label,
		EmployerID:    dto.EmployerID,
	}
	if dto.BackupEnabled != nil {
		eq.BackupEnabled = *dto.BackupEnabled
	}

	if err := s.repo.Create(eq); err != nil {
		s.logger.Error("failed to create equipment", "error", err)
		return nil, internal.NewInternalError("Failed to create equipment", err)
	}

	s.logger.Info("equipment created", "equipment_id", eq.ID, "employer_id", eq.EmployerID)
	return s.repo.GetDetail(eq.ID)
}

func (s *Service) UpdateEquipment(id int64, dto UpdateEquipmentDTO) (*Detail, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	eq, err := s.repo.Get(id)
	if err != nil {
		return nil, ErrEquipmentNotFound
	}

	if dto.EmployerID != nil {
		exists, err := s.repo.EmployerExists(*dto.EmployerID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check employer", err)
		}
		if !exists {
			return nil, ErrUnknownEmployer
		}
		eq.EmployerID = *dto.EmployerID
	}

	if dto.Name != nil {
		eq.Name = *dto.Name
	}
	if dto.Type != nil {
		eq.Type = *dto.Type
	}
	if dto.NSC != nil {
		eq.NSC = *dto.NSC
	}
	if dto.Status != nil {
		eq.Status = *dto.Status
	}
	if dto.IPAddress != nil {
		eq.IPAddress = *dto.IPAddress
	}
	if dto.SerialNumber != nil {
		eq.SerialNumber = *dto.SerialNumber
	}
	if dto.Processor != nil {
		eq.Processor = *dto.Processor
	}
	if dto.Brand != nil {
		eq.Brand = *dto.Brand
	}
	if dto.OfficeVersion != nil {
		eq.OfficeVersion = *dto.OfficeVersion
	}
	if dto.Label != nil {
		eq.Label = *dto.Label
	}
	if dto.BackupEnabled != nil {
		eq.BackupEnabled = *dto.BackupEnabled
	}

	if err := s.repo.Save(eq); err != nil {
		s.logger.Error("failed to update equipment", "error", err, "equipment_id", id)
		return nil, internal.NewInternalError("Failed to update equipment", err)
	}

	return s.repo.GetDetail(id)
}

// DeleteEquipment removes the row; attached interventions and licenses go
// with it through the schema's cascade rules.
func (s *Service) DeleteEquipment(id int64) error {
	if _, err := s.repo.Get(id); err != nil {
		return ErrEquipmentNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete equipment", "error", err, "equipment_id", id)
		return internal.NewInternalError("Failed to delete equipment", err)
	}

	s.logger.Info("equipment deleted", "equipment_id", id)
	return nil
}
