package license

import (
	"log/slog"
	"time"

	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/core/common/validation"
	licensemodel "github.com/itparc/asset-management/internal/core/datamodel/license"
)

type Repository interface {
	List() ([]*licensemodel.License, error)
	Get(id int64) (*licensemodel.License, error)
	EquipmentExists(id int64) (bool, error)
	Create(l *licensemodel.License) error
	Save(l *licensemodel.License) error
	Delete(id int64) error
	// ExpiringBetween returns licenses with from <= expiration_date <= to.
	ExpiringBetween(from, to time.Time) ([]*licensemodel.License, error)
	// ExpiredBefore returns licenses with expiration_date < cutoff.
	ExpiredBefore(cutoff time.Time) ([]*licensemodel.License, error)
}

type Service struct {
	repo   Repository
	now    func() time.Time
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, now: time.Now, logger: logger}
}

func (s *Service) ListLicenses() ([]*licensemodel.License, error) {
	return s.repo.List()
}

func (s *Service) GetLicense(id int64) (*licensemodel.License, error) {
	l, err := s.repo.Get(id)
	if err != nil {
		return nil, ErrLicenseNotFound
	}
	return l, nil
}

func (s *Service) CreateLicense(dto CreateLicenseDTO) (*licensemodel.License, error) {
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

	expiration, _ := validation.ParseDate(dto.ExpirationDate)
	l := &licensemodel.License{
		Name:           dto.Name,
		Type:           dto.Type,
		Key:            dto.Key,
		ExpirationDate: expiration,
		EquipmentID:    dto.EquipmentID,
	}
	if err := s.repo.Create(l); err != nil {
		s.logger.Error("failed to create license", "error", err)
		return nil, internal.NewInternalError("Failed to create license", err)
	}

	s.logger.Info("license created", "license_id", l.ID, "equipment_id", l.EquipmentID)
	return l, nil
}

func (s *Service) UpdateLicense(id int64, dto UpdateLicenseDTO) (*licensemodel.License, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	l, err := s.repo.Get(id)
	if err != nil {
		return nil, ErrLicenseNotFound
	}

	if dto.EquipmentID != nil {
		exists, err := s.repo.EquipmentExists(*dto.EquipmentID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check equipment", err)
		}
		if !exists {
			return nil, ErrUnknownEquipment
		}
		l.EquipmentID = *dto.EquipmentID
	}
	if dto.Name != nil {
		l.Name = *dto.Name
	}
	if dto.Type != nil {
		l.Type = *dto.Type
	}
	if dto.Key != nil {
		l.Key = *dto.Key
	}
	if dto.ExpirationDate != nil {
		expiration, _ := validation.ParseDate(*dto.ExpirationDate)
		l.ExpirationDate = expiration
	}

	if err := s.repo.Save(l); err != nil {
		s.logger.Error("failed to update license", "error", err, "license_id", id)
		return nil, internal.NewInternalError("Failed to update license", err)
	}

	return l, nil
}

func (s *Service) DeleteLicense(id int64) error {
	if _, err := s.repo.Get(id); err != nil {
		return ErrLicenseNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete license", "error", err, "license_id", id)
		return internal.NewInternalError("Failed to delete license", err)
	}
	return nil
}

// ListExpiringSoon returns unexpired licenses within the warning window.
func (s *Service) ListExpiringSoon() ([]*licensemodel.License, error) {
	now := s.now()
	return s.repo.ExpiringBetween(now, now.Add(ExpiringSoonWindow))
}

func (s *Service) ListExpired() ([]*licensemodel.License, error) {
	return s.repo.ExpiredBefore(s.now())
}
