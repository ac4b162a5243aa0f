package postgres

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	equipmentmodel "github.com/itparc/asset-management/internal/core/datamodel/equipment"
	licensemodel "github.com/itparc/asset-management/internal/core/datamodel/license"
)

type LicenseRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewLicenseRepository(db *gorm.DB, logger *slog.Logger) *LicenseRepository {
	return &LicenseRepository{db: db, logger: logger}
}

func (r *LicenseRepository) List() ([]*licensemodel.License, error) {
	var rows []*licensemodel.License
	if err := r.db.Order("expiration_date asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}
	return rows, nil
}

func (r *LicenseRepository) Get(id int64) (*licensemodel.License, error) {
	var l licensemodel.License
	if err := r.db.First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("license %d not found", id)
		}
		return nil, fmt.Errorf("failed to get license: %w", err)
	}
	return &l, nil
}

func (r *LicenseRepository) EquipmentExists(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&equipmentmodel.Equipment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count equipments: %w", err)
	}
	return count > 0, nil
}

func (r *LicenseRepository) Create(l *licensemodel.License) error {
	return r.db.Create(l).Error
}

func (r *LicenseRepository) Save(l *licensemodel.License) error {
	return r.db.Save(l).Error
}

func (r *LicenseRepository) Delete(id int64) error {
	return r.db.Delete(&licensemodel.License{}, id).Error
}

func (r *LicenseRepository) ExpiringBetween(from, to time.Time) ([]*licensemodel.License, error) {
	var rows []*licensemodel.License
	err := r.db.Where("expiration_date >= ? AND expiration_date <= ?", from, to).
		Order("expiration_date asc").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring licenses: %w", err)
	}
	return rows, nil
}

func (r *LicenseRepository) ExpiredBefore(cutoff time.Time) ([]*licensemodel.License, error) {
	var rows []*licensemodel.License
	err := r.db.Where("expiration_date < ?", cutoff).
		Order("expiration_date asc").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expired licenses: %w", err)
	}
	return rows, nil
}
