package postgres

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	employermodel "github.com/itparc/asset-management/internal/core/datamodel/employer"
	servicemodel "github.com/itparc/asset-management/internal/core/datamodel/service"
)

type DirectoryRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewDirectoryRepository(db *gorm.DB, logger *slog.Logger) *DirectoryRepository {
	return &DirectoryRepository{db: db, logger: logger}
}

func (r *DirectoryRepository) GetAll() ([]*servicemodel.Service, error) {
	var services []*servicemodel.Service
	if err := r.db.Order("name asc").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (r *DirectoryRepository) GetByID(id int64) (*servicemodel.Service, error) {
	var svc servicemodel.Service
	if err := r.db.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service %d not found", id)
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &svc, nil
}

func (r *DirectoryRepository) NameTaken(name string, excludeID int64) (bool, error) {
	var count int64
	q := r.db.Model(&servicemodel.Service{}).Where("name = ?", name)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count services: %w", err)
	}
	return count > 0, nil
}

func (r *DirectoryRepository) Create(s *servicemodel.Service) error {
	return r.db.Create(s).Error
}

func (r *DirectoryRepository) Update(s *servicemodel.Service) error {
	return r.db.Save(s).Error
}

func (r *DirectoryRepository) SearchByName(fragment string) ([]*servicemodel.Service, error) {
	var services []*servicemodel.Service
	pattern := "%" + fragment + "%"
	if err := r.db.Where("LOWER(name) LIKE LOWER(?)", pattern).Order("name asc").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to search services: %w", err)
	}
	return services, nil
}

func (r *DirectoryRepository) DeleteWithReassignment(id int64, fallbackName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var target *servicemodel.Service
		var survivor servicemodel.Service
		err := tx.Where("id <> ?", id).Order("id asc").First(&survivor).Error
		switch {
		case err == nil:
			target = &survivor
		case errors.Is(err, gorm.ErrRecordNotFound):
			target = &servicemodel.Service{Name: fallbackName}
			if err := tx.Create(target).Error; err != nil {
				return fmt.Errorf("failed to create fallback service: %w", err)
			}
		default:
			return fmt.Errorf("failed to find surviving service: %w", err)
		}

		if err := tx.Model(&employermodel.Employer{}).
			Where("service_id = ?", id).
			Update("service_id", target.ID).Error; err != nil {
			return fmt.Errorf("failed to reassign employers: %w", err)
		}

		if err := tx.Delete(&servicemodel.Service{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete service: %w", err)
		}
		return nil
	})
}
