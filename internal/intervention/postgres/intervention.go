package postgres

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	equipmentmodel "github.com/itparc/asset-management/internal/core/datamodel/equipment"
	interventionmodel "github.com/itparc/asset-management/internal/core/datamodel/intervention"
	"github.com/itparc/asset-management/internal/intervention"
)

type InterventionRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewInterventionRepository(db *gorm.DB, logger *slog.Logger) *InterventionRepository {
	return &InterventionRepository{db: db, logger: logger}
}

func (r *InterventionRepository) List(equipmentID int64) ([]*interventionmodel.Intervention, error) {
	var rows []*interventionmodel.Intervention
	q := r.db.Model(&interventionmodel.Intervention{})
	if equipmentID > 0 {
		q = q.Where("equipment_id = ?", equipmentID)
	}
	if err := q.Order("date desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list interventions: %w", err)
	}
	return rows, nil
}

func (r *InterventionRepository) Get(id int64) (*interventionmodel.Intervention, error) {
	var iv interventionmodel.Intervention
	if err := r.db.First(&iv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("intervention %d not found", id)
		}
		return nil, fmt.Errorf("failed to get intervention: %w", err)
	}
	return &iv, nil
}

func (r *InterventionRepository) GetDetail(id int64) (*intervention.Detail, error) {
	iv, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	var eq equipmentmodel.Equipment
	if err := r.db.First(&eq, iv.EquipmentID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load equipment: %w", err)
		}
		return &intervention.Detail{Intervention: *iv}, nil
	}
	return &intervention.Detail{Intervention: *iv, Equipment: &eq}, nil
}

func (r *InterventionRepository) EquipmentExists(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&equipmentmodel.Equipment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count equipments: %w", err)
	}
	return count > 0, nil
}

func (r *InterventionRepository) Create(i *interventionmodel.Intervention) error {
	return r.db.Create(i).Error
}

func (r *InterventionRepository) Save(i *interventionmodel.Intervention) error {
	return r.db.Save(i).Error
}

func (r *InterventionRepository) Delete(id int64) error {
	return r.db.Delete(&interventionmodel.Intervention{}, id).Error
}
