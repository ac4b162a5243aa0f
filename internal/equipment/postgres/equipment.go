package postgres

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	employermodel "github.com/itparc/asset-management/internal/core/datamodel/employer"
	equipmentmodel "github.com/itparc/asset-management/internal/core/datamodel/equipment"
	"github.com/itparc/asset-management/internal/equipment"
)

type EquipmentRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewEquipmentRepository(db *gorm.DB, logger *slog.Logger) *EquipmentRepository {
	return &EquipmentRepository{db: db, logger: logger}
}

func (r *EquipmentRepository) List(filter equipment.Filter) ([]*equipment.Detail, error) {
	var rows []*equipmentmodel.Equipment
	q := r.db.Model(&equipmentmodel.Equipment{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.EmployerID > 0 {
		q = q.Where("employer_id = ?", filter.EmployerID)
	}
	if err := q.Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list equipments: %w", err)
	}
	return r.attachEmployers(rows)
}

func (r *EquipmentRepository) attachEmployers(rows []*equipmentmodel.Equipment) ([]*equipment.Detail, error) {
	details := make([]*equipment.Detail, 0, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.EmployerID)
	}

	employers := make(map[int64]*employermodel.Employer)
	if len(ids) > 0 {
		var owners []*employermodel.Employer
		if err := r.db.Where("id IN ?", ids).Find(&owners).Error; err != nil {
			return nil, fmt.Errorf("failed to load employers: %w", err)
		}
		for _, owner := range owners {
			employers[owner.ID] = owner
		}
	}

	for _, row := range rows {
		details = append(details, &equipment.Detail{
			Equipment: *row,
			Employer:  employers[row.EmployerID],
		})
	}
	return details, nil
}

func (r *EquipmentRepository) GetDetail(id int64) (*equipment.Detail, error) {
	eq, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	details, err := r.attachEmployers([]*equipmentmodel.Equipment{eq})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (r *EquipmentRepository) Get(id int64) (*equipmentmodel.Equipment, error) {
	var eq equipmentmodel.Equipment
	if err := r.db.First(&eq, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("equipment %d not found", id)
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return &eq, nil
}

func (r *EquipmentRepository) EmployerExists(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&employermodel.Employer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count employers: %w", err)
	}
	return count > 0, nil
}

func (r *EquipmentRepository) Create(e *equipmentmodel.Equipment) error {
	return r.db.Create(e).Error
}

func (r *EquipmentRepository) Save(e *equipmentmodel.Equipment) error {
	return r.db.Save(e).Error
}

func (r *EquipmentRepository) Delete(id int64) error {
	return r.db.Delete(&equipmentmodel.Equipment{}, id).Error
}
