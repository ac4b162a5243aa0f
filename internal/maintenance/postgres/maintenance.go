package postgres

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	interventionmodel "github.com/itparc/asset-management/internal/core/datamodel/intervention"
	maintenancemodel "github.com/itparc/asset-management/internal/core/datamodel/maintenance"
	"github.com/itparc/asset-management/internal/maintenance"
)

type MaintenanceRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewMaintenanceRepository(db *gorm.DB, logger *slog.Logger) *MaintenanceRepository {
	return &MaintenanceRepository{db: db, logger: logger}
}

func (r *MaintenanceRepository) List(interventionID int64) ([]*maintenance.Detail, error) {
	var rows []*maintenancemodel.Maintenance
	q := r.db.Model(&maintenancemodel.Maintenance{})
	if interventionID > 0 {
		q = q.Where("intervention_id = ?", interventionID)
	}
	if err := q.Order("scheduled_date desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list maintenances: %w", err)
	}
	return r.attachInterventions(rows)
}

func (r *MaintenanceRepository) attachInterventions(rows []*maintenancemodel.Maintenance) ([]*maintenance.Detail, error) {
	details := make([]*maintenance.Detail, 0, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.InterventionID)
	}

	interventions := make(map[int64]*interventionmodel.Intervention)
	if len(ids) > 0 {
		var linked []*interventionmodel.Intervention
		if err := r.db.Where("id IN ?", ids).Find(&linked).Error; err != nil {
			return nil, fmt.Errorf("failed to load interventions: %w", err)
		}
		for _, iv := range linked {
			interventions[iv.ID] = iv
		}
	}

	for _, row := range rows {
		details = append(details, &maintenance.Detail{
			Maintenance:  *row,
			Intervention: interventions[row.InterventionID],
		})
	}
	return details, nil
}

func (r *MaintenanceRepository) Get(id int64) (*maintenancemodel.Maintenance, error) {
	var m maintenancemodel.Maintenance
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("maintenance %d not found", id)
		}
		return nil, fmt.Errorf("failed to get maintenance: %w", err)
	}
	return &m, nil
}

func (r *MaintenanceRepository) GetDetail(id int64) (*maintenance.Detail, error) {
	m, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	details, err := r.attachInterventions([]*maintenancemodel.Maintenance{m})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (r *MaintenanceRepository) InterventionExists(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&interventionmodel.Intervention{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count interventions: %w", err)
	}
	return count > 0, nil
}

func (r *MaintenanceRepository) Create(m *maintenancemodel.Maintenance) error {
	return r.db.Create(m).Error
}

func (r *MaintenanceRepository) Save(m *maintenancemodel.Maintenance) error {
	return r.db.Save(m).Error
}

func (r *MaintenanceRepository) Delete(id int64) error {
	return r.db.Delete(&maintenancemodel.Maintenance{}, id).Error
}
