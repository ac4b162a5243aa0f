package maintenance

import "time"

type Maintenance struct {
	ID                  int64      `json:"id" gorm:"primaryKey"`
	InterventionID      int64      `json:"intervention_id" gorm:"column:intervention_id;not null"`
	MaintenanceType     string     `json:"maintenance_type" gorm:"column:maintenance_type;not null"`
	ScheduledDate       time.Time  `json:"scheduled_date" gorm:"column:scheduled_date;type:date;not null"`
	PerformedDate       *time.Time `json:"performed_date,omitempty" gorm:"column:performed_date;type:date"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date,omitempty" gorm:"column:next_maintenance_date;type:date"`
	Observations        *string    `json:"observations,omitempty" gorm:"column:observations"`
	CreatedAt           time.Time  `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt           time.Time  `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Maintenance) TableName() string {
	return "maintenances"
}
