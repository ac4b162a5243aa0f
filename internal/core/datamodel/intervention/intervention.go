package intervention

import "time"

type Intervention struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	Date           time.Time `json:"date" gorm:"type:date;not null"`
	TechnicianName string    `json:"technician_name" gorm:"column:technician_name;not null"`
	Note           string    `json:"note" gorm:"not null"`
	EquipmentID    int64     `json:"equipment_id" gorm:"column:equipment_id;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Intervention) TableName() string {
	return "interventions"
}
