package license

import "time"

type License struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	Type           string    `json:"type" gorm:"not null"`
	Key            string    `json:"key" gorm:"not null"`
	ExpirationDate time.Time `json:"expiration_date" gorm:"column:expiration_date;type:date;not null"`
	EquipmentID    int64     `json:"equipment_id" gorm:"column:equipment_id;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (License) TableName() string {
	return "licenses"
}
