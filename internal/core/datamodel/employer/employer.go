package employer

import "time"

type Employer struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"column:user_id;uniqueIndex;not null"`
	Poste     string    `json:"poste" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	ServiceID int64     `json:"service_id" gorm:"column:service_id;not null"`
	IsActive  bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Employer) TableName() string {
	return "employers"
}
