package user

import "time"

const (
	RoleAdmin    = "Admin"
	RoleEmployer = "Employer"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"full_name" gorm:"column:full_name;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         string    `json:"role" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (User) TableName() string {
	return "users"
}
