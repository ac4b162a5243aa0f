package declaration

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusResolved = "resolved"
	StatusRejected = "rejected"
)

// Statuses is every value the status column may hold.
var Statuses = []string{StatusPending, StatusApproved, StatusResolved, StatusRejected}

type Declaration struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	IssueTitle   string    `json:"issue_title" gorm:"column:issue_title;not null"`
	Description  string    `json:"description" gorm:"not null"`
	EmployerID   int64     `json:"employer_id" gorm:"column:employer_id;not null"`
	Status       string    `json:"status" gorm:"default:pending"`
	AdminComment *string   `json:"admin_comment,omitempty" gorm:"column:admin_comment"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Declaration) TableName() string {
	return "declarations"
}
