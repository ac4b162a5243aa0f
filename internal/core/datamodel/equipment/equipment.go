package equipment

import "time"

const (
	StatusActive     = "active"
	StatusOnHold     = "on_hold"
	StatusInProgress = "in_progress"
)

// Statuses is the closed set accepted for the equipment status column.
var Statuses = []string{StatusActive, StatusOnHold, StatusInProgress}

type Equipment struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Type          string    `json:"type" gorm:"not null"`
	NSC           string    `json:"nsc" gorm:"column:nsc;not null"`
	Status        string    `json:"status" gorm:"not null"`
	IPAddress     string    `json:"ip_address" gorm:"column:ip_address;not null"`
	SerialNumber  string    `json:"serial_number" gorm:"column:serial_number;not null"`
	Processor     string    `json:"processor" gorm:"not null"`
	Brand         string    `json:"brand" gorm:"not null"`
	OfficeVersion string    `json:"office_version" gorm:"column:office_version;not null"`
	Label         string    `json:"label" gorm:"not null"`
	BackupEnabled bool      `json:"backup_enabled" gorm:"column:backup_enabled;default:false"`
	EmployerID    int64     `json:"employer_id" gorm:"column:employer_id;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Equipment) TableName() string {
	return "equipments"
}
