// Package statistics assembles the dashboard rollups. The numbers come from
// aggregate queries and are served through a short TTL cache; staleness up to
// the freshness window is accepted rather than invalidating on writes.
package statistics

import "time"

// MonthCount is one month's tally within the current year.
type MonthCount struct {
	Month int `json:"month" db:"month"`
	Year  int `json:"year" db:"year"`
	Count int `json:"count" db:"count"`
}

type RecentUser struct {
	ID        int64     `json:"id" db:"id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type RecentEquipment struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Type         string `json:"type" db:"type"`
	Status       string `json:"status" db:"status"`
	EmployerName string `json:"employer_name,omitempty" db:"employer_name"`
}

type RecentDeclaration struct {
	ID           int64     `json:"id" db:"id"`
	IssueTitle   string    `json:"issue_title" db:"issue_title"`
	Status       string    `json:"status" db:"status"`
	EmployerName string    `json:"employer_name,omitempty" db:"employer_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type RecentIntervention struct {
	ID             int64     `json:"id" db:"id"`
	Date           time.Time `json:"date" db:"date"`
	TechnicianName string    `json:"technician_name" db:"technician_name"`
	EquipmentName  string    `json:"equipment_name" db:"equipment_name"`
}

type ServiceDistribution struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	EmployersCount int    `json:"employers_count" db:"employers_count"`
}

type UserStats struct {
	Total              int                 `json:"total"`
	Admins             int                 `json:"admins"`
	Employers          int                 `json:"employers"`
	ActiveEmployers    int                 `json:"active_employers"`
	InactiveEmployers  int                 `json:"inactive_employers"`
	RecentUsers        []RecentUser        `json:"recent_users"`
	EmployersByService map[string]int      `json:"employers_by_service"`
}

type EquipmentStats struct {
	Total               int               `json:"total"`
	Active              int               `json:"active"`
	OnHold              int               `json:"on_hold"`
	InProgress          int               `json:"in_progress"`
	ByType              map[string]int    `json:"by_type"`
	ByBrand             map[string]int    `json:"by_brand"`
	BackupEnabledCount  int               `json:"backup_enabled_count"`
	BackupDisabledCount int               `json:"backup_disabled_count"`
	Recent              []RecentEquipment `json:"recent"`
}

type ServiceStats struct {
	Total                 int                   `json:"total"`
	WithEmployers         int                   `json:"with_employers"`
	WithoutEmployers      int                   `json:"without_employers"`
	EmployersDistribution []ServiceDistribution `json:"employers_distribution"`
}

type DeclarationStats struct {
	Total    int                 `json:"total"`
	Pending  int                 `json:"pending"`
	Approved int                 `json:"approved"`
	Rejected int                 `json:"rejected"`
	Recent   []RecentDeclaration `json:"recent"`
}

type InterventionStats struct {
	Total   int                  `json:"total"`
	Recent  []RecentIntervention `json:"recent"`
	ByMonth []MonthCount         `json:"by_month,omitempty"`
}

type LicenseStats struct {
	Total        int            `json:"total"`
	ExpiringSoon int            `json:"expiring_soon"`
	Expired      int            `json:"expired"`
	ByType       map[string]int `json:"by_type"`
}

type TimeStats struct {
	DeclarationsByMonth []MonthCount `json:"declarations_by_month"`
	EquipmentByMonth    []MonthCount `json:"equipment_by_month"`
	UsersByMonth        []MonthCount `json:"users_by_month"`
}

// AdminStatistics is the full admin dashboard payload.
type AdminStatistics struct {
	Users         UserStats         `json:"users"`
	Equipment     EquipmentStats    `json:"equipment"`
	Services      ServiceStats      `json:"services"`
	Declarations  DeclarationStats  `json:"declarations"`
	Interventions InterventionStats `json:"interventions"`
	Licenses      LicenseStats      `json:"licenses"`
	TimeStats     TimeStats         `json:"time_stats"`
}

// EmployerEquipmentStats is the slimmer equipment block on the employer
// dashboard.
type EmployerEquipmentStats struct {
	Total      int               `json:"total"`
	Active     int               `json:"active"`
	OnHold     int               `json:"on_hold"`
	InProgress int               `json:"in_progress"`
	Recent     []RecentEquipment `json:"recent"`
}

// EmployerStatistics is the per-employer dashboard payload, scoped to the
// caller's own declarations and equipment.
type EmployerStatistics struct {
	Declarations  DeclarationStats       `json:"declarations"`
	Equipment     EmployerEquipmentStats `json:"equipment"`
	Interventions InterventionStats      `json:"interventions"`
}
