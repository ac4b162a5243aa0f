// Package postgres holds the aggregate queries behind the dashboards. They
// are raw SQL through sqlx rather than gorm; the rollups are read-only and
// easier to audit as plain statements.
package postgres

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/itparc/asset-management/internal/statistics"
)

type StatisticsRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewStatisticsRepository(db *sqlx.DB, logger *slog.Logger) *StatisticsRepository {
	return &StatisticsRepository{db: db, logger: logger}
}

func (r *StatisticsRepository) count(query string, args ...any) (int, error) {
	var n int
	if err := r.db.Get(&n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

// groupedCounts runs a "label, count" aggregation into a map.
func (r *StatisticsRepository) groupedCounts(query string, args ...any) (map[string]int, error) {
	rows, err := r.db.Queryx(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, err
		}
		out[label] = count
	}
	return out, rows.Err()
}

func (r *StatisticsRepository) monthCounts(column, table string) ([]statistics.MonthCount, error) {
	query := fmt.Sprintf(`
		SELECT EXTRACT(MONTH FROM %s)::int AS month,
		       EXTRACT(YEAR FROM %s)::int AS year,
		       COUNT(*)::int AS count
		FROM %s
		WHERE EXTRACT(YEAR FROM %s) = $1
		GROUP BY year, month
		ORDER BY year, month`, column, column, table, column)

	counts := []statistics.MonthCount{}
	if err := r.db.Select(&counts, query, time.Now().Year()); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *StatisticsRepository) AdminStatistics() (*statistics.AdminStatistics, error) {
	stats := &statistics.AdminStatistics{}

	if err := r.fillUserStats(&stats.Users); err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	if err := r.fillEquipmentStats(&stats.Equipment); err != nil {
		return nil, fmt.Errorf("equipment stats: %w", err)
	}
	if err := r.fillServiceStats(&stats.Services); err != nil {
		return nil, fmt.Errorf("service stats: %w", err)
	}
	if err := r.fillDeclarationStats(&stats.Declarations); err != nil {
		return nil, fmt.Errorf("declaration stats: %w", err)
	}
	if err := r.fillInterventionStats(&stats.Interventions); err != nil {
		return nil, fmt.Errorf("intervention stats: %w", err)
	}
	if err := r.fillLicenseStats(&stats.Licenses); err != nil {
		return nil, fmt.Errorf("license stats: %w", err)
	}
	if err := r.fillTimeStats(&stats.TimeStats); err != nil {
		return nil, fmt.Errorf("time stats: %w", err)
	}
	return stats, nil
}

func (r *StatisticsRepository) fillUserStats(out *statistics.UserStats) error {
	var err error
	if out.Total, err = r.count(`SELECT COUNT(*) FROM users`); err != nil {
		return err
	}
	if out.Admins, err = r.count(`SELECT COUNT(*) FROM users WHERE role = 'Admin'`); err != nil {
		return err
	}
	if out.Employers, err = r.count(`SELECT COUNT(*) FROM users WHERE role = 'Employer'`); err != nil {
		return err
	}
	if out.ActiveEmployers, err = r.count(`SELECT COUNT(*) FROM employers WHERE is_active`); err != nil {
		return err
	}
	if out.InactiveEmployers, err = r.count(`SELECT COUNT(*) FROM employers WHERE NOT is_active`); err != nil {
		return err
	}

	out.RecentUsers = []statistics.RecentUser{}
	err = r.db.Select(&out.RecentUsers, `
		SELECT id, full_name, email, role, created_at
		FROM users ORDER BY created_at DESC LIMIT 5`)
	if err != nil {
		return err
	}

	out.EmployersByService, err = r.groupedCounts(`
		SELECT services.name, COUNT(*)::int
		FROM employers
		JOIN services ON services.id = employers.service_id
		GROUP BY services.name`)
	return err
}

func (r *StatisticsRepository) fillEquipmentStats(out *statistics.EquipmentStats) error {
	var err error
	if out.Total, err = r.count(`SELECT COUNT(*) FROM equipments`); err != nil {
		return err
	}
	if out.Active, err = r.count(`SELECT COUNT(*) FROM equipments WHERE status = 'active'`); err != nil {
		return err
	}
	if out.OnHold, err = r.count(`SELECT COUNT(*) FROM equipments WHERE status = 'on_hold'`); err != nil {
		return err
	}
	if out.InProgress, err = r.count(`SELECT COUNT(*) FROM equipments WHERE status = 'in_progress'`); err != nil {
		return err
	}
	if out.ByType, err = r.groupedCounts(`SELECT type, COUNT(*)::int FROM equipments GROUP BY type`); err != nil {
		return err
	}
	if out.ByBrand, err = r.groupedCounts(`SELECT brand, COUNT(*)::int FROM equipments GROUP BY brand`); err != nil {
		return err
	}
	if out.BackupEnabledCount, err = r.count(`SELECT COUNT(*) FROM equipments WHERE backup_enabled`); err != nil {
		return err
	}
	if out.BackupDisabledCount, err = r.count(`SELECT COUNT(*) FROM equipments WHERE NOT backup_enabled`); err != nil {
		return err
	}

	out.Recent = []statistics.RecentEquipment{}
	return r.db.Select(&out.Recent, `
		SELECT equipments.id, equipments.name, equipments.type, equipments.status,
		       users.full_name AS employer_name
		FROM equipments
		JOIN employers ON employers.id = equipments.employer_id
		JOIN users ON users.id = employers.user_id
		ORDER BY equipments.created_at DESC LIMIT 5`)
}

func (r *StatisticsRepository) fillServiceStats(out *statistics.ServiceStats) error {
	var err error
	if out.Total, err = r.count(`SELECT COUNT(*) FROM services`); err != nil {
		return err
	}
	if out.WithEmployers, err = r.count(`
		SELECT COUNT(*) FROM services
		WHERE EXISTS (SELECT 1 FROM employers WHERE employers.service_id = services.id)`); err != nil {
		return err
	}
	if out.WithoutEmployers, err = r.count(`
		SELECT COUNT(*) FROM services
		WHERE NOT EXISTS (SELECT 1 FROM employers WHERE employers.service_id = services.id)`); err != nil {
		return err
	}

	out.EmployersDistribution = []statistics.ServiceDistribution{}
	return r.db.Select(&out.EmployersDistribution, `
		SELECT services.id, services.name,
		       COUNT(employers.id)::int AS employers_count
		FROM services
		LEFT JOIN employers ON employers.service_id = services.id
		GROUP BY services.id, services.name
		ORDER BY employers_count DESC LIMIT 5`)
}

func (r *StatisticsRepository) fillDeclarationStats(out *statistics.DeclarationStats) error {
	var err error
	if out.Total, err = r.count(`SELECT COUNT(*) FROM declarations`); err != nil {
		return err
	}
	if out.Pending, err = r.count(`SELECT COUNT(*) FROM declarations WHERE status = 'pending'`); err != nil {
		return err
	}
	if out.Approved, err = r.count(`SELECT COUNT(*) FROM declarations WHERE status = 'approved'`); err != nil {
		return err
	}
	if out.Rejected, err = r.count(`SELECT COUNT(*) FROM declarations WHERE status = 'rejected'`); err != nil {
		return err
	}

	out.Recent = []statistics.RecentDeclaration{}
	return r.db.Select(&out.Recent, `
		SELECT declarations.id, declarations.issue_title, declarations.status,
		       users.full_name AS employer_name, declarations.created_at
		FROM declarations
		JOIN employers ON employers.id = declarations.employer_id
		JOIN users ON users.id = employers.user_id
		ORDER BY declarations.created_at DESC LIMIT 5`)
}

func (r *StatisticsRepository) fillInterventionStats(out *statistics.InterventionStats) error {
	var err error
	if out.Total, err = r.count(`SELECT COUNT(*) FROM interventions`); err != nil {
		return err
	}

	out.Recent = []statistics.RecentIntervention{}
	err = r.db.Select(&out.Recent, `
		SELECT interventions.id, interventions.date, interventions.technician_name,
		       equipments.name AS equipment_name
		FROM interventions
		JOIN equipments ON equipments.id = interventions.equipment_id
		ORDER BY interventions.date DESC LIMIT 5`)
	if err != nil {
		return err
	}

	out.ByMonth, err = r.monthCounts("date", "interventions")
	return err
}

func (r *StatisticsRepository) fillLicenseStats(out *statistics.LicenseStats) error {
	var err error
	now := time.Now()
	if out.Total, err = r.count(`SELECT COUNT(*) FROM licenses`); err != nil {
		return err
	}
	if out.ExpiringSoon, err = r.count(`
		SELECT COUNT(*) FROM licenses
		WHERE expiration_date >= $1 AND expiration_date <= $2`, now, now.AddDate(0, 1, 0)); err != nil {
		return err
	}
	if out.Expired, err = r.count(`SELECT COUNT(*) FROM licenses WHERE expiration_date < $1`, now); err != nil {
		return err
	}
	out.ByType, err = r.groupedCounts(`SELECT type, COUNT(*)::int FROM licenses GROUP BY type`)
	return err
}

func (r *StatisticsRepository) fillTimeStats(out *statistics.TimeStats) error {
	var err error
	if out.DeclarationsByMonth, err = r.monthCounts("created_at", "declarations"); err != nil {
		return err
	}
	if out.EquipmentByMonth, err = r.monthCounts("created_at", "equipments"); err != nil {
		return err
	}
	out.UsersByMonth, err = r.monthCounts("created_at", "users")
	return err
}

func (r *StatisticsRepository) EmployerStatistics(employerID int64) (*statistics.EmployerStatistics, error) {
	stats := &statistics.EmployerStatistics{}
	var err error

	d := &stats.Declarations
	if d.Total, err = r.count(`SELECT COUNT(*) FROM declarations WHERE employer_id = $1`, employerID); err != nil {
		return nil, err
	}
	if d.Pending, err = r.count(`SELECT COUNT(*) FROM declarations WHERE employer_id = $1 AND status = 'pending'`, employerID); err != nil {
		return nil, err
	}
	if d.Approved, err = r.count(`SELECT COUNT(*) FROM declarations WHERE employer_id = $1 AND status = 'approved'`, employerID); err != nil {
		return nil, err
	}
	if d.Rejected, err = r.count(`SELECT COUNT(*) FROM declarations WHERE employer_id = $1 AND status = 'rejected'`, employerID); err != nil {
		return nil, err
	}
	d.Recent = []statistics.RecentDeclaration{}
	err = r.db.Select(&d.Recent, `
		SELECT id, issue_title, status, created_at
		FROM declarations WHERE employer_id = $1
		ORDER BY created_at DESC LIMIT 5`, employerID)
	if err != nil {
		return nil, err
	}

	e := &stats.Equipment
	if e.Total, err = r.count(`SELECT COUNT(*) FROM equipments WHERE employer_id = $1`, employerID); err != nil {
		return nil, err
	}
	if e.Active, err = r.count(`SELECT COUNT(*) FROM equipments WHERE employer_id = $1 AND status = 'active'`, employerID); err != nil {
		return nil, err
	}
	if e.OnHold, err = r.count(`SELECT COUNT(*) FROM equipments WHERE employer_id = $1 AND status = 'on_hold'`, employerID); err != nil {
		return nil, err
	}
	if e.InProgress, err = r.count(`SELECT COUNT(*) FROM equipments WHERE employer_id = $1 AND status = 'in_progress'`, employerID); err != nil {
		return nil, err
	}
	e.Recent = []statistics.RecentEquipment{}
	err = r.db.Select(&e.Recent, `
		SELECT id, name, type, status
		FROM equipments WHERE employer_id = $1
		ORDER BY created_at DESC LIMIT 5`, employerID)
	if err != nil {
		return nil, err
	}

	iv := &stats.Interventions
	if iv.Total, err = r.count(`
		SELECT COUNT(*) FROM interventions
		WHERE equipment_id IN (SELECT id FROM equipments WHERE employer_id = $1)`, employerID); err != nil {
		return nil, err
	}
	iv.Recent = []statistics.RecentIntervention{}
	err = r.db.Select(&iv.Recent, `
		SELECT interventions.id, interventions.date, interventions.technician_name,
		       equipments.name AS equipment_name
		FROM interventions
		JOIN equipments ON equipments.id = interventions.equipment_id
		WHERE equipments.employer_id = $1
		ORDER BY interventions.date DESC LIMIT 5`, employerID)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
