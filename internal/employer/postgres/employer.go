package postgres

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	employermodel "github.com/itparc/asset-management/internal/core/datamodel/employer"
	servicemodel "github.com/itparc/asset-management/internal/core/datamodel/service"
	usermodel "github.com/itparc/asset-management/internal/core/datamodel/user"
	"github.com/itparc/asset-management/internal/employer"
)

type EmployerRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewEmployerRepository(db *gorm.DB, logger *slog.Logger) *EmployerRepository {
	return &EmployerRepository{db: db, logger: logger}
}

const viewColumns = `employers.id, employers.user_id, users.full_name, users.email,
	employers.poste, employers.phone, services.name AS service, employers.service_id,
	employers.is_active, employers.created_at`

func (r *EmployerRepository) viewQuery() *gorm.DB {
	return r.db.Table("employers").
		Select(viewColumns).
		Joins("JOIN users ON users.id = employers.user_id").
		Joins("JOIN services ON services.id = employers.service_id")
}

func (r *EmployerRepository) ListViews() ([]*employer.View, error) {
	var views []*employer.View
	if err := r.viewQuery().Order("employers.id asc").Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list employers: %w", err)
	}
	return views, nil
}

func (r *EmployerRepository) GetView(id int64) (*employer.View, error) {
	var view employer.View
	err := r.viewQuery().Where("employers.id = ?", id).Scan(&view).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get employer: %w", err)
	}
	if view.ID == 0 {
		return nil, fmt.Errorf("employer %d not found", id)
	}
	return &view, nil
}

func (r *EmployerRepository) GetEmployer(id int64) (*employermodel.Employer, error) {
	var emp employermodel.Employer
	if err := r.db.First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employer %d not found", id)
		}
		return nil, fmt.Errorf("failed to get employer: %w", err)
	}
	return &emp, nil
}

func (r *EmployerRepository) GetUser(id int64) (*usermodel.User, error) {
	var u usermodel.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (r *EmployerRepository) EmailTaken(email string, excludeUserID int64) (bool, error) {
	var count int64
	q := r.db.Model(&usermodel.User{}).Where("email = ?", email)
	if excludeUserID > 0 {
		q = q.Where("id <> ?", excludeUserID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return count > 0, nil
}

func (r *EmployerRepository) ServiceExists(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&servicemodel.Service{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count services: %w", err)
	}
	return count > 0, nil
}

func (r *EmployerRepository) ServiceName(id int64) (string, error) {
	var svc servicemodel.Service
	if err := r.db.First(&svc, id).Error; err != nil {
		return "", fmt.Errorf("failed to get service: %w", err)
	}
	return svc.Name, nil
}

func (r *EmployerRepository) CreateWithUser(u *usermodel.User, e *employermodel.Employer, afterCreate func() error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		e.UserID = u.ID
		if err := tx.Create(e).Error; err != nil {
			return fmt.Errorf("failed to create employer: %w", err)
		}
		if afterCreate != nil {
			if err := afterCreate(); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *EmployerRepository) UpdateWithUser(u *usermodel.User, e *employermodel.Employer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(u).Error; err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		if err := tx.Save(e).Error; err != nil {
			return fmt.Errorf("failed to update employer: %w", err)
		}
		return nil
	})
}

func (r *EmployerRepository) SaveEmployer(e *employermodel.Employer) error {
	return r.db.Save(e).Error
}

func (r *EmployerRepository) SearchByName(fragment string) ([]*employer.View, error) {
	var views []*employer.View
	pattern := "%" + fragment + "%"
	err := r.viewQuery().
		Where("LOWER(users.full_name) LIKE LOWER(?)", pattern).
		Order("employers.id asc").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search employers: %w", err)
	}
	return views, nil
}
