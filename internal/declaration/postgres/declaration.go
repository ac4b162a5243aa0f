package postgres

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	declarationmodel "github.com/itparc/asset-management/internal/core/datamodel/declaration"
	employermodel "github.com/itparc/asset-management/internal/core/datamodel/employer"
	usermodel "github.com/itparc/asset-management/internal/core/datamodel/user"
	"github.com/itparc/asset-management/internal/declaration"
)

type DeclarationRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewDeclarationRepository(db *gorm.DB, logger *slog.Logger) *DeclarationRepository {
	return &DeclarationRepository{db: db, logger: logger}
}

func (r *DeclarationRepository) ListAll(status string) ([]*declaration.Detail, error) {
	q := r.db.Model(&declarationmodel.Declaration{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []*declarationmodel.Declaration
	if err := q.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list declarations: %w", err)
	}
	return r.attachOwners(rows)
}

func (r *DeclarationRepository) ListByEmployer(employerID int64, status string) ([]*declaration.Detail, error) {
	q := r.db.Model(&declarationmodel.Declaration{}).Where("employer_id = ?", employerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []*declarationmodel.Declaration
	if err := q.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list declarations: %w", err)
	}
	return r.attachOwners(rows)
}

// attachOwners loads the employer and user embeds in two queries rather than
// per-row lookups.
func (r *DeclarationRepository) attachOwners(rows []*declarationmodel.Declaration) ([]*declaration.Detail, error) {
	details := make([]*declaration.Detail, 0, len(rows))
	employerIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		employerIDs = append(employerIDs, row.EmployerID)
	}

	owners := make(map[int64]*declaration.EmployerRef)
	if len(employerIDs) > 0 {
		var employers []*employermodel.Employer
		if err := r.db.Where("id IN ?", employerIDs).Find(&employers).Error; err != nil {
			return nil, fmt.Errorf("failed to load employers: %w", err)
		}

		userIDs := make([]int64, 0, len(employers))
		for _, emp := range employers {
			userIDs = append(userIDs, emp.UserID)
		}
		users := make(map[int64]*usermodel.User)
		if len(userIDs) > 0 {
			var rows []*usermodel.User
			if err := r.db.Where("id IN ?", userIDs).Find(&rows).Error; err != nil {
				return nil, fmt.Errorf("failed to load users: %w", err)
			}
			for _, u := range rows {
				users[u.ID] = u
			}
		}

		for _, emp := range employers {
			owners[emp.ID] = &declaration.EmployerRef{Employer: *emp, User: users[emp.UserID]}
		}
	}

	for _, row := range rows {
		details = append(details, &declaration.Detail{
			Declaration: *row,
			Employer:    owners[row.EmployerID],
		})
	}
	return details, nil
}

func (r *DeclarationRepository) Get(id int64) (*declarationmodel.Declaration, error) {
	var d declarationmodel.Declaration
	if err := r.db.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("declaration %d not found", id)
		}
		return nil, fmt.Errorf("failed to get declaration: %w", err)
	}
	return &d, nil
}

func (r *DeclarationRepository) GetDetail(id int64) (*declaration.Detail, error) {
	d, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	details, err := r.attachOwners([]*declarationmodel.Declaration{d})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (r *DeclarationRepository) Create(d *declarationmodel.Declaration) error {
	return r.db.Create(d).Error
}

func (r *DeclarationRepository) Save(d *declarationmodel.Declaration) error {
	return r.db.Save(d).Error
}

func (r *DeclarationRepository) Delete(id int64) error {
	return r.db.Delete(&declarationmodel.Declaration{}, id).Error
}
