package postgres

import (
	"fmt"

	"gorm.io/gorm"

	employermodel "github.com/itparc/asset-management/internal/core/datamodel/employer"
	servicemodel "github.com/itparc/asset-management/internal/core/datamodel/service"
	usermodel "github.com/itparc/asset-management/internal/core/datamodel/user"
	"github.com/itparc/asset-management/internal/user"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetUser(id int64) (*usermodel.User, error) {
	var u usermodel.User
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetEmployerWithService(userID int64) (*employermodel.Employer, *servicemodel.Service, error) {
	var employer employermodel.Employer
	if err := r.db.Where("user_id = ?", userID).First(&employer).Error; err != nil {
		return nil, nil, err
	}

	var service servicemodel.Service
	if err := r.db.Where("id = ?", employer.ServiceID).First(&service).Error; err != nil {
		return nil, nil, err
	}

	return &employer, &service, nil
}

func (r *UserRepository) EmailTaken(email string, excludeUserID int64) (bool, error) {
	var count int64
	err := r.db.Model(&usermodel.User{}).
		Where("email = ? AND id <> ?", email, excludeUserID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) UpdateProfile(userID int64, fullName, email, poste, phone *string, isEmployer bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		userUpdates := map[string]interface{}{}
		if fullName != nil {
			userUpdates["full_name"] = *fullName
		}
		if email != nil {
			userUpdates["email"] = *email
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(&usermodel.User{}).Where("id = ?", userID).Updates(userUpdates).Error; err != nil {
				return fmt.Errorf("update user: %w", err)
			}
		}

		if !isEmployer {
			return nil
		}

		employerUpdates := map[string]interface{}{}
		if poste != nil {
			employerUpdates["poste"] = *poste
		}
		if phone != nil {
			employerUpdates["phone"] = *phone
		}
		if len(employerUpdates) > 0 {
			if err := tx.Model(&employermodel.Employer{}).Where("user_id = ?", userID).Updates(employerUpdates).Error; err != nil {
				return fmt.Errorf("update employer: %w", err)
			}
		}

		return nil
	})
}
