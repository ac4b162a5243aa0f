package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/itparc/asset-management/internal/auth"
	employermodel "github.com/itparc/asset-management/internal/core/datamodel/employer"
	tokenmodel "github.com/itparc/asset-management/internal/core/datamodel/token"
	usermodel "github.com/itparc/asset-management/internal/core/datamodel/user"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) auth.Repository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetUserByEmail(email string) (*usermodel.User, error) {
	var user usermodel.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) GetUserByID(id int64) (*usermodel.User, error) {
	var user usermodel.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) GetEmployerForUser(userID int64) (*employermodel.Employer, error) {
	var employer employermodel.Employer
	if err := r.db.Where("user_id = ?", userID).First(&employer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("employer not found")
		}
		return nil, err
	}
	return &employer, nil
}

func (r *AuthRepository) StoreToken(t *tokenmodel.AccessToken) error {
	return r.db.Create(t).Error
}

func (r *AuthRepository) GetToken(tokenHash string) (*tokenmodel.AccessToken, error) {
	var record tokenmodel.AccessToken
	if err := r.db.Where("token_hash = ?", tokenHash).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("token not found")
		}
		return nil, err
	}
	return &record, nil
}

func (r *AuthRepository) DeleteToken(tokenHash string) error {
	return r.db.Where("token_hash = ?", tokenHash).Delete(&tokenmodel.AccessToken{}).Error
}
