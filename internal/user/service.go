package user

import (
	"log/slog"

	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/auth"
	employermodel "github.com/itparc/asset-management/internal/core/datamodel/employer"
	servicemodel "github.com/itparc/asset-management/internal/core/datamodel/service"
	usermodel "github.com/itparc/asset-management/internal/core/datamodel/user"
)

type Repository interface {
	GetUser(id int64) (*usermodel.User, error)
	GetEmployerWithService(userID int64) (*employermodel.Employer, *servicemodel.Service, error)
	EmailTaken(email string, excludeUserID int64) (bool, error)
	// UpdateProfile applies the user and employer field changes in one
	// transaction; employer fields are ignored when the caller is not one.
	UpdateProfile(userID int64, fullName, email, poste, phone *string, isEmployer bool) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetCurrentUser shapes the /user payload by role: employers additionally get
// their organizational profile.
func (s *Service) GetCurrentUser(actor *auth.Actor) (*CurrentUser, error) {
	u, err := s.repo.GetUser(actor.UserID)
	if err != nil {
		s.logger.Error("failed to load current user", "error", err, "user_id", actor.UserID)
		return nil, ErrUserNotFound
	}

	out := &CurrentUser{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}

	if actor.IsEmployer() {
		employer, service, err := s.repo.GetEmployerWithService(u.ID)
		if err != nil {
			s.logger.Error("failed to load employer profile", "error", err, "user_id", u.ID)
			return nil, internal.NewInternalError("failed to load profile", err)
		}
		out.Profile = &Profile{
			Poste:       employer.Poste,
			Phone:       employer.Phone,
			ServiceID:   employer.ServiceID,
			ServiceName: service.Name,
			IsActive:    employer.IsActive,
		}
	}

	return out, nil
}

// UpdateProfile updates the caller's own account. User fields and employer
// extension fields commit atomically.
func (s *Service) UpdateProfile(actor *auth.Actor, dto UpdateProfileDTO) (*CurrentUser, error) {
	if err := dto.Validate(actor.IsEmployer()); err != nil {
		return nil, err
	}

	if dto.Email != nil {
		taken, err := s.repo.EmailTaken(*dto.Email, actor.UserID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check email uniqueness", err)
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	if err := s.repo.UpdateProfile(actor.UserID, dto.FullName, dto.Email, dto.Poste, dto.Phone, actor.IsEmployer()); err != nil {
		s.logger.Error("profile update rolled back", "error", err, "user_id", actor.UserID)
		return nil, internal.NewTransactionError("Failed to update profile", err)
	}

	s.logger.Info("profile updated", "user_id", actor.UserID)
	return s.GetCurrentUser(actor)
}
