package employer

import (
	"log/slog"

	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/auth"
	employermodel "github.com/itparc/asset-management/internal/core/datamodel/employer"
	usermodel "github.com/itparc/asset-management/internal/core/datamodel/user"
	"github.com/itparc/asset-management/internal/mail"
)

// PasswordLength is the size of the generated initial password.
const PasswordLength = 10

type Repository interface {
	ListViews() ([]*View, error)
	GetView(id int64) (*View, error)
	GetEmployer(id int64) (*employermodel.Employer, error)
	GetUser(id int64) (*usermodel.User, error)
	EmailTaken(email string, excludeUserID int64) (bool, error)
	ServiceExists(id int64) (bool, error)
	// CreateWithUser inserts the user and employer rows in one transaction.
	// afterCreate runs inside the same transaction; returning an error from
	// it rolls both rows back.
	CreateWithUser(u *usermodel.User, e *employermodel.Employer, afterCreate func() error) error
	UpdateWithUser(u *usermodel.User, e *employermodel.Employer) error
	SaveEmployer(e *employermodel.Employer) error
	SearchByName(fragment string) ([]*View, error)
	ServiceName(id int64) (string, error)
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	mailer mail.Mailer
	logger *slog.Logger
}

func NewService(repo Repository, hasher PasswordHasher, mailer mail.Mailer, logger *slog.Logger) *Service {
	return &Service{repo: repo, hasher: hasher, mailer: mailer, logger: logger}
}

func (s *Service) ListEmployers() ([]*View, error) {
	return s.repo.ListViews()
}

func (s *Service) GetEmployer(id int64) (*View, error) {
	view, err := s.repo.GetView(id)
	if err != nil {
		return nil, ErrEmployerNotFound
	}
	return view, nil
}

// CreateEmployer provisions an employer account: a User row, an Employer row
// and a credentials mail carrying the generated password. The three are
// all-or-nothing; an undeliverable mail leaves no account behind.
func (s *Service) CreateEmployer(dto CreateEmployerDTO) (*View, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.EmailTaken(dto.Email, 0)
	if err != nil {
		return nil, internal.NewInternalError("failed to check email", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	exists, err := s.repo.ServiceExists(dto.ServiceID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check service", err)
	}
	if !exists {
		return nil, ErrUnknownService
	}

	password, err := auth.GeneratePassword(PasswordLength)
	if err != nil {
		return nil, internal.NewInternalError("failed to generate password", err)
	}
	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	user := &usermodel.User{
		FullName:     dto.FullName,
		Email:        dto.Email,
		PasswordHash: hash,
		Role:         usermodel.RoleEmployer,
	}
	emp := &employermodel.Employer{
		Poste:     dto.Poste,
		Phone:     dto.Phone,
		ServiceID: dto.ServiceID,
		IsActive:  true,
	}

	err = s.repo.CreateWithUser(user, emp, func() error {
		return s.mailer.Send(user.Email, mail.CredentialsSubject, mail.CredentialsBody(user.FullName, user.Email, password))
	})
	if err != nil {
		s.logger.Error("employer creation rolled back", "error", err, "email", dto.Email)
		return nil, internal.NewTransactionError("Failed to create employer", err)
	}

	serviceName, err := s.repo.ServiceName(dto.ServiceID)
	if err != nil {
		serviceName = ""
	}

	s.logger.Info("employer created", "employer_id", emp.ID, "user_id", user.ID)
	return &View{
		ID:        emp.ID,
		UserID:    user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Poste:     emp.Poste,
		Phone:     emp.Phone,
		Service:   serviceName,
		ServiceID: emp.ServiceID,
		IsActive:  emp.IsActive,
	}, nil
}

func (s *Service) UpdateEmployer(id int64, dto UpdateEmployerDTO) (*View, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.repo.GetEmployer(id)
	if err != nil {
		return nil, ErrEmployerNotFound
	}
	user, err := s.repo.GetUser(emp.UserID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load employer user", err)
	}

	if dto.Email != nil {
		taken, err := s.repo.EmailTaken(*dto.Email, user.ID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check email", err)
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}
	if dto.ServiceID != nil {
		exists, err := s.repo.ServiceExists(*dto.ServiceID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check service", err)
		}
		if !exists {
			return nil, ErrUnknownService
		}
	}

	if dto.FullName != nil {
		user.FullName = *dto.FullName
	}
	if dto.Email != nil {
		user.Email = *dto.Email
	}
	if dto.Poste != nil {
		emp.Poste = *dto.Poste
	}
	if dto.Phone != nil {
		emp.Phone = *dto.Phone
	}
	if dto.ServiceID != nil {
		emp.ServiceID = *dto.ServiceID
	}

	if err := s.repo.UpdateWithUser(user, emp); err != nil {
		s.logger.Error("employer update rolled back", "error", err, "employer_id", id)
		return nil, internal.NewTransactionError("Failed to update employer", err)
	}

	view, err := s.repo.GetView(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to reload employer", err)
	}
	view.CreatedAt = nil
	return view, nil
}

// ToggleActive flips the activation flag. Tokens already issued to the user
// stay valid until they expire or the user logs out.
func (s *Service) ToggleActive(id int64) (bool, error) {
	emp, err := s.repo.GetEmployer(id)
	if err != nil {
		return false, ErrEmployerNotFound
	}

	emp.IsActive = !emp.IsActive
	if err := s.repo.SaveEmployer(emp); err != nil {
		return false, internal.NewInternalError("Failed to update employer status", err)
	}

	s.logger.Info("employer status toggled", "employer_id", id, "is_active", emp.IsActive)
	return emp.IsActive, nil
}

func (s *Service) SearchEmployers(dto SearchDTO) ([]*View, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return s.repo.SearchByName(dto.Name)
}
