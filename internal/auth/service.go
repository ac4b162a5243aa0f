package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	employermodel "github.com/itparc/asset-management/internal/core/datamodel/employer"
	tokenmodel "github.com/itparc/asset-management/internal/core/datamodel/token"
	usermodel "github.com/itparc/asset-management/internal/core/datamodel/user"
)

// Repository is the data access surface the auth service needs.
type Repository interface {
	GetUserByEmail(email string) (*usermodel.User, error)
	GetUserByID(id int64) (*usermodel.User, error)
	GetEmployerForUser(userID int64) (*employermodel.Employer, error)
	StoreToken(t *tokenmodel.AccessToken) error
	GetToken(tokenHash string) (*tokenmodel.AccessToken, error)
	DeleteToken(tokenHash string) error
}

type Service struct {
	repo       Repository
	bcryptCost int
	tokenTTL   time.Duration
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, tokenTTL time.Duration, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		tokenTTL:   tokenTTL,
		logger:     logger,
	}
}

// Login checks credentials and issues an opaque bearer token. Unknown email and
// wrong password return the same error so accounts cannot be enumerated.
func (s *Service) Login(dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByEmail(dto.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Role == usermodel.RoleEmployer {
		employer, err := s.repo.GetEmployerForUser(user.ID)
		if err != nil || !employer.IsActive {
			s.logger.Warn("login rejected for deactivated employer", "user_id", user.ID)
			return nil, ErrAccountDeactivated
		}
	}

	plaintext, err := GenerateToken()
	if err != nil {
		return nil, err
	}

	record := &tokenmodel.AccessToken{
		UserID:    user.ID,
		TokenHash: HashToken(plaintext),
		ExpiresAt: time.Now().Add(s.tokenTTL),
		CreatedAt: time.Now(),
	}
	if err := s.repo.StoreToken(record); err != nil {
		s.logger.Error("failed to persist access token", "error", err, "user_id", user.ID)
		return nil, err
	}

	s.logger.Info("user authenticated", "user_id", user.ID, "role", user.Role)

	return &LoginResponse{
		Token: plaintext,
		Role:  Role(user.Role),
		User: LoginUser{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
		},
	}, nil
}

// Authenticate resolves a presented bearer token to an actor. Deactivating an
// employer does not revoke tokens already issued; such tokens stay valid until
// they expire or the holder logs out.
func (s *Service) Authenticate(plaintext string) (*Actor, error) {
	record, err := s.repo.GetToken(HashToken(plaintext))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(record.ExpiresAt) {
		_ = s.repo.DeleteToken(record.TokenHash)
		return nil, ErrTokenExpired
	}

	user, err := s.repo.GetUserByID(record.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	actor := &Actor{
		UserID:   user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     Role(user.Role),
	}

	if actor.Role == RoleEmployer {
		employer, err := s.repo.GetEmployerForUser(user.ID)
		if err != nil {
			return nil, ErrInvalidToken
		}
		actor.Employer = &EmployerInfo{
			ID:        employer.ID,
			ServiceID: employer.ServiceID,
			IsActive:  employer.IsActive,
		}
	}

	return actor, nil
}

// Logout invalidates only the presented token.
func (s *Service) Logout(plaintext string) error {
	return s.repo.DeleteToken(HashToken(plaintext))
}

func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GenerateToken returns a cryptographically random opaque bearer token.
func GenerateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// HashToken is the storable form of a plaintext token.
func HashToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePassword returns a random initial password for admin-created accounts.
func GeneratePassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}
