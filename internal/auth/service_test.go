package auth_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/itparc/asset-management/internal/auth"
	employermodel "github.com/itparc/asset-management/internal/core/datamodel/employer"
	tokenmodel "github.com/itparc/asset-management/internal/core/datamodel/token"
	usermodel "github.com/itparc/asset-management/internal/core/datamodel/user"
)

func TestAuth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Module Suite")
}

type mockAuthRepository struct {
	usersByEmail map[string]*usermodel.User
	usersByID    map[int64]*usermodel.User
	employers    map[int64]*employermodel.Employer // keyed by user id
	tokens       map[string]*tokenmodel.AccessToken
	storeError   error
	nextTokenID  int64
}

func newMockAuthRepository() *mockAuthRepository {
	return &mockAuthRepository{
		usersByEmail: map[string]*usermodel.User{},
		usersByID:    map[int64]*usermodel.User{},
		employers:    map[int64]*employermodel.Employer{},
		tokens:       map[string]*tokenmodel.AccessToken{},
		nextTokenID:  1,
	}
}

func (m *mockAuthRepository) addUser(u *usermodel.User, password string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u.PasswordHash = string(hash)
	m.usersByEmail[u.Email] = u
	m.usersByID[u.ID] = u
}

func (m *mockAuthRepository) GetUserByEmail(email string) (*usermodel.User, error) {
	if u, ok := m.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func (m *mockAuthRepository) GetUserByID(id int64) (*usermodel.User, error) {
	if u, ok := m.usersByID[id]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func (m *mockAuthRepository) GetEmployerForUser(userID int64) (*employermodel.Employer, error) {
	if e, ok := m.employers[userID]; ok {
		return e, nil
	}
	return nil, errors.New("employer not found")
}

func (m *mockAuthRepository) StoreToken(t *tokenmodel.AccessToken) error {
	if m.storeError != nil {
		return m.storeError
	}
	t.ID = m.nextTokenID
	m.nextTokenID++
	m.tokens[t.TokenHash] = t
	return nil
}

func (m *mockAuthRepository) GetToken(tokenHash string) (*tokenmodel.AccessToken, error) {
	if t, ok := m.tokens[tokenHash]; ok {
		return t, nil
	}
	return nil, errors.New("token not found")
}

func (m *mockAuthRepository) DeleteToken(tokenHash string) error {
	delete(m.tokens, tokenHash)
	return nil
}

var _ = Describe("AuthService", func() {
	var (
		svc  *auth.Service
		repo *mockAuthRepository
	)

	lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	BeforeEach(func() {
		repo = newMockAuthRepository()
		repo.addUser(&usermodel.User{ID: 1, FullName: "Site Admin", Email: "admin@parc.local", Role: usermodel.RoleAdmin}, "admin_password")
		repo.addUser(&usermodel.User{ID: 2, FullName: "Active Employer", Email: "active@parc.local", Role: usermodel.RoleEmployer}, "employer_password")
		repo.addUser(&usermodel.User{ID: 3, FullName: "Inactive Employer", Email: "inactive@parc.local", Role: usermodel.RoleEmployer}, "employer_password")
		repo.employers[2] = &employermodel.Employer{ID: 20, UserID: 2, ServiceID: 5, IsActive: true}
		repo.employers[3] = &employermodel.Employer{ID: 30, UserID: 3, ServiceID: 5, IsActive: false}

		svc = auth.NewService(repo, 10, time.Hour, lg)
	})

	Describe("Login", func() {
		Context("with valid admin credentials", func() {
			It("issues a token with the admin role", func() {
				resp, err := svc.Login(auth.LoginDTO{Email: "admin@parc.local", Password: "admin_password"})

				Expect(err).ToNot(HaveOccurred())
				Expect(resp.Token).ToNot(BeEmpty())
				Expect(resp.Role).To(Equal(auth.RoleAdmin))
				Expect(resp.User.ID).To(Equal(int64(1)))
				Expect(resp.User.Email).To(Equal("admin@parc.local"))
			})
		})

		Context("with bad credentials", func() {
			It("returns the same error for an unknown email and a wrong password", func() {
				_, errUnknown := svc.Login(auth.LoginDTO{Email: "nobody@parc.local", Password: "whatever123"})
				_, errWrong := svc.Login(auth.LoginDTO{Email: "admin@parc.local", Password: "wrong_password"})

				Expect(errUnknown).To(MatchError(auth.ErrInvalidCredentials))
				Expect(errWrong).To(MatchError(auth.ErrInvalidCredentials))
			})
		})

		Context("with a deactivated employer", func() {
			It("rejects the login even with the correct password", func() {
				_, err := svc.Login(auth.LoginDTO{Email: "inactive@parc.local", Password: "employer_password"})
				Expect(err).To(MatchError(auth.ErrAccountDeactivated))
			})

			It("rejects an employer whose extension record is missing", func() {
				repo.addUser(&usermodel.User{ID: 4, FullName: "Orphan", Email: "orphan@parc.local", Role: usermodel.RoleEmployer}, "employer_password")

				_, err := svc.Login(auth.LoginDTO{Email: "orphan@parc.local", Password: "employer_password"})
				Expect(err).To(MatchError(auth.ErrAccountDeactivated))
			})
		})

		Context("with missing fields", func() {
			It("returns a validation error", func() {
				_, err := svc.Login(auth.LoginDTO{Email: "", Password: ""})
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("Validation failed"))
			})
		})
	})

	Describe("Authenticate", func() {
		It("resolves a valid token to an employer actor with its extension", func() {
			resp, err := svc.Login(auth.LoginDTO{Email: "active@parc.local", Password: "employer_password"})
			Expect(err).ToNot(HaveOccurred())

			actor, err := svc.Authenticate(resp.Token)
			Expect(err).ToNot(HaveOccurred())
			Expect(actor.Role).To(Equal(auth.RoleEmployer))
			Expect(actor.EmployerID()).To(Equal(int64(20)))
			Expect(actor.Employer.ServiceID).To(Equal(int64(5)))
		})

		It("rejects an unknown token", func() {
			_, err := svc.Authenticate("deadbeef")
			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("rejects and removes an expired token", func() {
			expired := &tokenmodel.AccessToken{
				UserID:    1,
				TokenHash: auth.HashToken("stale-token"),
				ExpiresAt: time.Now().Add(-time.Minute),
			}
			Expect(repo.StoreToken(expired)).To(Succeed())

			_, err := svc.Authenticate("stale-token")
			Expect(err).To(MatchError(auth.ErrTokenExpired))

			_, getErr := repo.GetToken(expired.TokenHash)
			Expect(getErr).To(HaveOccurred())
		})

		It("still resolves tokens issued before an employer was deactivated", func() {
			resp, err := svc.Login(auth.LoginDTO{Email: "active@parc.local", Password: "employer_password"})
			Expect(err).ToNot(HaveOccurred())

			repo.employers[2].IsActive = false

			actor, err := svc.Authenticate(resp.Token)
			Expect(err).ToNot(HaveOccurred())
			Expect(actor.Employer.IsActive).To(BeFalse())
		})
	})

	Describe("Logout", func() {
		It("invalidates only the presented token", func() {
			first, err := svc.Login(auth.LoginDTO{Email: "admin@parc.local", Password: "admin_password"})
			Expect(err).ToNot(HaveOccurred())
			second, err := svc.Login(auth.LoginDTO{Email: "admin@parc.local", Password: "admin_password"})
			Expect(err).ToNot(HaveOccurred())

			Expect(svc.Logout(first.Token)).To(Succeed())

			_, err = svc.Authenticate(first.Token)
			Expect(err).To(MatchError(auth.ErrInvalidToken))

			_, err = svc.Authenticate(second.Token)
			Expect(err).ToNot(HaveOccurred())
		})
	})
})
