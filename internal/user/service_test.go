package user_test

import (
	"fmt"
	"log/slog"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/auth"
	employermodel "github.com/itparc/asset-management/internal/core/datamodel/employer"
	servicemodel "github.com/itparc/asset-management/internal/core/datamodel/service"
	usermodel "github.com/itparc/asset-management/internal/core/datamodel/user"
	"github.com/itparc/asset-management/internal/user"
)

func TestUser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Suite")
}

type mockUserRepository struct {
	users     map[int64]*usermodel.User
	employers map[int64]*employermodel.Employer
	service   *servicemodel.Service
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:     make(map[int64]*usermodel.User),
		employers: make(map[int64]*employermodel.Employer),
		service:   &servicemodel.Service{ID: 1, Name: "IT Support"},
	}
}

func (m *mockUserRepository) GetUser(id int64) (*usermodel.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d not found", id)
	}
	return u, nil
}

func (m *mockUserRepository) GetEmployerWithService(userID int64) (*employermodel.Employer, *servicemodel.Service, error) {
	for _, e := range m.employers {
		if e.UserID == userID {
			return e, m.service, nil
		}
	}
	return nil, nil, fmt.Errorf("employer for user %d not found", userID)
}

func (m *mockUserRepository) EmailTaken(email string, excludeUserID int64) (bool, error) {
	for _, u := range m.users {
		if u.Email == email && u.ID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepository) UpdateProfile(userID int64, fullName, email, poste, phone *string, isEmployer bool) error {
	u, ok := m.users[userID]
	if !ok {
		return fmt.Errorf("user %d not found", userID)
	}
	if fullName != nil {
		u.FullName = *fullName
	}
	if email != nil {
		u.Email = *email
	}
	if isEmployer {
		for _, e := range m.employers {
			if e.UserID != userID {
				continue
			}
			if poste != nil {
				e.Poste = *poste
			}
			if phone != nil {
				e.Phone = *phone
			}
		}
	}
	return nil
}

var _ = Describe("User Service", func() {
	var (
		repo *mockUserRepository
		svc  *user.Service
	)

	strPtr := func(s string) *string { return &s }

	BeforeEach(func() {
		repo = newMockUserRepository()
		repo.users[1] = &usermodel.User{ID: 1, FullName: "Park Administrator", Email: "admin@itparc.test", Role: usermodel.RoleAdmin}
		repo.users[2] = &usermodel.User{ID: 2, FullName: "Jane Field", Email: "jane@itparc.test", Role: usermodel.RoleEmployer}
		repo.employers[10] = &employermodel.Employer{ID: 10, UserID: 2, Poste: "Technician", Phone: "0600000000", ServiceID: 1, IsActive: true}
		svc = user.NewService(repo, slog.Default())
	})

	adminActor := func() *auth.Actor {
		return &auth.Actor{UserID: 1, FullName: "Park Administrator", Email: "admin@itparc.test", Role: auth.RoleAdmin}
	}

	employerActor := func() *auth.Actor {
		return &auth.Actor{
			UserID: 2, FullName: "Jane Field", Email: "jane@itparc.test",
			Role:     auth.RoleEmployer,
			Employer: &auth.EmployerInfo{ID: 10, ServiceID: 1, IsActive: true},
		}
	}

	Describe("GetCurrentUser", func() {
		It("returns an admin without a profile block", func() {
			out, err := svc.GetCurrentUser(adminActor())
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Role).To(Equal(usermodel.RoleAdmin))
			Expect(out.Profile).To(BeNil())
		})

		It("attaches the organizational profile for an employer", func() {
			out, err := svc.GetCurrentUser(employerActor())
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Profile).NotTo(BeNil())
			Expect(out.Profile.Poste).To(Equal("Technician"))
			Expect(out.Profile.ServiceName).To(Equal("IT Support"))
		})
	})

	Describe("UpdateProfile", func() {
		It("updates name and email and returns the refreshed payload", func() {
			out, err := svc.UpdateProfile(adminActor(), user.UpdateProfileDTO{
				FullName: strPtr("New Name"),
				Email:    strPtr("new@itparc.test"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.FullName).To(Equal("New Name"))
			Expect(repo.users[1].Email).To(Equal("new@itparc.test"))
		})

		It("rejects an email already used by another account", func() {
			_, err := svc.UpdateProfile(adminActor(), user.UpdateProfileDTO{
				Email: strPtr("jane@itparc.test"),
			})
			Expect(err).To(MatchError(user.ErrEmailTaken))
		})

		It("lets an employer change poste and phone", func() {
			_, err := svc.UpdateProfile(employerActor(), user.UpdateProfileDTO{
				Poste: strPtr("Lead Technician"),
				Phone: strPtr("0700000000"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.employers[10].Poste).To(Equal("Lead Technician"))
			Expect(repo.employers[10].Phone).To(Equal("0700000000"))
		})

		It("rejects employer extension fields on an admin account", func() {
			_, err := svc.UpdateProfile(adminActor(), user.UpdateProfileDTO{
				Poste: strPtr("Technician"),
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(422))
			Expect(appErr.Fields).To(HaveKey("poste"))
		})

		It("rejects an empty full_name when the field is present", func() {
			_, err := svc.UpdateProfile(adminActor(), user.UpdateProfileDTO{
				FullName: strPtr(""),
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(422))
			Expect(appErr.Fields).To(HaveKey("full_name"))
		})
	})
})
