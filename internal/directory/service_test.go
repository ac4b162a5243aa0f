package directory_test

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/itparc/asset-management/internal"
	servicemodel "github.com/itparc/asset-management/internal/core/datamodel/service"
	"github.com/itparc/asset-management/internal/directory"
)

func TestDirectory(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Directory Suite")
}

type mockDirectoryRepository struct {
	services map[int64]*servicemodel.Service
	// employerServices tracks which service each employer belongs to.
	employerServices map[int64]int64
	nextID           int64
	failReassign     bool
}

func newMockDirectoryRepository() *mockDirectoryRepository {
	return &mockDirectoryRepository{
		services:         make(map[int64]*servicemodel.Service),
		employerServices: make(map[int64]int64),
		nextID:           1,
	}
}

func (m *mockDirectoryRepository) addService(name string) *servicemodel.Service {
	svc := &servicemodel.Service{ID: m.nextID, Name: name}
	m.services[m.nextID] = svc
	m.nextID++
	return svc
}

func (m *mockDirectoryRepository) GetAll() ([]*servicemodel.Service, error) {
	var out []*servicemodel.Service
	for _, svc := range m.services {
		out = append(out, svc)
	}
	return out, nil
}

func (m *mockDirectoryRepository) GetByID(id int64) (*servicemodel.Service, error) {
	svc, ok := m.services[id]
	if !ok {
		return nil, fmt.Errorf("service %d not found", id)
	}
	return svc, nil
}

func (m *mockDirectoryRepository) NameTaken(name string, excludeID int64) (bool, error) {
	for id, svc := range m.services {
		if svc.Name == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDirectoryRepository) Create(s *servicemodel.Service) error {
	s.ID = m.nextID
	m.services[s.ID] = s
	m.nextID++
	return nil
}

func (m *mockDirectoryRepository) Update(s *servicemodel.Service) error {
	m.services[s.ID] = s
	return nil
}

func (m *mockDirectoryRepository) SearchByName(fragment string) ([]*servicemodel.Service, error) {
	var out []*servicemodel.Service
	for _, svc := range m.services {
		if strings.Contains(strings.ToLower(svc.Name), strings.ToLower(fragment)) {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (m *mockDirectoryRepository) DeleteWithReassignment(id int64, fallbackName string) error {
	if m.failReassign {
		return fmt.Errorf("deadlock detected")
	}

	var target *servicemodel.Service
	for sid, svc := range m.services {
		if sid != id {
			if target == nil || svc.ID < target.ID {
				target = svc
			}
		}
	}
	if target == nil {
		target = &servicemodel.Service{ID: m.nextID, Name: fallbackName}
		m.services[target.ID] = target
		m.nextID++
	}

	for empID, svcID := range m.employerServices {
		if svcID == id {
			m.employerServices[empID] = target.ID
		}
	}
	delete(m.services, id)
	return nil
}

var _ = Describe("Directory Service", func() {
	var (
		repo *mockDirectoryRepository
		svc  *directory.Service
	)

	BeforeEach(func() {
		repo = newMockDirectoryRepository()
		svc = directory.NewService(repo, slog.New(slog.NewTextHandler(GinkgoWriter, nil)))
	})

	Describe("CreateService", func() {
		It("should create a service with a unique name", func() {
			created, err := svc.CreateService(directory.ServiceDTO{Name: "IT Support"})

			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeZero())
			Expect(created.Name).To(Equal("IT Support"))
		})

		It("should reject a duplicate name", func() {
			repo.addService("IT Support")

			_, err := svc.CreateService(directory.ServiceDTO{Name: "IT Support"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(422))
			Expect(appErr.Fields["name"]).To(ContainElement("The name has already been taken."))
		})

		It("should reject an empty name", func() {
			_, err := svc.CreateService(directory.ServiceDTO{Name: ""})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("name"))
		})
	})

	Describe("UpdateService", func() {
		It("should allow keeping the same name", func() {
			existing := repo.addService("Accounting")

			updated, err := svc.UpdateService(existing.ID, directory.ServiceDTO{Name: "Accounting"})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Accounting"))
		})

		It("should reject taking another service's name", func() {
			repo.addService("Accounting")
			other := repo.addService("Logistics")

			_, err := svc.UpdateService(other.ID, directory.ServiceDTO{Name: "Accounting"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields["name"]).To(ContainElement("The name has already been taken."))
		})

		It("should return not found for an unknown id", func() {
			_, err := svc.UpdateService(99, directory.ServiceDTO{Name: "Anything"})

			Expect(err).To(Equal(directory.ErrServiceNotFound))
		})
	})

	Describe("DeleteService", func() {
		It("should reassign employers to the surviving service", func() {
			doomed := repo.addService("Old Desk")
			survivor := repo.addService("Help Desk")
			repo.employerServices[10] = doomed.ID
			repo.employerServices[11] = doomed.ID
			repo.employerServices[12] = survivor.ID

			err := svc.DeleteService(doomed.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(repo.services).NotTo(HaveKey(doomed.ID))
			Expect(repo.employerServices[10]).To(Equal(survivor.ID))
			Expect(repo.employerServices[11]).To(Equal(survivor.ID))
			Expect(repo.employerServices[12]).To(Equal(survivor.ID))
		})

		It("should create the default service when deleting the last one", func() {
			only := repo.addService("Only Desk")
			repo.employerServices[10] = only.ID

			err := svc.DeleteService(only.ID)

			Expect(err).NotTo(HaveOccurred())
			var fallback *servicemodel.Service
			for _, s := range repo.services {
				fallback = s
			}
			Expect(fallback).NotTo(BeNil())
			Expect(fallback.Name).To(Equal(directory.DefaultServiceName))
			Expect(repo.employerServices[10]).To(Equal(fallback.ID))
		})

		It("should surface a transaction error when reassignment fails", func() {
			doomed := repo.addService("Old Desk")
			repo.failReassign = true

			err := svc.DeleteService(doomed.ID)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeTransactionFailed))
			Expect(repo.services).To(HaveKey(doomed.ID))
		})

		It("should return not found for an unknown id", func() {
			Expect(svc.DeleteService(42)).To(Equal(directory.ErrServiceNotFound))
		})
	})

	Describe("SearchServices", func() {
		It("should match case-insensitively on a fragment", func() {
			repo.addService("IT Support")
			repo.addService("Accounting")

			found, err := svc.SearchServices(directory.SearchDTO{Name: "support"})

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
			Expect(found[0].Name).To(Equal("IT Support"))
		})

		It("should require a name to search for", func() {
			_, err := svc.SearchServices(directory.SearchDTO{})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("name"))
		})
	})
})
