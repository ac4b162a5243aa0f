package license_test

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/itparc/asset-management/internal"
	licensemodel "github.com/itparc/asset-management/internal/core/datamodel/license"
	"github.com/itparc/asset-management/internal/license"
)

func TestLicense(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "License Suite")
}

type mockLicenseRepository struct {
	licenses   map[int64]*licensemodel.License
	equipments map[int64]bool
	nextID     int64
}

func newMockLicenseRepository() *mockLicenseRepository {
	return &mockLicenseRepository{
		licenses:   make(map[int64]*licensemodel.License),
		equipments: map[int64]bool{1: true},
		nextID:     1,
	}
}

func (m *mockLicenseRepository) add(name string, expiration time.Time) *licensemodel.License {
	l := &licensemodel.License{
		ID: m.nextID, Name: name, Type: "os", Key: "KEY-" + name,
		ExpirationDate: expiration, EquipmentID: 1,
	}
	m.licenses[m.nextID] = l
	m.nextID++
	return l
}

func (m *mockLicenseRepository) List() ([]*licensemodel.License, error) {
	var out []*licensemodel.License
	for _, l := range m.licenses {
		out = append(out, l)
	}
	return out, nil
}

func (m *mockLicenseRepository) Get(id int64) (*licensemodel.License, error) {
	l, ok := m.licenses[id]
	if !ok {
		return nil, fmt.Errorf("license %d not found", id)
	}
	return l, nil
}

func (m *mockLicenseRepository) EquipmentExists(id int64) (bool, error) {
	return m.equipments[id], nil
}

func (m *mockLicenseRepository) Create(l *licensemodel.License) error {
	l.ID = m.nextID
	m.licenses[l.ID] = l
	m.nextID++
	return nil
}

func (m *mockLicenseRepository) Save(l *licensemodel.License) error {
	m.licenses[l.ID] = l
	return nil
}

func (m *mockLicenseRepository) Delete(id int64) error {
	delete(m.licenses, id)
	return nil
}

func (m *mockLicenseRepository) ExpiringBetween(from, to time.Time) ([]*licensemodel.License, error) {
	var out []*licensemodel.License
	for _, l := range m.licenses {
		if !l.ExpirationDate.Before(from) && !l.ExpirationDate.After(to) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockLicenseRepository) ExpiredBefore(cutoff time.Time) ([]*licensemodel.License, error) {
	var out []*licensemodel.License
	for _, l := range m.licenses {
		if l.ExpirationDate.Before(cutoff) {
			out = append(out, l)
		}
	}
	return out, nil
}

var _ = Describe("License expiry", func() {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	It("should flag a license expiring in 20 days as expiring soon but not expired", func() {
		exp := now.Add(20 * 24 * time.Hour)

		Expect(license.IsExpiringSoon(exp, now)).To(BeTrue())
		Expect(license.IsExpired(exp, now)).To(BeFalse())
	})

	It("should flag yesterday's expiration as expired but not expiring soon", func() {
		exp := now.Add(-24 * time.Hour)

		Expect(license.IsExpired(exp, now)).To(BeTrue())
		Expect(license.IsExpiringSoon(exp, now)).To(BeFalse())
	})

	It("should treat a far-future expiration as neither", func() {
		exp := now.Add(90 * 24 * time.Hour)

		Expect(license.IsExpired(exp, now)).To(BeFalse())
		Expect(license.IsExpiringSoon(exp, now)).To(BeFalse())
	})
})

var _ = Describe("License Service", func() {
	var (
		repo *mockLicenseRepository
		svc  *license.Service
	)

	BeforeEach(func() {
		repo = newMockLicenseRepository()
		svc = license.NewService(repo, slog.New(slog.NewTextHandler(GinkgoWriter, nil)))
	})

	Describe("CreateLicense", func() {
		It("should create a license for existing equipment", func() {
			l, err := svc.CreateLicense(license.CreateLicenseDTO{
				Name: "Windows 11", Type: "os", Key: "XXXXX-YYYYY",
				ExpirationDate: "2027-01-31", EquipmentID: 1,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(l.ID).NotTo(BeZero())
			Expect(l.ExpirationDate.Format("2006-01-02")).To(Equal("2027-01-31"))
		})

		It("should reject an unknown equipment", func() {
			_, err := svc.CreateLicense(license.CreateLicenseDTO{
				Name: "Windows 11", Type: "os", Key: "XXXXX-YYYYY",
				ExpirationDate: "2027-01-31", EquipmentID: 99,
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("equipment_id"))
		})

		It("should reject a malformed expiration date", func() {
			_, err := svc.CreateLicense(license.CreateLicenseDTO{
				Name: "Windows 11", Type: "os", Key: "XXXXX-YYYYY",
				ExpirationDate: "31/01/2027", EquipmentID: 1,
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("expiration_date"))
		})
	})

	Describe("expiry listings", func() {
		It("should keep expiring soon and expired disjoint", func() {
			now := time.Now()
			repo.add("soon", now.Add(20*24*time.Hour))
			repo.add("gone", now.Add(-24*time.Hour))
			repo.add("fine", now.Add(90*24*time.Hour))

			soon, err := svc.ListExpiringSoon()
			Expect(err).NotTo(HaveOccurred())
			expired, err := svc.ListExpired()
			Expect(err).NotTo(HaveOccurred())

			Expect(soon).To(HaveLen(1))
			Expect(soon[0].Name).To(Equal("soon"))
			Expect(expired).To(HaveLen(1))
			Expect(expired[0].Name).To(Equal("gone"))
		})
	})

	Describe("UpdateLicense", func() {
		It("should return not found for an unknown id", func() {
			name := "Anything"

			_, err := svc.UpdateLicense(99, license.UpdateLicenseDTO{Name: &name})

			Expect(err).To(Equal(license.ErrLicenseNotFound))
		})
	})

	Describe("DeleteLicense", func() {
		It("should remove the row", func() {
			l := repo.add("doomed", time.Now())

			Expect(svc.DeleteLicense(l.ID)).To(Succeed())
			Expect(repo.licenses).NotTo(HaveKey(l.ID))
		})
	})
})
