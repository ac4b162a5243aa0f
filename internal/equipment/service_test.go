package equipment_test

import (
	"fmt"
	"log/slog"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/itparc/asset-management/internal"
	equipmentmodel "github.com/itparc/asset-management/internal/core/datamodel/equipment"
	"github.com/itparc/asset-management/internal/equipment"
)

func TestEquipment(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Equipment Suite")
}

type mockEquipmentRepository struct {
	equipments map[int64]*equipmentmodel.Equipment
	employers  map[int64]bool
	nextID     int64
}

func newMockEquipmentRepository() *mockEquipmentRepository {
	return &mockEquipmentRepository{
		equipments: make(map[int64]*equipmentmodel.Equipment),
		employers:  map[int64]bool{1: true},
		nextID:     1,
	}
}

func (m *mockEquipmentRepository) add(status string, employerID int64) *equipmentmodel.Equipment {
	eq := &equipmentmodel.Equipment{
		ID: m.nextID, Name: "Laptop", Type: "laptop", NSC: "NSC-1",
		Status: status, IPAddress: "10.0.0.1", SerialNumber: "SN-1",
		Processor: "i5", Brand: "Dell", OfficeVersion: "2021", Label: "LAP-1",
		EmployerID: employerID,
	}
	m.equipments[m.nextID] = eq
	m.nextID++
	return eq
}

func (m *mockEquipmentRepository) List(filter equipment.Filter) ([]*equipment.Detail, error) {
	var out []*equipment.Detail
	for _, eq := range m.equipments {
		if filter.Status != "" && eq.Status != filter.Status {
			continue
		}
		if filter.EmployerID > 0 && eq.EmployerID != filter.EmployerID {
			continue
		}
		out = append(out, &equipment.Detail{Equipment: *eq})
	}
	return out, nil
}

func (m *mockEquipmentRepository) GetDetail(id int64) (*equipment.Detail, error) {
	eq, ok := m.equipments[id]
	if !ok {
		return nil, fmt.Errorf("equipment %d not found", id)
	}
	return &equipment.Detail{Equipment: *eq}, nil
}

func (m *mockEquipmentRepository) Get(id int64) (*equipmentmodel.Equipment, error) {
	eq, ok := m.equipments[id]
	if !ok {
		return nil, fmt.Errorf("equipment %d not found", id)
	}
	return eq, nil
}

func (m *mockEquipmentRepository) EmployerExists(id int64) (bool, error) {
	return m.employers[id], nil
}

func (m *mockEquipmentRepository) Create(e *equipmentmodel.Equipment) error {
	e.ID = m.nextID
	m.equipments[e.ID] = e
	m.nextID++
	return nil
}

func (m *mockEquipmentRepository) Save(e *equipmentmodel.Equipment) error {
	m.equipments[e.ID] = e
	return nil
}

func (m *mockEquipmentRepository) Delete(id int64) error {
	delete(m.equipments, id)
	return nil
}

var _ = Describe("Equipment Service", func() {
	var (
		repo *mockEquipmentRepository
		svc  *equipment.Service
	)

	BeforeEach(func() {
		repo = newMockEquipmentRepository()
		svc = equipment.NewService(repo, slog.New(slog.NewTextHandler(GinkgoWriter, nil)))
	})

	validDTO := equipment.CreateEquipmentDTO{
		Name: "Laptop", Type: "laptop", NSC: "NSC-42", Status: equipmentmodel.StatusActive,
		IPAddress: "10.0.0.5", SerialNumber: "SN-42", Processor: "i7", Brand: "Lenovo",
		OfficeVersion: "2021", Label: "LAP-42", EmployerID: 1,
	}

	Describe("CreateEquipment", func() {
		It("should create with backup disabled by default", func() {
			detail, err := svc.CreateEquipment(validDTO)

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.ID).NotTo(BeZero())
			Expect(detail.BackupEnabled).To(BeFalse())
		})

		It("should honor an explicit backup_enabled", func() {
			dto := validDTO
			enabled := true
			dto.BackupEnabled = &enabled

			detail, err := svc.CreateEquipment(dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.BackupEnabled).To(BeTrue())
		})

		It("should reject an unknown status", func() {
			dto := validDTO
			dto.Status = "broken"

			_, err := svc.CreateEquipment(dto)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("status"))
		})

		It("should reject an unknown employer", func() {
			dto := validDTO
			dto.EmployerID = 99

			_, err := svc.CreateEquipment(dto)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("employer_id"))
		})
	})

	Describe("ListEquipments", func() {
		It("should filter by status", func() {
			repo.add(equipmentmodel.StatusActive, 1)
			repo.add(equipmentmodel.StatusOnHold, 1)

			active, err := svc.ListEquipments(equipment.Filter{Status: equipmentmodel.StatusActive})

			Expect(err).NotTo(HaveOccurred())
			Expect(active).To(HaveLen(1))
			Expect(active[0].Status).To(Equal(equipmentmodel.StatusActive))
		})

		It("should filter by employer", func() {
			repo.employers[2] = true
			repo.add(equipmentmodel.StatusActive, 1)
			repo.add(equipmentmodel.StatusActive, 2)

			mine, err := svc.ListEquipments(equipment.Filter{EmployerID: 2})

			Expect(err).NotTo(HaveOccurred())
			Expect(mine).To(HaveLen(1))
			Expect(mine[0].EmployerID).To(Equal(int64(2)))
		})

		It("should reject a status outside the enum", func() {
			_, err := svc.ListEquipments(equipment.Filter{Status: "retired"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("status"))
		})
	})

	Describe("UpdateEquipment", func() {
		It("should apply only the provided fields", func() {
			eq := repo.add(equipmentmodel.StatusActive, 1)
			newStatus := equipmentmodel.StatusInProgress

			detail, err := svc.UpdateEquipment(eq.ID, equipment.UpdateEquipmentDTO{Status: &newStatus})

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Status).To(Equal(equipmentmodel.StatusInProgress))
			Expect(detail.Name).To(Equal("Laptop"))
		})

		It("should return not found for an unknown id", func() {
			name := "Anything"

			_, err := svc.UpdateEquipment(99, equipment.UpdateEquipmentDTO{Name: &name})

			Expect(err).To(Equal(equipment.ErrEquipmentNotFound))
		})
	})

	Describe("DeleteEquipment", func() {
		It("should remove the row", func() {
			eq := repo.add(equipmentmodel.StatusActive, 1)

			Expect(svc.DeleteEquipment(eq.ID)).To(Succeed())
			Expect(repo.equipments).NotTo(HaveKey(eq.ID))
		})

		It("should return not found for an unknown id", func() {
			Expect(svc.DeleteEquipment(42)).To(Equal(equipment.ErrEquipmentNotFound))
		})
	})
})
