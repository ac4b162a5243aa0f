package intervention_test

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/itparc/asset-management/internal"
	interventionmodel "github.com/itparc/asset-management/internal/core/datamodel/intervention"
	"github.com/itparc/asset-management/internal/intervention"
)

func TestIntervention(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Intervention Suite")
}

type mockInterventionRepository struct {
	interventions map[int64]*interventionmodel.Intervention
	equipments    map[int64]bool
	nextID        int64
}

func newMockInterventionRepository() *mockInterventionRepository {
	return &mockInterventionRepository{
		interventions: make(map[int64]*interventionmodel.Intervention),
		equipments:    map[int64]bool{1: true},
		nextID:        1,
	}
}

func (m *mockInterventionRepository) add(equipmentID int64) *interventionmodel.Intervention {
	iv := &interventionmodel.Intervention{
		ID: m.nextID, Date: time.Now(), TechnicianName: "Alice", Note: "Cleaned fans",
		EquipmentID: equipmentID,
	}
	m.interventions[m.nextID] = iv
	m.nextID++
	return iv
}

func (m *mockInterventionRepository) List(equipmentID int64) ([]*interventionmodel.Intervention, error) {
	var out []*interventionmodel.Intervention
	for _, iv := range m.interventions {
		if equipmentID > 0 && iv.EquipmentID != equipmentID {
			continue
		}
		out = append(out, iv)
	}
	return out, nil
}

func (m *mockInterventionRepository) Get(id int64) (*interventionmodel.Intervention, error) {
	iv, ok := m.interventions[id]
	if !ok {
		return nil, fmt.Errorf("intervention %d not found", id)
	}
	return iv, nil
}

func (m *mockInterventionRepository) GetDetail(id int64) (*intervention.Detail, error) {
	iv, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	return &intervention.Detail{Intervention: *iv}, nil
}

func (m *mockInterventionRepository) EquipmentExists(id int64) (bool, error) {
	return m.equipments[id], nil
}

func (m *mockInterventionRepository) Create(i *interventionmodel.Intervention) error {
	i.ID = m.nextID
	m.interventions[i.ID] = i
	m.nextID++
	return nil
}

func (m *mockInterventionRepository) Save(i *interventionmodel.Intervention) error {
	m.interventions[i.ID] = i
	return nil
}

func (m *mockInterventionRepository) Delete(id int64) error {
	delete(m.interventions, id)
	return nil
}

var _ = Describe("Intervention Service", func() {
	var (
		repo *mockInterventionRepository
		svc  *intervention.Service
	)

	BeforeEach(func() {
		repo = newMockInterventionRepository()
		svc = intervention.NewService(repo, slog.New(slog.NewTextHandler(GinkgoWriter, nil)))
	})

	Describe("CreateIntervention", func() {
		It("should parse the date and persist the row", func() {
			iv, err := svc.CreateIntervention(intervention.CreateInterventionDTO{
				Date: "2026-02-10", TechnicianName: "Alice", Note: "Replaced disk", EquipmentID: 1,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(iv.Date.Format("2006-01-02")).To(Equal("2026-02-10"))
			Expect(iv.TechnicianName).To(Equal("Alice"))
		})

		It("should reject an unknown equipment", func() {
			_, err := svc.CreateIntervention(intervention.CreateInterventionDTO{
				Date: "2026-02-10", TechnicianName: "Alice", Note: "Replaced disk", EquipmentID: 99,
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("equipment_id"))
		})

		It("should reject a malformed date", func() {
			_, err := svc.CreateIntervention(intervention.CreateInterventionDTO{
				Date: "10/02/2026", TechnicianName: "Alice", Note: "Replaced disk", EquipmentID: 1,
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("date"))
		})
	})

	Describe("ListInterventions", func() {
		It("should filter by equipment", func() {
			repo.equipments[2] = true
			repo.add(1)
			repo.add(2)

			filtered, err := svc.ListInterventions(2)

			Expect(err).NotTo(HaveOccurred())
			Expect(filtered).To(HaveLen(1))
			Expect(filtered[0].EquipmentID).To(Equal(int64(2)))
		})
	})

	Describe("UpdateIntervention", func() {
		It("should apply only the provided fields", func() {
			iv := repo.add(1)
			note := "Swapped RAM"

			updated, err := svc.UpdateIntervention(iv.ID, intervention.UpdateInterventionDTO{Note: &note})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Note).To(Equal("Swapped RAM"))
			Expect(updated.TechnicianName).To(Equal("Alice"))
		})
	})

	Describe("DeleteIntervention", func() {
		It("should remove the row", func() {
			iv := repo.add(1)

			Expect(svc.DeleteIntervention(iv.ID)).To(Succeed())
			Expect(repo.interventions).NotTo(HaveKey(iv.ID))
		})

		It("should return not found for an unknown id", func() {
			Expect(svc.DeleteIntervention(42)).To(Equal(intervention.ErrInterventionNotFound))
		})
	})
})
