package maintenance_test

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/itparc/asset-management/internal"
	maintenancemodel "github.com/itparc/asset-management/internal/core/datamodel/maintenance"
	"github.com/itparc/asset-management/internal/maintenance"
)

func TestMaintenance(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Maintenance Suite")
}

type mockMaintenanceRepository struct {
	maintenances  map[int64]*maintenancemodel.Maintenance
	interventions map[int64]bool
	nextID        int64
}

func newMockMaintenanceRepository() *mockMaintenanceRepository {
	return &mockMaintenanceRepository{
		maintenances:  make(map[int64]*maintenancemodel.Maintenance),
		interventions: map[int64]bool{1: true},
		nextID:        1,
	}
}

func (m *mockMaintenanceRepository) add(interventionID int64) *maintenancemodel.Maintenance {
	row := &maintenancemodel.Maintenance{
		ID: m.nextID, InterventionID: interventionID,
		MaintenanceType: "preventive", ScheduledDate: time.Now(),
	}
	m.maintenances[m.nextID] = row
	m.nextID++
	return row
}

func (m *mockMaintenanceRepository) List(interventionID int64) ([]*maintenance.Detail, error) {
	var out []*maintenance.Detail
	for _, row := range m.maintenances {
		if interventionID > 0 && row.InterventionID != interventionID {
			continue
		}
		out = append(out, &maintenance.Detail{Maintenance: *row})
	}
	return out, nil
}

func (m *mockMaintenanceRepository) Get(id int64) (*maintenancemodel.Maintenance, error) {
	row, ok := m.maintenances[id]
	if !ok {
		return nil, fmt.Errorf("maintenance %d not found", id)
	}
	return row, nil
}

func (m *mockMaintenanceRepository) GetDetail(id int64) (*maintenance.Detail, error) {
	row, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	return &maintenance.Detail{Maintenance: *row}, nil
}

func (m *mockMaintenanceRepository) InterventionExists(id int64) (bool, error) {
	return m.interventions[id], nil
}

func (m *mockMaintenanceRepository) Create(row *maintenancemodel.Maintenance) error {
	row.ID = m.nextID
	m.maintenances[row.ID] = row
	m.nextID++
	return nil
}

func (m *mockMaintenanceRepository) Save(row *maintenancemodel.Maintenance) error {
	m.maintenances[row.ID] = row
	return nil
}

func (m *mockMaintenanceRepository) Delete(id int64) error {
	delete(m.maintenances, id)
	return nil
}

var _ = Describe("Maintenance Service", func() {
	var (
		repo *mockMaintenanceRepository
		svc  *maintenance.Service
	)

	BeforeEach(func() {
		repo = newMockMaintenanceRepository()
		svc = maintenance.NewService(repo, slog.New(slog.NewTextHandler(GinkgoWriter, nil)))
	})

	Describe("CreateMaintenance", func() {
		It("should create with only the required fields", func() {
			detail, err := svc.CreateMaintenance(maintenance.CreateMaintenanceDTO{
				InterventionID: 1, MaintenanceType: "preventive", ScheduledDate: "2026-04-01",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.ScheduledDate.Format("2006-01-02")).To(Equal("2026-04-01"))
			Expect(detail.PerformedDate).To(BeNil())
			Expect(detail.NextMaintenanceDate).To(BeNil())
		})

		It("should store optional dates when provided", func() {
			performed := "2026-04-02"
			next := "2026-07-01"
			obs := "Filters replaced"

			detail, err := svc.CreateMaintenance(maintenance.CreateMaintenanceDTO{
				InterventionID: 1, MaintenanceType: "corrective", ScheduledDate: "2026-04-01",
				PerformedDate: &performed, NextMaintenanceDate: &next, Observations: &obs,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.PerformedDate.Format("2006-01-02")).To(Equal("2026-04-02"))
			Expect(detail.NextMaintenanceDate.Format("2006-01-02")).To(Equal("2026-07-01"))
			Expect(*detail.Observations).To(Equal("Filters replaced"))
		})

		It("should reject an unknown intervention", func() {
			_, err := svc.CreateMaintenance(maintenance.CreateMaintenanceDTO{
				InterventionID: 99, MaintenanceType: "preventive", ScheduledDate: "2026-04-01",
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("intervention_id"))
		})
	})

	Describe("ListMaintenances", func() {
		It("should filter by intervention", func() {
			repo.interventions[2] = true
			repo.add(1)
			repo.add(2)

			filtered, err := svc.ListMaintenances(2)

			Expect(err).NotTo(HaveOccurred())
			Expect(filtered).To(HaveLen(1))
			Expect(filtered[0].InterventionID).To(Equal(int64(2)))
		})
	})

	Describe("UpdateMaintenance", func() {
		It("should apply only the provided fields", func() {
			row := repo.add(1)
			mtype := "corrective"

			detail, err := svc.UpdateMaintenance(row.ID, maintenance.UpdateMaintenanceDTO{MaintenanceType: &mtype})

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.MaintenanceType).To(Equal("corrective"))
		})

		It("should return not found for an unknown id", func() {
			mtype := "corrective"

			_, err := svc.UpdateMaintenance(99, maintenance.UpdateMaintenanceDTO{MaintenanceType: &mtype})

			Expect(err).To(Equal(maintenance.ErrMaintenanceNotFound))
		})
	})

	Describe("DeleteMaintenance", func() {
		It("should remove the row", func() {
			row := repo.add(1)

			Expect(svc.DeleteMaintenance(row.ID)).To(Succeed())
			Expect(repo.maintenances).NotTo(HaveKey(row.ID))
		})
	})
})
