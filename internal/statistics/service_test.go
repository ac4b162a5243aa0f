package statistics_test

import (
	"log/slog"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/itparc/asset-management/internal/core/cache"
	"github.com/itparc/asset-management/internal/statistics"
)

func TestStatistics(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Statistics Suite")
}

type countingStatsRepository struct {
	adminCalls    int
	employerCalls int
}

func (r *countingStatsRepository) AdminStatistics() (*statistics.AdminStatistics, error) {
	r.adminCalls++
	return &statistics.AdminStatistics{
		Users: statistics.UserStats{Total: 10 * r.adminCalls},
	}, nil
}

func (r *countingStatsRepository) EmployerStatistics(employerID int64) (*statistics.EmployerStatistics, error) {
	r.employerCalls++
	return &statistics.EmployerStatistics{
		Declarations: statistics.DeclarationStats{Total: int(employerID)},
	}, nil
}

var _ = Describe("Statistics Service", func() {
	var (
		repo *countingStatsRepository
		svc  *statistics.Service
	)

	newService := func(ttl time.Duration) *statistics.Service {
		return statistics.NewService(repo, cache.NewTTLCache(), ttl, slog.New(slog.NewTextHandler(GinkgoWriter, nil)))
	}

	BeforeEach(func() {
		repo = &countingStatsRepository{}
		svc = newService(time.Minute)
	})

	Describe("GetAdminStatistics", func() {
		It("should serve repeated reads within the TTL from cache", func() {
			first, err := svc.GetAdminStatistics()
			Expect(err).NotTo(HaveOccurred())
			second, err := svc.GetAdminStatistics()
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.adminCalls).To(Equal(1))
			Expect(second.Users.Total).To(Equal(first.Users.Total))
		})

		It("should recompute after the TTL elapses", func() {
			svc = newService(10 * time.Millisecond)

			_, err := svc.GetAdminStatistics()
			Expect(err).NotTo(HaveOccurred())

			time.Sleep(20 * time.Millisecond)

			refreshed, err := svc.GetAdminStatistics()
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.adminCalls).To(Equal(2))
			Expect(refreshed.Users.Total).To(Equal(20))
		})
	})

	Describe("GetEmployerStatistics", func() {
		It("should cache per employer", func() {
			_, err := svc.GetEmployerStatistics(7)
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.GetEmployerStatistics(7)
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.employerCalls).To(Equal(1))

			other, err := svc.GetEmployerStatistics(8)
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.employerCalls).To(Equal(2))
			Expect(other.Declarations.Total).To(Equal(8))
		})
	})
})
