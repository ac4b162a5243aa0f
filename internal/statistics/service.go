package statistics

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/itparc/asset-management/internal"
)

// Repository runs the aggregate queries behind the dashboards.
type Repository interface {
	AdminStatistics() (*AdminStatistics, error)
	EmployerStatistics(employerID int64) (*EmployerStatistics, error)
}

// Cache is the read-side cache the rollups are served through.
type Cache interface {
	GetOrCompute(key string, ttl time.Duration, compute func() (any, error)) (any, error)
}

type Service struct {
	repo   Repository
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewService(repo Repository, cache Cache, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// GetAdminStatistics serves the admin rollup, at most ttl stale.
func (s *Service) GetAdminStatistics() (*AdminStatistics, error) {
	v, err := s.cache.GetOrCompute("stats:admin", s.ttl, func() (any, error) {
		s.logger.Debug("computing admin statistics")
		return s.repo.AdminStatistics()
	})
	if err != nil {
		s.logger.Error("failed to compute admin statistics", "error", err)
		return nil, internal.NewInternalError("Failed to compute statistics", err)
	}
	return v.(*AdminStatistics), nil
}

// GetEmployerStatistics serves one employer's rollup, at most ttl stale.
func (s *Service) GetEmployerStatistics(employerID int64) (*EmployerStatistics, error) {
	key := fmt.Sprintf("stats:employer:%d", employerID)
	v, err := s.cache.GetOrCompute(key, s.ttl, func() (any, error) {
		s.logger.Debug("computing employer statistics", "employer_id", employerID)
		return s.repo.EmployerStatistics(employerID)
	})
	if err != nil {
		s.logger.Error("failed to compute employer statistics", "error", err, "employer_id", employerID)
		return nil, internal.NewInternalError("Failed to compute statistics", err)
	}
	return v.(*EmployerStatistics), nil
}
