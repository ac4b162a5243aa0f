package directory

import (
	"log/slog"

	"github.com/itparc/asset-management/internal"
	servicemodel "github.com/itparc/asset-management/internal/core/datamodel/service"
)

type Repository interface {
	GetAll() ([]*servicemodel.Service, error)
	GetByID(id int64) (*servicemodel.Service, error)
	NameTaken(name string, excludeID int64) (bool, error)
	Create(s *servicemodel.Service) error
	Update(s *servicemodel.Service) error
	SearchByName(fragment string) ([]*servicemodel.Service, error)
	// DeleteWithReassignment re-parents every employer of the service to a
	// surviving service (creating fallbackName when no other exists), then
	// deletes the service. All of it commits or none of it does.
	DeleteWithReassignment(id int64, fallbackName string) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListServices() ([]*servicemodel.Service, error) {
	return s.repo.GetAll()
}

func (s *Service) GetService(id int64) (*servicemodel.Service, error) {
	svc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (s *Service) CreateService(dto ServiceDTO) (*servicemodel.Service, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.NameTaken(dto.Name, 0)
	if err != nil {
		return nil, internal.NewInternalError("failed to check service name", err)
	}
	if taken {
		return nil, ErrNameTaken
	}

	svc := &servicemodel.Service{Name: dto.Name}
	if err := s.repo.Create(svc); err != nil {
		s.logger.Error("failed to create service", "error", err, "name", dto.Name)
		return nil, internal.NewInternalError("Failed to create service", err)
	}

	s.logger.Info("service created", "service_id", svc.ID, "name", svc.Name)
	return svc, nil
}

func (s *Service) UpdateService(id int64, dto ServiceDTO) (*servicemodel.Service, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	svc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrServiceNotFound
	}

	taken, err := s.repo.NameTaken(dto.Name, id)
	if err != nil {
		return nil, internal.NewInternalError("failed to check service name", err)
	}
	if taken {
		return nil, ErrNameTaken
	}

	svc.Name = dto.Name
	if err := s.repo.Update(svc); err != nil {
		s.logger.Error("failed to update service", "error", err, "service_id", id)
		return nil, internal.NewInternalError("Failed to update service", err)
	}

	return svc, nil
}

// DeleteService removes a department. Employers still attached are first
// reassigned to a surviving service so no employer is ever left with a
// dangling reference.
func (s *Service) DeleteService(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return ErrServiceNotFound
	}

	if err := s.repo.DeleteWithReassignment(id, DefaultServiceName); err != nil {
		s.logger.Error("service deletion rolled back", "error", err, "service_id", id)
		return internal.NewTransactionError("Failed to delete service", err)
	}

	s.logger.Info("service deleted", "service_id", id)
	return nil
}

func (s *Service) SearchServices(dto SearchDTO) ([]*servicemodel.Service, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return s.repo.SearchByName(dto.Name)
}
