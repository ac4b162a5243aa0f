package declaration

import (
	"fmt"
	"log/slog"

	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/auth"
	declarationmodel "github.com/itparc/asset-management/internal/core/datamodel/declaration"
)

type Repository interface {
	// ListAll returns every declaration with owner embeds, optionally
	// narrowed to one status.
	ListAll(status string) ([]*Detail, error)
	// ListByEmployer returns one employer's declarations, optionally
	// narrowed to one status.
	ListByEmployer(employerID int64, status string) ([]*Detail, error)
	Get(id int64) (*declarationmodel.Declaration, error)
	GetDetail(id int64) (*Detail, error)
	Create(d *declarationmodel.Declaration) error
	Save(d *declarationmodel.Declaration) error
	Delete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListDeclarations is the plain listing: all declarations for an admin, own
// declarations for an employer.
func (s *Service) ListDeclarations(actor *auth.Actor) ([]*Detail, error) {
	if actor.IsAdmin() {
		return s.repo.ListAll("")
	}
	return s.repo.ListByEmployer(actor.EmployerID(), "")
}

// AllDeclarations is the admin triage listing with per-status buckets. The
// status filter accepts pending, approved and rejected; any other value is
// ignored.
func (s *Service) AllDeclarations(statusFilter string) ([]*Detail, Grouped, Counts, error) {
	if !listStatusFilter[statusFilter] {
		statusFilter = ""
	}
	declarations, err := s.repo.ListAll(statusFilter)
	if err != nil {
		return nil, Grouped{}, Counts{}, internal.NewInternalError("failed to list declarations", err)
	}
	grouped, counts := GroupByStatus(declarations)
	return declarations, grouped, counts, nil
}

// ByEmployer resolves the target employer per the caller's role: employers
// default to themselves and may not name anyone else, admins may name anyone
// and get the full flat listing when they name nobody.
func (s *Service) ByEmployer(actor *auth.Actor, employerID int64, statusFilter string) ([]*Detail, *Grouped, *Counts, error) {
	if employerID == 0 {
		if actor.IsEmployer() {
			employerID = actor.EmployerID()
		} else {
			declarations, err := s.repo.ListAll("")
			if err != nil {
				return nil, nil, nil, internal.NewInternalError("failed to list declarations", err)
			}
			return declarations, nil, nil, nil
		}
	} else if actor.IsEmployer() && actor.EmployerID() != employerID {
		return nil, nil, nil, ErrNotOwnerView
	}

	if !listStatusFilter[statusFilter] {
		statusFilter = ""
	}
	declarations, err := s.repo.ListByEmployer(employerID, statusFilter)
	if err != nil {
		return nil, nil, nil, internal.NewInternalError("failed to list declarations", err)
	}
	grouped, counts := GroupByStatus(declarations)
	return declarations, &grouped, &counts, nil
}

func (s *Service) CreateDeclaration(actor *auth.Actor, dto CreateDeclarationDTO) (*declarationmodel.Declaration, error) {
	if !actor.IsEmployer() {
		return nil, ErrOnlyEmployersCreate
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	d := &declarationmodel.Declaration{
		IssueTitle:  dto.IssueTitle,
		Description: dto.Description,
		EmployerID:  actor.EmployerID(),
		Status:      declarationmodel.StatusPending,
	}
	if err := s.repo.Create(d); err != nil {
		s.logger.Error("failed to create declaration", "error", err, "employer_id", d.EmployerID)
		return nil, internal.NewInternalError("Failed to create declaration", err)
	}

	s.logger.Info("declaration created", "declaration_id", d.ID, "employer_id", d.EmployerID)
	return d, nil
}

// GetDeclaration distinguishes absent from forbidden: an unknown id is 404
// for everyone, an existing declaration owned by someone else is 403 for an
// employer.
func (s *Service) GetDeclaration(actor *auth.Actor, id int64) (*Detail, error) {
	detail, err := s.repo.GetDetail(id)
	if err != nil {
		return nil, ErrDeclarationNotFound
	}
	if actor.IsEmployer() && detail.EmployerID != actor.EmployerID() {
		return nil, ErrNotOwnerView
	}
	return detail, nil
}

// UpdateDeclaration is role-branched over one payload: employers edit
// content, admins triage. Keys outside the caller's slice are ignored
// without error.
func (s *Service) UpdateDeclaration(actor *auth.Actor, id int64, dto UpdateDeclarationDTO) (*declarationmodel.Declaration, string, error) {
	d, err := s.repo.Get(id)
	if err != nil {
		return nil, "", ErrDeclarationNotFound
	}
	if actor.IsEmployer() && d.EmployerID != actor.EmployerID() {
		return nil, "", ErrNotOwnerUpdate
	}

	message := "Declaration updated successfully"
	if actor.IsAdmin() {
		if err := dto.validateTriage(); err != nil {
			return nil, "", err
		}
		if dto.Status != nil {
			d.Status = *dto.Status
			message = fmt.Sprintf("Declaration status has been updated to %s successfully", *dto.Status)
		}
		if dto.AdminComment != nil {
			d.AdminComment = dto.AdminComment
		}
	} else {
		if err := dto.validateContent(); err != nil {
			return nil, "", err
		}
		if dto.IssueTitle != nil {
			d.IssueTitle = *dto.IssueTitle
		}
		if dto.Description != nil {
			d.Description = *dto.Description
		}
	}

	if err := s.repo.Save(d); err != nil {
		s.logger.Error("failed to update declaration", "error", err, "declaration_id", id)
		return nil, "", internal.NewInternalError("Failed to update declaration", err)
	}

	return d, message, nil
}

// ProcessDeclaration records the admin decision: approved or rejected, with
// the admin comment overwritten either way.
func (s *Service) ProcessDeclaration(id int64, dto ProcessDeclarationDTO) (*Detail, string, error) {
	detail, err := s.repo.GetDetail(id)
	if err != nil {
		return nil, "", ErrDeclarationNotFound
	}
	if err := dto.Validate(); err != nil {
		return nil, "", err
	}

	detail.Status = dto.Status
	detail.AdminComment = dto.AdminComment
	if err := s.repo.Save(&detail.Declaration); err != nil {
		s.logger.Error("failed to process declaration", "error", err, "declaration_id", id)
		return nil, "", internal.NewInternalError("Failed to process declaration", err)
	}

	message := fmt.Sprintf("Declaration has been %s successfully", dto.Status)
	s.logger.Info("declaration processed", "declaration_id", id, "status", dto.Status)
	return detail, message, nil
}

func (s *Service) DeleteDeclaration(actor *auth.Actor, id int64) error {
	d, err := s.repo.Get(id)
	if err != nil {
		return ErrDeclarationNotFound
	}
	if actor.IsEmployer() && d.EmployerID != actor.EmployerID() {
		return ErrNotOwnerDelete
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete declaration", "error", err, "declaration_id", id)
		return internal.NewInternalError("Failed to delete declaration", err)
	}

	s.logger.Info("declaration deleted", "declaration_id", id)
	return nil
}
