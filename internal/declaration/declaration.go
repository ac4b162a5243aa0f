// Package declaration implements the issue declaration workflow: employers
// raise tickets, administrators triage them through an approval lifecycle.
package declaration

import (
	"github.com/itparc/asset-management/internal"
	declarationmodel "github.com/itparc/asset-management/internal/core/datamodel/declaration"
	employermodel "github.com/itparc/asset-management/internal/core/datamodel/employer"
	usermodel "github.com/itparc/asset-management/internal/core/datamodel/user"
)

var (
	ErrDeclarationNotFound = internal.NewNotFoundError("Declaration not found", internal.ErrCodeResourceAbsent)

	ErrOnlyEmployersCreate = internal.NewForbiddenError("Unauthorized. Only employers can create declarations.", internal.ErrCodeNotOwner)
	ErrNotOwnerView        = internal.NewForbiddenError("Unauthorized. You can only view your own declarations.", internal.ErrCodeNotOwner)
	ErrNotOwnerUpdate      = internal.NewForbiddenError("Unauthorized. You can only update your own declarations.", internal.ErrCodeNotOwner)
	ErrNotOwnerDelete      = internal.NewForbiddenError("Unauthorized. You can only delete your own declarations.", internal.ErrCodeNotOwner)
)

// EmployerRef is the owner embed carried on declaration payloads.
type EmployerRef struct {
	employermodel.Employer
	User *usermodel.User `json:"user,omitempty" gorm:"-"`
}

// Detail is a declaration row with its owner embedded.
type Detail struct {
	declarationmodel.Declaration
	Employer *EmployerRef `json:"employer,omitempty" gorm:"-"`
}

// Grouped is the triage listing shape: the flat data plus per-status buckets
// and counts. Resolved declarations appear in data and all but have no bucket
// of their own.
type Grouped struct {
	Pending  []*Detail `json:"pending"`
	Approved []*Detail `json:"approved"`
	Rejected []*Detail `json:"rejected"`
	All      []*Detail `json:"all"`
}

type Counts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// GroupByStatus buckets declarations for the triage views.
func GroupByStatus(declarations []*Detail) (Grouped, Counts) {
	grouped := Grouped{
		Pending:  []*Detail{},
		Approved: []*Detail{},
		Rejected: []*Detail{},
		All:      declarations,
	}
	for _, d := range declarations {
		switch d.Status {
		case declarationmodel.StatusPending:
			grouped.Pending = append(grouped.Pending, d)
		case declarationmodel.StatusApproved:
			grouped.Approved = append(grouped.Approved, d)
		case declarationmodel.StatusRejected:
			grouped.Rejected = append(grouped.Rejected, d)
		}
	}
	if grouped.All == nil {
		grouped.All = []*Detail{}
	}
	counts := Counts{
		Pending:  len(grouped.Pending),
		Approved: len(grouped.Approved),
		Rejected: len(grouped.Rejected),
		Total:    len(declarations),
	}
	return grouped, counts
}

// listStatusFilter is the set of values the listing endpoints accept for
// ?status=. Anything else, resolved included, is ignored and the listing
// stays unfiltered.
var listStatusFilter = map[string]bool{
	declarationmodel.StatusPending:  true,
	declarationmodel.StatusApproved: true,
	declarationmodel.StatusRejected: true,
}
