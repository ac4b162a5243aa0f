package declaration

import (
	"fmt"
	"strings"

	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/core/common/validation"
	declarationmodel "github.com/itparc/asset-management/internal/core/datamodel/declaration"
)

type CreateDeclarationDTO struct {
	IssueTitle  string `json:"issue_title"`
	Description string `json:"description"`
}

func (dto CreateDeclarationDTO) Validate() *internal.AppError {
	return validation.New().
		Require("issue_title", dto.IssueTitle).
		MaxLen("issue_title", dto.IssueTitle, 255).
		Require("description", dto.Description).
		Err()
}

// UpdateDeclarationDTO carries every updatable key. Which keys actually
// apply depends on the caller's role; the rest are ignored without error.
type UpdateDeclarationDTO struct {
	IssueTitle   *string `json:"issue_title"`
	Description  *string `json:"description"`
	Status       *string `json:"status"`
	AdminComment *string `json:"admin_comment"`
}

func (dto UpdateDeclarationDTO) validateContent() *internal.AppError {
	v := validation.New().
		RequireIfSet("issue_title", dto.IssueTitle).
		RequireIfSet("description", dto.Description)
	if dto.IssueTitle != nil {
		v.MaxLen("issue_title", *dto.IssueTitle, 255)
	}
	return v.Err()
}

func (dto UpdateDeclarationDTO) validateTriage() *internal.AppError {
	v := validation.New()
	if dto.Status != nil {
		v.Require("status", *dto.Status).
			OneOf("status", *dto.Status, declarationmodel.Statuses)
	}
	return v.Err()
}

// ProcessDeclarationDTO is the decision payload: approve or reject, nothing
// else.
type ProcessDeclarationDTO struct {
	Status       string  `json:"status"`
	AdminComment *string `json:"admin_comment"`
}

func (dto ProcessDeclarationDTO) Validate() *internal.AppError {
	allowed := []string{declarationmodel.StatusApproved, declarationmodel.StatusRejected}
	v := validation.New().Require("status", dto.Status)
	if dto.Status != "" {
		found := false
		for _, s := range allowed {
			if dto.Status == s {
				found = true
			}
		}
		if !found {
			v.Add("status", fmt.Sprintf("The selected status is invalid. Allowed values: %s.", strings.Join(allowed, ", ")))
		}
	}
	return v.Err()
}
