package user

import (
	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/core/common/validation"
)

// UpdateProfileDTO carries a partial profile update. Nil pointers mean the
// field was absent from the payload.
type UpdateProfileDTO struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Poste    *string `json:"poste,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

func (dto UpdateProfileDTO) Validate(isEmployer bool) *internal.AppError {
	v := validation.New().
		RequireIfSet("full_name", dto.FullName).
		RequireIfSet("email", dto.Email)
	if dto.FullName != nil {
		v.MaxLen("full_name", *dto.FullName, 255)
	}
	if dto.Email != nil {
		v.Email("email", *dto.Email)
	}
	if isEmployer {
		v.RequireIfSet("poste", dto.Poste).RequireIfSet("phone", dto.Phone)
	} else {
		// Admins carry no employer extension; extension fields are rejected
		// rather than silently dropped so a misdirected client notices.
		if dto.Poste != nil {
			v.Add("poste", "The poste field is not allowed for this account.")
		}
		if dto.Phone != nil {
			v.Add("phone", "The phone field is not allowed for this account.")
		}
	}
	return v.Err()
}
