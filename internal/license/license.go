// Package license tracks software licenses attached to equipment, including
// their expiry lifecycle.
package license

import (
	"time"

	"github.com/itparc/asset-management/internal"
)

// ExpiringSoonWindow is how far ahead a license counts as expiring soon.
const ExpiringSoonWindow = time.Hour * 24 * 30

var (
	ErrLicenseNotFound  = internal.NewNotFoundError("License not found", internal.ErrCodeResourceAbsent)
	ErrUnknownEquipment = internal.NewFieldValidationError("equipment_id", "The selected equipment id is invalid.")
)

// IsExpired reports whether the license expired strictly before now.
func IsExpired(expiration, now time.Time) bool {
	return expiration.Before(now)
}

// IsExpiringSoon reports whether the license expires within the warning
// window. An already expired license is never "expiring soon".
func IsExpiringSoon(expiration, now time.Time) bool {
	if IsExpired(expiration, now) {
		return false
	}
	return !expiration.After(now.Add(ExpiringSoonWindow))
}
