package auth

import (
	"context"
	"errors"

	usermodel "github.com/itparc/asset-management/internal/core/datamodel/user"
)

// Role is the closed set of caller roles. It is resolved once during
// authentication and carried through the request context; handlers never
// compare raw strings.
type Role string

const (
	RoleAdmin    Role = usermodel.RoleAdmin
	RoleEmployer Role = usermodel.RoleEmployer
)

// EmployerInfo is the employer extension attached to an employer actor.
type EmployerInfo struct {
	ID        int64
	ServiceID int64
	IsActive  bool
}

// Actor is the authenticated caller. Employer is non-nil exactly when the role
// is RoleEmployer.
type Actor struct {
	UserID   int64
	FullName string
	Email    string
	Role     Role
	Employer *EmployerInfo
}

func (a *Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a *Actor) IsEmployer() bool {
	return a.Role == RoleEmployer
}

// EmployerID returns the employer extension id, or 0 for admins.
func (a *Actor) EmployerID() int64 {
	if a.Employer == nil {
		return 0
	}
	return a.Employer.ID
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account deactivated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

type ctxKey string

const contextActorKey ctxKey = "actor"

func ContextWithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, contextActorKey, actor)
}

func ActorFromContext(ctx context.Context) (*Actor, bool) {
	actor, ok := ctx.Value(contextActorKey).(*Actor)
	return actor, ok
}
