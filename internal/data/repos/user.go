package repos

import (
	"context"

	"github.com/avant-dev/usersvc/internal/domain/user"
)

// UserRepo is the persistence capability. Save is insert-or-overwrite
// keyed by user.ID (last write wins, no overwrite error) and returns the
// stored value so a backend may normalize it. FindByID returns
// *apperrors.NotFoundError for a missing id; backends must not treat
// absence as a fault.
//
// Invariant every backend keeps: after Save(u), FindByID(u.ID) returns a
// value equal to u until the next Save with the same id.
type UserRepo interface {
	Save(ctx context.Context, u *user.User) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
}
