package repos

import (
	"context"
	"sync"

	"github.com/avant-dev/usersvc/internal/domain/user"
	"github.com/avant-dev/usersvc/internal/pkg/apperrors"
	"github.com/avant-dev/usersvc/internal/pkg/logger"
)

// MemoryUserRepo keeps users in a process-local map. The store is owned
// by the repo instance, never package-level, so two repos never share
// state by accident. Safe for concurrent callers; the mutex gives the
// sequential consistency per key that read-modify-write flows rely on.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]user.User
	log   *logger.Logger
}

func NewMemoryUserRepo(baseLog *logger.Logger) UserRepo {
	return &MemoryUserRepo{
		users: make(map[string]user.User),
		log:   baseLog.With("repo", "MemoryUserRepo"),
	}
}

func (r *MemoryUserRepo) Save(ctx context.Context, u *user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Store a copy so later caller mutations don't leak into the map.
	r.users[u.ID] = *u
	r.log.Debug("Saved user", "user_id", u.ID)

	stored := r.users[u.ID]
	return &stored, nil
}

func (r *MemoryUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, &apperrors.NotFoundError{ID: id}
	}
	out := u
	return &out, nil
}
