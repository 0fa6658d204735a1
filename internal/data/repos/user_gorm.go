package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/avant-dev/usersvc/internal/domain/user"
	"github.com/avant-dev/usersvc/internal/pkg/apperrors"
	"github.com/avant-dev/usersvc/internal/pkg/logger"
)

// GormUserRepo persists users through gorm. The dialector (postgres,
// sqlite) is chosen at wiring time; this type only sees *gorm.DB.
type GormUserRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGormUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &GormUserRepo{db: db, log: baseLog.With("repo", "GormUserRepo")}
}

func (r *GormUserRepo) Save(ctx context.Context, u *user.User) (*user.User, error) {
	stored := *u
	// Upsert keyed by id: overwrite is not an error, last write wins.
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("saving user %q: %w", u.ID, err)
	}
	r.log.Debug("Saved user", "user_id", u.ID)
	return &stored, nil
}

func (r *GormUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user %q: %w", id, err)
	}
	return &u, nil
}
