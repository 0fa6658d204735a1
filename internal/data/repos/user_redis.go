package repos

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/avant-dev/usersvc/internal/domain/user"
	"github.com/avant-dev/usersvc/internal/pkg/apperrors"
	"github.com/avant-dev/usersvc/internal/pkg/logger"
)

const redisUserKeyPrefix = "usersvc:user:"

// RedisUserRepo stores users as JSON blobs keyed by id. Records never
// expire; lifecycle is up to whoever operates the instance.
type RedisUserRepo struct {
	client *redis.Client
	log    *logger.Logger
}

func NewRedisUserRepo(client *redis.Client, baseLog *logger.Logger) UserRepo {
	return &RedisUserRepo{client: client, log: baseLog.With("repo", "RedisUserRepo")}
}

func redisUserKey(id string) string { return redisUserKeyPrefix + id }

func (r *RedisUserRepo) Save(ctx context.Context, u *user.User) (*user.User, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encoding user %q: %w", u.ID, err)
	}
	if err := r.client.Set(ctx, redisUserKey(u.ID), raw, 0).Err(); err != nil {
		return nil, fmt.Errorf("saving user %q: %w", u.ID, err)
	}
	r.log.Debug("Saved user", "user_id", u.ID)
	stored := *u
	return &stored, nil
}

func (r *RedisUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	raw, err := r.client.Get(ctx, redisUserKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, &apperrors.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user %q: %w", id, err)
	}
	var u user.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decoding user %q: %w", id, err)
	}
	return &u, nil
}
