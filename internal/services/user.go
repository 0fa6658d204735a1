package services

import (
	"context"

	"github.com/avant-dev/usersvc/internal/data/repos"
	"github.com/avant-dev/usersvc/internal/domain/user"
	"github.com/avant-dev/usersvc/internal/pkg/logger"
	"github.com/avant-dev/usersvc/internal/presentation"
	"github.com/avant-dev/usersvc/internal/validation"
)

// UserService sequences the three capabilities. It holds no state of
// its own between calls; everything durable lives behind UserRepo. It
// never performs retries or local recovery: a rejection, a miss, or an
// unsupported format is returned to the caller unchanged.
type UserService interface {
	// CreateUser builds an active user from the caller-supplied fields,
	// validates it, and persists it. On rejection the repository is
	// never touched.
	CreateUser(ctx context.Context, id, name, email string) (*user.User, error)
	// GetFormattedUserDetails renders the stored user in the requested
	// format. Empty format means "console".
	GetFormattedUserDetails(ctx context.Context, id, format string) (string, error)
	// ActivateUser marks the stored user active and persists it.
	// Activating an already-active user is a no-op rewrite.
	ActivateUser(ctx context.Context, id string) (*user.User, error)
}

type userService struct {
	repo      repos.UserRepo
	validator validation.UserValidator
	presenter presentation.UserPresenter
	log       *logger.Logger
}

func NewUserService(repo repos.UserRepo, validator validation.UserValidator, presenter presentation.UserPresenter, log *logger.Logger) UserService {
	return &userService{
		repo:      repo,
		validator: validator,
		presenter: presenter,
		log:       log.With("service", "UserService"),
	}
}

func (s *userService) CreateUser(ctx context.Context, id, name, email string) (*user.User, error) {
	candidate := user.New(id, name, email)

	if err := s.validator.Validate(candidate); err != nil {
		s.log.Debug("Create rejected", "user_id", id, "error", err)
		return nil, err
	}

	stored, err := s.repo.Save(ctx, candidate)
	if err != nil {
		return nil, err
	}
	s.log.Info("Created user", "user_id", stored.ID)
	return stored, nil
}

func (s *userService) GetFormattedUserDetails(ctx context.Context, id, format string) (string, error) {
	if format == "" {
		format = presentation.FormatConsole
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.presenter.Render(u, format)
}

func (s *userService) ActivateUser(ctx context.Context, id string) (*user.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.IsActive = true
	stored, err := s.repo.Save(ctx, u)
	if err != nil {
		return nil, err
	}
	s.log.Info("Activated user", "user_id", stored.ID)
	return stored, nil
}
