package presentation

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/avant-dev/usersvc/internal/domain/user"
	"github.com/avant-dev/usersvc/internal/pkg/apperrors"
	"github.com/avant-dev/usersvc/internal/pkg/logger"
)

// Supported format names. Matching is case-insensitive.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// UserPresenter is the rendering capability. Render is pure; an unknown
// format is a rejected request (*apperrors.UnsupportedFormatError), not
// a crash.
type UserPresenter interface {
	Render(u *user.User, format string) (string, error)
}

type userPresenter struct {
	log *logger.Logger
}

func NewUserPresenter(baseLog *logger.Logger) UserPresenter {
	return &userPresenter{log: baseLog.With("component", "UserPresenter")}
}

func (p *userPresenter) Render(u *user.User, format string) (string, error) {
	switch strings.ToLower(format) {
	case FormatConsole:
		return p.renderConsole(u), nil
	case FormatJSON:
		return p.renderJSON(u)
	default:
		return "", &apperrors.UnsupportedFormatError{Format: format}
	}
}

func (p *userPresenter) renderConsole(u *user.User) string {
	status := "Inactive"
	if u.IsActive {
		status = "Active"
	}
	return fmt.Sprintf("User ID: %s\nName: %s\nEmail: %s\nStatus: %s", u.ID, u.Name, u.Email, status)
}

func (p *userPresenter) renderJSON(u *user.User) (string, error) {
	view := struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
		Active bool   `json:"active"`
	}{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Active: u.IsActive,
	}
	raw, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return "", fmt.Errorf("rendering user %q as json: %w", u.ID, err)
	}
	return string(raw), nil
}
