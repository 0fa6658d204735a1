package presentation

import (
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/avant-dev/usersvc/internal/domain/user"
	"github.com/avant-dev/usersvc/internal/pkg/apperrors"
	"github.com/avant-dev/usersvc/internal/pkg/logger"
)

func TestRenderConsole(t *testing.T) {
	p := NewUserPresenter(logger.NewNop())
	u := user.New("u123", "Alice Wonderland", "alice@example.com")

	out, err := p.Render(u, FormatConsole)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "User ID: u123\nName: Alice Wonderland\nEmail: alice@example.com\nStatus: Active"
	if out != want {
		t.Fatalf("console output mismatch:\n got: %q\nwant: %q", out, want)
	}

	u.IsActive = false
	out, err = p.Render(u, FormatConsole)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasSuffix(out, "Status: Inactive") {
		t.Fatalf("expected Inactive status, got %q", out)
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	p := NewUserPresenter(logger.NewNop())
	u := user.New("u124", "Bob The Builder", "bob@example.net")

	out, err := p.Render(u, FormatJSON)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var parsed struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
		Active bool   `json:"active"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if parsed.ID != "u124" || parsed.Name != "Bob The Builder" || parsed.Email != "bob@example.net" || !parsed.Active {
		t.Fatalf("round trip mismatch: %+v", parsed)
	}
}

func TestRenderFormatIsCaseInsensitive(t *testing.T) {
	p := NewUserPresenter(logger.NewNop())
	u := user.New("u1", "Alice", "a@b.c")

	if _, err := p.Render(u, "JSON"); err != nil {
		t.Fatalf("expected JSON to match json, got %v", err)
	}
	if _, err := p.Render(u, "Console"); err != nil {
		t.Fatalf("expected Console to match console, got %v", err)
	}
}

func TestRenderUnknownFormatIsRejected(t *testing.T) {
	p := NewUserPresenter(logger.NewNop())
	u := user.New("u1", "Alice", "a@b.c")

	_, err := p.Render(u, "xml")
	if err == nil {
		t.Fatalf("expected rejection")
	}
	var uferr *apperrors.UnsupportedFormatError
	if !errors.As(err, &uferr) {
		t.Fatalf("expected UnsupportedFormatError, got %T", err)
	}
	if uferr.Format != "xml" {
		t.Fatalf("expected format carried verbatim, got %q", uferr.Format)
	}
	if !errors.Is(err, apperrors.ErrUnsupportedFormat) {
		t.Fatalf("expected errors.Is ErrUnsupportedFormat")
	}
}
