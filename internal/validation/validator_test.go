package validation

import (
	"errors"
	"testing"

	"github.com/avant-dev/usersvc/internal/domain/user"
	"github.com/avant-dev/usersvc/internal/pkg/apperrors"
	"github.com/avant-dev/usersvc/internal/pkg/logger"
)

func TestValidateAcceptsWellFormedUser(t *testing.T) {
	v := NewUserValidator(logger.NewNop())
	if err := v.Validate(user.New("u1", "Alice Wonderland", "alice@example.com")); err != nil {
		t.Fatalf("expected acceptance, got %v", err)
	}
}

func TestValidateNameRequiredWinsFirst(t *testing.T) {
	v := NewUserValidator(logger.NewNop())

	// Both rules would fail; the name rule runs first.
	err := v.Validate(user.New("u125", "", "invalid"))
	if err == nil {
		t.Fatalf("expected rejection")
	}
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Reason != "name required" {
		t.Fatalf("expected first failing rule's reason, got %q", verr.Reason)
	}
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected errors.Is ErrValidation")
	}
}

func TestValidateBlankNameIsRejected(t *testing.T) {
	v := NewUserValidator(logger.NewNop())
	err := v.Validate(user.New("u1", "   ", "alice@example.com"))
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) || verr.Reason != "name required" {
		t.Fatalf("expected name required, got %v", err)
	}
}

func TestValidateEmailFormat(t *testing.T) {
	v := NewUserValidator(logger.NewNop())

	bad := []string{"invalid", "no-at.example.com", "a@b", "a@", "a.b@c"}
	for _, email := range bad {
		err := v.Validate(user.New("u1", "Alice", email))
		var verr *apperrors.ValidationError
		if !errors.As(err, &verr) || verr.Reason != "invalid email format" {
			t.Fatalf("email %q: expected invalid email format, got %v", email, err)
		}
	}

	// Validity is containment only: an "@" with a "." somewhere after
	// it. Odd-looking addresses that satisfy that still pass.
	good := []string{"alice@example.com", "bob@example.net", "x@y.z", "@example.com", "a@example."}
	for _, email := range good {
		if err := v.Validate(user.New("u1", "Alice", email)); err != nil {
			t.Fatalf("email %q: expected acceptance, got %v", email, err)
		}
	}
}

func TestValidateExtraRulesRunAfterBuiltins(t *testing.T) {
	noUppercase := func(u *user.User) *apperrors.ValidationError {
		if u.Name == "SHOUTING" {
			return &apperrors.ValidationError{Reason: "no shouting"}
		}
		return nil
	}
	v := NewUserValidator(logger.NewNop(), noUppercase)

	err := v.Validate(user.New("u1", "SHOUTING", "a@b.c"))
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) || verr.Reason != "no shouting" {
		t.Fatalf("expected extra rule rejection, got %v", err)
	}

	// Built-ins still win when they fail first.
	err = v.Validate(user.New("u1", "", "a@b.c"))
	if !errors.As(err, &verr) || verr.Reason != "name required" {
		t.Fatalf("expected built-in rejection, got %v", err)
	}
}
