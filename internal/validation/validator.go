package validation

import (
	"strings"

	"github.com/avant-dev/usersvc/internal/domain/user"
	"github.com/avant-dev/usersvc/internal/pkg/apperrors"
	"github.com/avant-dev/usersvc/internal/pkg/logger"
)

// UserValidator is the business-rule capability. Validate is pure and
// total: no I/O, and every user gets a definite verdict. A nil return
// is acceptance; a rejection is *apperrors.ValidationError.
type UserValidator interface {
	Validate(u *user.User) error
}

// Rule checks one property of a user. Returning nil passes the user to
// the next rule.
type Rule func(u *user.User) *apperrors.ValidationError

// NameRequired rejects blank names.
func NameRequired(u *user.User) *apperrors.ValidationError {
	if strings.TrimSpace(u.Name) == "" {
		return &apperrors.ValidationError{Reason: "name required"}
	}
	return nil
}

// EmailFormat requires an "@" with a "." somewhere after it. Anything
// stricter belongs to the mail collaborator, not this layer.
func EmailFormat(u *user.User) *apperrors.ValidationError {
	at := strings.Index(u.Email, "@")
	if at < 0 || !strings.Contains(u.Email[at+1:], ".") {
		return &apperrors.ValidationError{Reason: "invalid email format"}
	}
	return nil
}

type ruleValidator struct {
	rules []Rule
	log   *logger.Logger
}

// NewUserValidator builds the standard validator. Extra rules run after
// the built-in ones, in the order given; the first failure wins, so new
// rules never touch persistence or presentation code.
func NewUserValidator(baseLog *logger.Logger, extra ...Rule) UserValidator {
	rules := append([]Rule{NameRequired, EmailFormat}, extra...)
	return &ruleValidator{rules: rules, log: baseLog.With("component", "UserValidator")}
}

func (v *ruleValidator) Validate(u *user.User) error {
	for _, rule := range v.rules {
		if verr := rule(u); verr != nil {
			v.log.Debug("User rejected", "user_id", u.ID, "reason", verr.Reason)
			return verr
		}
	}
	return nil
}
