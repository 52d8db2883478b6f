// Package services contains application services for the loandesk client.
// This file defines the authentication service: form login, quick login,
// logout and the current principal.
package services

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/common"
	"github.com/dmitrijs2005/loandesk/internal/logging"
	"github.com/google/uuid"
)

const (
	MinUsernameLen = 2
	MinPasswordLen = 4
)

// LoginForm is the raw input of the login screen.
type LoginForm struct {
	Username string
	Password []byte
	Role     string
}

// ValidationErrors maps a form field to its message. It matches
// common.ErrorValidation under errors.Is.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return fmt.Sprintf("%s: %s", common.ErrorValidation, strings.Join(parts, "; "))
}

func (v ValidationErrors) Is(target error) bool {
	return target == common.ErrorValidation
}

// Validate checks the form and returns nil or a non-empty ValidationErrors.
func (f LoginForm) Validate() error {
	errs := ValidationErrors{}
	if utf8.RuneCountInString(strings.TrimSpace(f.Username)) < MinUsernameLen {
		errs["username"] = fmt.Sprintf("must be at least %d characters", MinUsernameLen)
	}
	if utf8.RuneCount(f.Password) < MinPasswordLen {
		errs["password"] = fmt.Sprintf("must be at least %d characters", MinPasswordLen)
	}
	if _, err := models.ParseRole(f.Role); err != nil {
		errs["role"] = "must be one of ADMIN, BROKER, ANALYST, VIEWER"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// QuickLogins are the demo accounts offered next to the form, keyed by role.
var QuickLogins = map[models.Role]string{
	models.RoleAdmin:   "alice.admin",
	models.RoleBroker:  "ben.broker",
	models.RoleAnalyst: "amy.analyst",
	models.RoleViewer:  "vic.viewer",
}

// TokenIssuer signs the session token attached to a new user.
type TokenIssuer interface {
	GenerateToken(u models.User) (string, error)
}

// SessionStore is the authentication state the service writes to.
type SessionStore interface {
	Login(u models.User) models.User
	Logout()
	Current() *models.User
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: validate the form; on failure the session is left untouched.
//   - QuickLogin: log in as the fixed demo account of a role.
//   - Logout: clear the session.
//   - Current: the logged-in user or nil.
type AuthService interface {
	Login(ctx context.Context, form LoginForm) (models.User, error)
	QuickLogin(ctx context.Context, role models.Role) (models.User, error)
	Logout(ctx context.Context)
	Current(ctx context.Context) *models.User
}

type authService struct {
	session SessionStore
	tokens  TokenIssuer
	logger  logging.Logger
}

// NewAuthService constructs an AuthService. tokens may be nil, in which case
// users carry no session token and never expire.
func NewAuthService(session SessionStore, tokens TokenIssuer, logger logging.Logger) AuthService {
	return &authService{session: session, tokens: tokens, logger: logger}
}

func (a *authService) Login(ctx context.Context, form LoginForm) (models.User, error) {
	if err := form.Validate(); err != nil {
		return models.User{}, err
	}
	role, _ := models.ParseRole(form.Role)
	return a.login(ctx, strings.TrimSpace(form.Username), role)
}

func (a *authService) QuickLogin(ctx context.Context, role models.Role) (models.User, error) {
	name, ok := QuickLogins[role]
	if !ok {
		return models.User{}, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, role)
	}
	return a.login(ctx, name, role)
}

func (a *authService) login(ctx context.Context, name string, role models.Role) (models.User, error) {
	u := models.User{ID: uuid.NewString(), Name: name, Role: role}

	if a.tokens != nil {
		token, err := a.tokens.GenerateToken(u)
		if err != nil {
			return models.User{}, fmt.Errorf("token error: %w", err)
		}
		u.Token = token
	}

	u = a.session.Login(u)
	a.logger.Info(ctx, "user logged in", "user", u.Name, "role", string(u.Role))
	return u, nil
}

func (a *authService) Logout(ctx context.Context) {
	if u := a.session.Current(); u != nil {
		a.logger.Info(ctx, "user logged out", "user", u.Name)
	}
	a.session.Logout()
}

func (a *authService) Current(ctx context.Context) *models.User {
	return a.session.Current()
}

// QuickLoginRoles returns the roles with a demo account, in display order.
func QuickLoginRoles() []models.Role {
	return slices.DeleteFunc(models.AllRoles(), func(r models.Role) bool {
		_, ok := QuickLogins[r]
		return !ok
	})
}
