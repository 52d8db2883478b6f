// Package router maps the dashboard's routes to the guard decisions that
// protect them.
package router

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/loandesk/internal/client/guard"
	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/common"
)

const (
	PathRoot         = "/"
	PathLogin        = guard.PathLogin
	PathUnauthorized = guard.PathUnauthorized
	PathDashboard    = "/dashboard"
)

// ErrUnknownRoute is returned for paths outside the route table.
var ErrUnknownRoute = fmt.Errorf("%w: unknown route", common.ErrorNotFound)

// Route is one entry of the route table. A Protected route is checked with
// guard.Decide against Roles (empty means any logged-in user).
type Route struct {
	Path       string
	RedirectTo string
	Protected  bool
	Roles      []models.Role
}

// Routes is the route table.
var Routes = map[string]Route{
	PathRoot:         {Path: PathRoot, RedirectTo: PathLogin},
	PathLogin:        {Path: PathLogin},
	PathUnauthorized: {Path: PathUnauthorized},
	PathDashboard:    {Path: PathDashboard, Protected: true, Roles: models.AllRoles()},
}

// CurrentUser supplies the logged-in user, or nil.
type CurrentUser interface {
	Current() *models.User
}

// Router tracks the current route. Safe for concurrent use.
type Router struct {
	auth CurrentUser

	mu      sync.Mutex
	current string
}

// New returns a router positioned on the login page.
func New(auth CurrentUser) *Router {
	return &Router{auth: auth, current: PathLogin}
}

// Resolve follows static redirects and guard denials from path and returns
// the route navigation ends on, with the last guard decision taken.
func (r *Router) Resolve(path string) (string, guard.Decision, error) {
	decision := guard.Allow
	for hops := 0; hops < len(Routes); hops++ {
		route, ok := Routes[path]
		if !ok {
			return "", decision, fmt.Errorf("%q: %w", path, ErrUnknownRoute)
		}
		if route.RedirectTo != "" {
			path = route.RedirectTo
			continue
		}
		if route.Protected {
			decision = guard.Decide(r.auth.Current(), route.Roles...)
			if decision != guard.Allow {
				path = decision.Redirect()
				continue
			}
		}
		return path, decision, nil
	}
	return "", decision, fmt.Errorf("%q: redirect loop", path)
}

// Navigate resolves path and moves there. On error the current route is kept.
func (r *Router) Navigate(path string) (string, guard.Decision, error) {
	final, decision, err := r.Resolve(path)
	if err != nil {
		return r.Current(), decision, err
	}

	r.mu.Lock()
	r.current = final
	r.mu.Unlock()

	return final, decision, nil
}

// Current returns the current route.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
