// Package guard decides whether the current user may reach a route or trigger
// a workflow action.
package guard

import (
	"slices"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
)

// Decision is the outcome of a route check.
type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

const (
	PathLogin        = "/login"
	PathUnauthorized = "/unauthorized"
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "deny-unauthenticated"
	case DenyForbidden:
		return "deny-forbidden"
	}
	return "unknown"
}

// Redirect returns the route a denied navigation lands on, or "" for Allow.
func (d Decision) Redirect() string {
	switch d {
	case DenyUnauthenticated:
		return PathLogin
	case DenyForbidden:
		return PathUnauthorized
	}
	return ""
}

// Decide checks user against the required role set. An empty set admits any
// logged-in user.
func Decide(user *models.User, required ...models.Role) Decision {
	if user == nil {
		return DenyUnauthenticated
	}
	if len(required) > 0 && !slices.Contains(required, user.Role) {
		return DenyForbidden
	}
	return Allow
}

var actionRoles = map[models.Action][]models.Role{
	models.ActionRequestDocuments:    {models.RoleAdmin, models.RoleBroker, models.RoleAnalyst},
	models.ActionSendToValuer:        {models.RoleAdmin, models.RoleBroker, models.RoleAnalyst},
	models.ActionApproveLoan:         {models.RoleAdmin, models.RoleAnalyst},
	models.ActionEscalateToCommittee: {models.RoleAdmin, models.RoleBroker, models.RoleAnalyst},
}

// ActionRoles returns the roles allowed to see and trigger action. Unknown
// actions get nil.
func ActionRoles(action models.Action) []models.Role {
	return slices.Clone(actionRoles[action])
}

// CanPerform reports whether user may trigger action. Unknown actions are
// never allowed.
func CanPerform(user *models.User, action models.Action) bool {
	roles, ok := actionRoles[action]
	if !ok {
		return false
	}
	return Decide(user, roles...) == Allow
}

// VisibleActions filters models.AllActions down to those user may trigger.
func VisibleActions(user *models.User) []models.Action {
	var out []models.Action
	for _, a := range models.AllActions() {
		if CanPerform(user, a) {
			out = append(out, a)
		}
	}
	return out
}
