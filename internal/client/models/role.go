// Package models defines the loan-desk domain records shared by the data
// service, the state stores and the presentation layer.
package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/loandesk/internal/common"
)

// Role determines which routes and workflow actions a user can reach.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleBroker  Role = "BROKER"
	RoleAnalyst Role = "ANALYST"
	RoleViewer  Role = "VIEWER"
)

// AllRoles lists the closed role enumeration in display order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleBroker, RoleAnalyst, RoleViewer}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleBroker, RoleAnalyst, RoleViewer:
		return true
	}
	return false
}

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", common.ErrorValidation, s)
	}
	return r, nil
}

// User is the logged-in principal. Token is a signed demo session token and
// may be empty.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Token string `json:"token,omitempty"`
}
