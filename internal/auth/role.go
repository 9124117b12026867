package auth

import "fmt"

// Role is the closed set of user roles. Anything outside the enumeration
// fails ParseRole and is denied by every gate, so an unrecognized role
// string can never slip through a check.
type Role string

const (
	RoleAgent      Role = "agent"
	RoleSupervisor Role = "supervisor"
	RoleGerente    Role = "gerente"
	RoleAdmin      Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAgent, RoleSupervisor, RoleGerente, RoleAdmin:
		return Role(s), nil
	}

	return "", fmt.Errorf("unknown role: %q", s)
}

// CanOperate reports whether the role may reach the records module.
func (r Role) CanOperate() bool {
	switch r {
	case RoleAgent, RoleSupervisor, RoleGerente, RoleAdmin:
		return true
	}

	return false
}

// Elevated reports whether the role may view and edit records created by
// other users. Plain agents only ever touch their own records.
func (r Role) Elevated() bool {
	switch r {
	case RoleSupervisor, RoleGerente, RoleAdmin:
		return true
	case RoleAgent:
		return false
	}

	return false
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }
