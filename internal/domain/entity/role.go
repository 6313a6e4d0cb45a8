// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of role an account can have in the system.
// The canonical capitalized names are the wire form: they appear verbatim
// in token claims and API payloads.
type Role string

const (
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "Admin"
	// RoleMentor indicates a mentor.
	RoleMentor Role = "Mentor"
	// RoleStudent indicates a student. New accounts default to this role.
	RoleStudent Role = "Student"
)

// String returns the canonical string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMentor, RoleStudent:
		return true
	default:
		return false
	}
}

// ParseRole converts a string to its canonical Role, matching
// case-insensitively. An empty string yields the default RoleStudent.
// Presence and validity are checked here, at the deserialization boundary;
// inside the core a Role is never "absent".
func ParseRole(s string) (Role, bool) {
	if s == "" {
		return RoleStudent, true
	}
	for _, r := range []Role{RoleAdmin, RoleMentor, RoleStudent} {
		if strings.EqualFold(s, r.String()) {
			return r, true
		}
	}

	return "", false
}
