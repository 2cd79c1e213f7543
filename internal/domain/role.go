package domain

import (
	"database/sql/driver"
	"fmt"
)

// Role is the closed set of principal roles. The zero value is not a valid role.
type Role uint8

const (
	RoleJobSeeker Role = iota + 1
	RoleRecruiter
)

const (
	roleJobSeekerName = "Job Seeker"
	roleRecruiterName = "Recruiter"
)

var ErrInvalidRole = fmt.Errorf("role must be %q or %q", roleJobSeekerName, roleRecruiterName)

func ParseRole(s string) (Role, error) {
	switch s {
	case roleJobSeekerName:
		return RoleJobSeeker, nil
	case roleRecruiterName:
		return RoleRecruiter, nil
	}
	return 0, ErrInvalidRole
}

func (r Role) String() string {
	switch r {
	case RoleJobSeeker:
		return roleJobSeekerName
	case RoleRecruiter:
		return roleRecruiterName
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleRecruiter
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, ErrInvalidRole
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value stores the role as its display name in the users.role column.
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, ErrInvalidRole
	}
	return r.String(), nil
}

func (r *Role) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	}
	return fmt.Errorf("cannot scan %T into Role", src)
}

// RoleSet is an allow-list of roles.
type RoleSet []Role

func (s RoleSet) Contains(r Role) bool {
	for _, allowed := range s {
		if allowed == r {
			return true
		}
	}
	return false
}
