package beacon

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Constraint selects beacons by UUID and optionally by major and minor.
// A nil Major or Minor matches any value.
type Constraint struct {
	UUID  uuid.UUID
	Major *uint16
	Minor *uint16
}

// ParseConstraint builds a Constraint from a UUID string.
func ParseConstraint(s string, major, minor *uint16) (Constraint, error) {
	id, err := ParseUUID(s)
	if err != nil {
		return Constraint{}, err
	}
	return Constraint{UUID: id, Major: major, Minor: minor}, nil
}

// Matches reports whether the beacon satisfies the constraint.
func (c Constraint) Matches(id ID) bool {
	if id.UUID != c.UUID {
		return false
	}
	if c.Major != nil && *c.Major != id.Major {
		return false
	}
	if c.Minor != nil && *c.Minor != id.Minor {
		return false
	}
	return true
}

// String renders the constraint with "*" for unconstrained fields.
func (c Constraint) String() string {
	major, minor := "*", "*"
	if c.Major != nil {
		major = fmt.Sprint(*c.Major)
	}
	if c.Minor != nil {
		minor = fmt.Sprint(*c.Minor)
	}
	return strings.ToUpper(c.UUID.String()) + "/" + major + "/" + minor
}

// Region is a monitored area identified by a constraint.
type Region struct {
	Identifier string
	Constraint Constraint
}
