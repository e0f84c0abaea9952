package beacon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UnknownLabel names a ranged beacon whose UUID is not in the registry.
const UnknownLabel = "Unknown Beacon"

// ErrInvalidUUID is returned for identifiers that are not RFC 4122 UUIDs.
var ErrInvalidUUID = errors.New("invalid beacon UUID")

// ParseUUID parses a beacon proximity UUID in any of the forms accepted by
// github.com/google/uuid.
func ParseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q: %v", ErrInvalidUUID, s, err)
	}
	return id, nil
}

// ID identifies a single beacon transmitter.
type ID struct {
	UUID  uuid.UUID
	Major uint16
	Minor uint16
}

// String renders the ID as UUID/major/minor with an upper-case UUID.
func (id ID) String() string {
	return fmt.Sprintf("%s/%d/%d", strings.ToUpper(id.UUID.String()), id.Major, id.Minor)
}

// Registry maps beacon UUIDs to friendly names. It is immutable once built.
type Registry struct {
	names map[uuid.UUID]string
}

// NewRegistry copies names into a new Registry.
func NewRegistry(names map[uuid.UUID]string) Registry {
	cp := make(map[uuid.UUID]string, len(names))
	for k, v := range names {
		cp[k] = v
	}
	return Registry{names: cp}
}

// Lookup returns the registered name for a UUID.
func (r Registry) Lookup(id uuid.UUID) (string, bool) {
	name, ok := r.names[id]
	return name, ok
}

// Label returns the registered name, or UnknownLabel.
func (r Registry) Label(id uuid.UUID) string {
	if name, ok := r.Lookup(id); ok && name != "" {
		return name
	}
	return UnknownLabel
}

// Len returns the number of registered names.
func (r Registry) Len() int {
	return len(r.names)
}
