package board

import (
	"strconv"

	"github.com/google/uuid"
)

// IDSource mints identifiers for new shapes and lanes. It replaces the
// module-global counters an editor might otherwise reach for: callers
// construct one and pass it where ids are minted, so tests can inject a
// deterministic source.
type IDSource interface {
	// NewID returns a fresh identifier, unique within the source.
	NewID() string
}

// UUIDSource mints random UUIDv4 identifiers. The zero value is ready
// to use and safe for concurrent callers.
type UUIDSource struct{}

// NewID implements IDSource.
func (UUIDSource) NewID() string { return uuid.NewString() }

// SequenceSource mints "prefix-1", "prefix-2", ... identifiers.
// Intended for tests and fixtures; not safe for concurrent use.
type SequenceSource struct {
	Prefix string
	next   int
}

// NewID implements IDSource.
func (s *SequenceSource) NewID() string {
	s.next++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "shape"
	}
	return prefix + "-" + strconv.Itoa(s.next)
}
