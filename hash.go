package fixedstr

import (
	"hash/maphash"

	"github.com/rawbytedev/fixedstr/internal/common"
)

// Hash returns the hash of the view. For a String it equals
// xxhash.Sum64String of the content.
func (s Sized[U]) Hash() uint64 { return s.View().Hash() }

// MapHash returns the maphash of the view under seed. For a String it
// equals maphash.String(seed, content).
func (s Sized[U]) MapHash(seed maphash.Seed) uint64 { return s.View().MapHash(seed) }

// Key returns the raw units as a comparable string, suitable as a map key.
// Two values of the same unit type have equal keys iff they are Equal.
func (s Sized[U]) Key() string {
	return common.StringFromBytes(common.UnitBytes(s.units()))
}
