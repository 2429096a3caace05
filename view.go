package fixedstr

import (
	"hash/maphash"
	"io"
	"iter"
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/cespare/xxhash/v2"

	"github.com/rawbytedev/fixedstr/internal/common"
	"github.com/rawbytedev/fixedstr/internal/contract"
)

const opViewIndex = "fixedstr::View::index"

// View is a non-owning, read-only window over a run of code units.
// A view obtained from a Sized stays valid for as long as that value is
// reachable; the contents never change.
type View[U Unit] struct {
	units []U
}

// MakeView borrows units as a view. The caller must not modify units while
// the view is in use.
func MakeView[U Unit](units []U) View[U] {
	return View[U]{units: units[:len(units):len(units)]}
}

// ViewString borrows the bytes of s as a narrow view.
func ViewString(s string) View[byte] {
	return View[byte]{units: common.BytesFromString(s)}
}

// Len returns the number of units in the view.
func (v View[U]) Len() int { return len(v.units) }

// Empty reports whether the view has no units.
func (v View[U]) Empty() bool { return len(v.units) == 0 }

// Index returns the unit at pos. Precondition: 0 <= pos < Len().
func (v View[U]) Index(pos int) U {
	contract.Expects(pos >= 0 && pos < len(v.units), opViewIndex, "pos < size()")
	return v.units[pos]
}

// All iterates over the positions and units in order.
func (v View[U]) All() iter.Seq2[int, U] { return slices.All(v.units) }

// Values iterates over the units in order.
func (v View[U]) Values() iter.Seq[U] { return slices.Values(v.units) }

// Backward iterates over the positions and units in reverse order.
func (v View[U]) Backward() iter.Seq2[int, U] { return slices.Backward(v.units) }

// Units returns a copy of the viewed units.
func (v View[U]) Units() []U { return slices.Clone(v.units) }

// Equal reports whether v and o hold the same units.
func (v View[U]) Equal(o View[U]) bool { return slices.Equal(v.units, o.units) }

// Compare orders v and o lexicographically, returning -1, 0 or +1.
func (v View[U]) Compare(o View[U]) int { return slices.Compare(v.units, o.units) }

// Hash returns the xxhash64 of the viewed units in host byte order.
func (v View[U]) Hash() uint64 { return xxhash.Sum64(common.UnitBytes(v.units)) }

// MapHash hashes the viewed units with hash/maphash under seed.
func (v View[U]) MapHash(seed maphash.Seed) uint64 {
	return maphash.Bytes(seed, common.UnitBytes(v.units))
}

// String renders the units: narrow units verbatim, 16-bit units as UTF-16,
// 32-bit units as runes.
func (v View[U]) String() string {
	switch common.UnitWidth[U]() {
	case 1:
		return string(common.UnitBytes(v.units))
	case 2:
		cu := make([]uint16, len(v.units))
		for i, u := range v.units {
			cu[i] = uint16(u)
		}
		return string(utf16.Decode(cu))
	default:
		var b strings.Builder
		b.Grow(len(v.units))
		for _, u := range v.units {
			b.WriteRune(rune(u))
		}
		return b.String()
	}
}

// WriteTo writes the rendering of the view to w and implements io.WriterTo.
func (v View[U]) WriteTo(w io.Writer) (int64, error) {
	if common.UnitWidth[U]() == 1 {
		n, err := w.Write(common.UnitBytes(v.units))
		return int64(n), err
	}
	n, err := io.WriteString(w, v.String())
	return int64(n), err
}
