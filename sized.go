package fixedstr

import (
	"iter"
	"slices"

	"github.com/rawbytedev/fixedstr/internal/contract"
)

const (
	opIndex     = "fixedstr::Sized::index"
	opFront     = "fixedstr::Sized::front"
	opBack      = "fixedstr::Sized::back"
	opSwap      = "fixedstr::Sized::swap"
	opAt        = "fixedstr::Sized::at"
	opLiteral   = "fixedstr::FromLiteral"
	opSeq       = "fixedstr::FromSeq"
	opContainer = "fixedstr::FromContainer"
)

// Sized is an immutable string of exactly N code units of type U.
//
// The zero value is the empty string. Copying a Sized copies the value;
// no operation except Swap and the Unmarshal methods changes an existing
// Sized, and none of them writes to storage another value can observe.
type Sized[U Unit] struct {
	// data holds N units followed by the zero terminator, nil when N == 0
	// and the value was never constructed.
	data []U
}

func alloc[U Unit](n int) Sized[U] {
	if n < 0 {
		n = 0
	}
	return Sized[U]{data: make([]U, n+1)}
}

// Of builds a sized string holding units in order. N is len(units).
func Of[U Unit](units ...U) Sized[U] {
	s := alloc[U](len(units))
	copy(s.data, units)
	return s
}

// FromLiteral builds a sized string from a terminated literal array of
// N+1 units. The last unit of lit must be zero.
func FromLiteral[U Unit](lit []U) Sized[U] {
	contract.Expects(len(lit) > 0 && lit[len(lit)-1] == 0, opLiteral, "str[N] == 0")
	if len(lit) == 0 {
		return alloc[U](0)
	}
	n := len(lit) - 1
	s := alloc[U](n)
	copy(s.data, lit[:n])
	return s
}

// Lit builds a narrow sized string from a Go string literal, one unit per
// byte.
func Lit(s string) String {
	out := alloc[byte](len(s))
	copy(out.data, s)
	return out
}

// FromSeq builds a sized string of n units from seq, converting each
// element to U. seq must yield exactly n elements.
func FromSeq[U, E Unit](n int, seq iter.Seq[E]) Sized[U] {
	s := alloc[U](n)
	i := 0
	for e := range seq {
		if i == len(s.data)-1 {
			i++
			break
		}
		s.data[i] = U(e)
		i++
	}
	contract.Expects(i == n, opSeq, "distance(begin, end) == N")
	return s
}

// FromContainer builds a sized string of n units from the whole of c,
// converting each element to U. len(c) must equal n.
func FromContainer[U Unit, C ~[]E, E Unit](n int, c C) Sized[U] {
	contract.Expects(len(c) == n, opContainer, "size(container) == N")
	s := alloc[U](n)
	for i := range min(len(s.data)-1, len(c)) {
		s.data[i] = U(c[i])
	}
	return s
}

// Len returns N.
func (s Sized[U]) Len() int {
	if s.data == nil {
		return 0
	}
	return len(s.data) - 1
}

// Size returns N.
func (s Sized[U]) Size() int { return s.Len() }

// MaxSize returns N; a sized string never grows.
func (s Sized[U]) MaxSize() int { return s.Len() }

// Empty reports whether N == 0.
func (s Sized[U]) Empty() bool { return s.Len() == 0 }

// units returns the logical content. The capacity is clipped so the
// terminator can never be reached through append.
func (s Sized[U]) units() []U {
	n := s.Len()
	return s.data[:n:n]
}

// View returns a read-only view of the N logical units.
func (s Sized[U]) View() View[U] {
	return View[U]{units: s.units()}
}

// Index returns the unit at pos without a bounds check.
// Precondition: 0 <= pos < N.
func (s Sized[U]) Index(pos int) U {
	contract.Expects(pos >= 0 && pos < s.Len(), opIndex, "pos < size()")
	return s.data[pos]
}

// Front returns the first unit. Precondition: N > 0.
func (s Sized[U]) Front() U {
	contract.Expects(!s.Empty(), opFront, "!empty()")
	return s.data[0]
}

// Back returns the last unit. Precondition: N > 0.
func (s Sized[U]) Back() U {
	contract.Expects(!s.Empty(), opBack, "!empty()")
	return s.data[s.Len()-1]
}

// All iterates over the positions and units in order.
func (s Sized[U]) All() iter.Seq2[int, U] { return s.View().All() }

// Values iterates over the units in order.
func (s Sized[U]) Values() iter.Seq[U] { return s.View().Values() }

// Backward iterates over the positions and units in reverse order.
func (s Sized[U]) Backward() iter.Seq2[int, U] { return s.View().Backward() }

// Units returns a copy of the N logical units.
func (s Sized[U]) Units() []U { return slices.Clone(s.units()) }

// CStr returns a copy of the N units followed by the terminator.
func (s Sized[U]) CStr() []U {
	if s.data == nil {
		return []U{0}
	}
	return slices.Clone(s.data)
}

// Swap exchanges the contents of s and o. Precondition: equal lengths.
func (s *Sized[U]) Swap(o *Sized[U]) {
	contract.Expects(s.Len() == o.Len(), opSwap, "size() == other.size()")
	s.data, o.data = o.data, s.data
}

// Swap exchanges the contents of a and b.
func Swap[U Unit](a, b *Sized[U]) { a.Swap(b) }
