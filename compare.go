package fixedstr

import "github.com/rawbytedev/fixedstr/internal/contract"

const (
	opEqualLiteral   = "fixedstr::Sized::operator=="
	opCompareLiteral = "fixedstr::Sized::operator<=>"
)

// Equal reports whether a and b hold the same units. Strings of different
// lengths are never equal.
func Equal[U Unit](a, b Sized[U]) bool { return a.View().Equal(b.View()) }

// Compare orders a and b lexicographically, returning -1, 0 or +1. It is
// suitable for slices.SortFunc.
func Compare[U Unit](a, b Sized[U]) int { return a.View().Compare(b.View()) }

// Less reports whether a orders before b.
func Less[U Unit](a, b Sized[U]) bool { return Compare(a, b) < 0 }

// Equal reports whether s and o hold the same units.
func (s Sized[U]) Equal(o Sized[U]) bool { return Equal(s, o) }

// Compare orders s against o lexicographically.
func (s Sized[U]) Compare(o Sized[U]) int { return Compare(s, o) }

// EqualLiteral compares s with a terminated literal array, terminator
// excluded.
func (s Sized[U]) EqualLiteral(lit []U) bool {
	return s.View().Equal(literalView(opEqualLiteral, lit))
}

// CompareLiteral orders s against a terminated literal array.
func (s Sized[U]) CompareLiteral(lit []U) int {
	return s.View().Compare(literalView(opCompareLiteral, lit))
}

// literalView views lit minus its terminator.
func literalView[U Unit](op string, lit []U) View[U] {
	ok := len(lit) > 0 && lit[len(lit)-1] == 0
	contract.Expects(ok, op, "str[N] == 0")
	if len(lit) == 0 {
		return View[U]{}
	}
	return MakeView(lit[:len(lit)-1])
}
