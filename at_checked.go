//go:build !fixedstr_unchecked

package fixedstr

// CheckedAt reports whether At validates its position.
const CheckedAt = true

// At returns the unit at pos, or an *OutOfRangeError when pos is outside
// [0, N).
func (s Sized[U]) At(pos int) (U, error) {
	if pos < 0 || pos >= s.Len() {
		var zero U
		return zero, &OutOfRangeError{Pos: pos, Len: s.Len()}
	}
	return s.data[pos], nil
}
