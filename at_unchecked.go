//go:build fixedstr_unchecked

package fixedstr

// CheckedAt reports whether At validates its position.
const CheckedAt = false

// At returns the unit at pos. This build does not check pos; the error is
// always nil and pos outside [0, N) is a precondition violation.
func (s Sized[U]) At(pos int) (U, error) {
	return s.Index(pos), nil
}
