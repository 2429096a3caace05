package fixedstr

const (
	opAppendLiteral  = "fixedstr::AppendLiteral"
	opPrependLiteral = "fixedstr::PrependLiteral"
)

func join[U Unit](parts ...[]U) Sized[U] {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := alloc[U](n)
	off := 0
	for _, p := range parts {
		off += copy(out.data[off:], p)
	}
	return out
}

// Concat returns a new string of length a.Len()+b.Len() holding the units
// of a followed by those of b.
func Concat[U Unit](a, b Sized[U]) Sized[U] { return join(a.units(), b.units()) }

// Append returns a new string of length a.Len()+1 ending with c.
func Append[U Unit](a Sized[U], c U) Sized[U] { return join(a.units(), []U{c}) }

// Prepend returns a new string of length 1+a.Len() starting with c.
func Prepend[U Unit](c U, a Sized[U]) Sized[U] { return join([]U{c}, a.units()) }

// AppendLiteral returns a followed by the terminated literal lit, terminator
// excluded.
func AppendLiteral[U Unit](a Sized[U], lit []U) Sized[U] {
	return join(a.units(), literalView(opAppendLiteral, lit).units)
}

// PrependLiteral returns the terminated literal lit, terminator excluded,
// followed by a.
func PrependLiteral[U Unit](lit []U, a Sized[U]) Sized[U] {
	return join(literalView(opPrependLiteral, lit).units, a.units())
}

// Join concatenates parts left to right. Join() is the empty string.
func Join[U Unit](parts ...Sized[U]) Sized[U] {
	units := make([][]U, len(parts))
	for i, p := range parts {
		units[i] = p.units()
	}
	return join(units...)
}
