package fixedstr

import "github.com/rawbytedev/fixedstr/internal/common"

// Unit is the constraint satisfied by every code unit type.
type Unit interface {
	common.Unit
}

type (
	// WChar is a wide character unit.
	WChar int32
	// Char8 is a UTF-8 code unit, distinct from a narrow byte.
	Char8 uint8
)

type (
	String    = Sized[byte]
	WString   = Sized[WChar]
	U8String  = Sized[Char8]
	U16String = Sized[uint16]
	U32String = Sized[rune]
)
