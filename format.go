package fixedstr

import (
	"fmt"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/fixedstr/internal/common"
)

// String renders the content as View.String does. Narrow strings share the
// immutable storage instead of copying it.
func (s Sized[U]) String() string {
	if common.UnitWidth[U]() == 1 {
		return s.Key()
	}
	return s.View().String()
}

// WriteTo writes exactly the rendered content to w.
func (s Sized[U]) WriteTo(w io.Writer) (int64, error) { return s.View().WriteTo(w) }

// MarshalText implements encoding.TextMarshaler. Wide units with no text
// form (lone surrogates, values outside the Unicode scalar range) fail with
// ErrInvalidUnits instead of being replaced.
func (s Sized[U]) MarshalText() ([]byte, error) {
	text, err := s.text()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It replaces the whole
// value with the decoded text. Wide strings need valid UTF-8 and fail with
// ErrInvalidText otherwise, leaving the value unchanged.
func (s *Sized[U]) UnmarshalText(text []byte) error {
	if common.UnitWidth[U]() > 1 && !utf8.Valid(text) {
		return ErrInvalidText
	}
	*s = fromText[U](string(text))
	return nil
}

// MarshalYAML renders the string as a YAML scalar. It fails like
// MarshalText.
func (s Sized[U]) MarshalYAML() (any, error) {
	return s.text()
}

// text is String for content that fromText maps back unit for unit.
func (s Sized[U]) text() (string, error) {
	if i := invalidUnit(s.units()); i >= 0 {
		return "", fmt.Errorf("%w: unit %d", ErrInvalidUnits, i)
	}
	return s.String(), nil
}

// invalidUnit returns the position of the first unit without a lossless
// text rendering, or -1.
func invalidUnit[U Unit](units []U) int {
	switch common.UnitWidth[U]() {
	case 1:
		return -1
	case 2:
		for i := 0; i < len(units); i++ {
			r := rune(uint16(units[i]))
			if !utf16.IsSurrogate(r) {
				continue
			}
			if r >= 0xDC00 || i+1 == len(units) {
				return i
			}
			if next := rune(uint16(units[i+1])); next < 0xDC00 || next > 0xDFFF {
				return i
			}
			i++
		}
	default:
		for i, u := range units {
			if !utf8.ValidRune(rune(u)) {
				return i
			}
		}
	}
	return -1
}

// UnmarshalYAML replaces the value with the decoded scalar.
func (s *Sized[U]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", ErrNotScalar, node.Line)
	}
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	*s = fromText[U](text)
	return nil
}

// fromText is the inverse of View.String.
func fromText[U Unit](text string) Sized[U] {
	switch common.UnitWidth[U]() {
	case 1:
		return FromContainer[U](len(text), []byte(text))
	case 2:
		cu := utf16.Encode([]rune(text))
		return FromContainer[U](len(cu), cu)
	default:
		r := []rune(text)
		return FromContainer[U](len(r), r)
	}
}
