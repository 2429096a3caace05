package command

import (
	"fmt"

	"github.com/rawbytedev/fixedstr"
)

type HashCommand struct {
	Meta

	unit string
}

func (c *HashCommand) Synopsis() string {
	return "Print the hash of each argument"
}

func (c *HashCommand) Help() string {
	return `Usage: fixedstr hash [-unit=u8|u16|u32] ARG...

  Prints the xxhash64 of each argument's units.

Options:

  -unit=u8   Code unit width the arguments are stored with.`
}

func (c *HashCommand) Run(args []string) int {
	fs := c.flagSet("hash")
	fs.StringVar(&c.unit, "unit", "u8", "")
	if err := fs.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	var hash func(string) (uint64, error)
	switch c.unit {
	case "u8":
		hash = func(s string) (uint64, error) { return fixedstr.Lit(s).Hash(), nil }
	case "u16":
		hash = hashText[uint16]
	case "u32":
		hash = hashText[rune]
	default:
		c.UI.Error(fmt.Sprintf("unknown unit %q", c.unit))
		return 1
	}
	code := 0
	for _, a := range fs.Args() {
		h, err := hash(a)
		if err != nil {
			c.UI.Error(fmt.Sprintf("%q: %s", a, err))
			code = 1
			continue
		}
		c.UI.Output(fmt.Sprintf("%016x  %s", h, a))
	}
	return code
}

func hashText[U fixedstr.Unit](text string) (uint64, error) {
	var s fixedstr.Sized[U]
	if err := s.UnmarshalText([]byte(text)); err != nil {
		return 0, err
	}
	return s.Hash(), nil
}
