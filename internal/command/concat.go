package command

import (
	"fmt"

	"github.com/rawbytedev/fixedstr"
)

type ConcatCommand struct {
	Meta
}

func (c *ConcatCommand) Synopsis() string {
	return "Concatenate arguments into one sized string"
}

func (c *ConcatCommand) Help() string {
	return `Usage: fixedstr concat ARG...

  Concatenates every argument left to right and prints the result
  followed by its length.`
}

func (c *ConcatCommand) Run(args []string) int {
	parts := make([]fixedstr.String, len(args))
	for i, a := range args {
		parts[i] = fixedstr.Lit(a)
	}
	s := fixedstr.Join(parts...)
	c.Log.Debug("concatenated", "parts", len(parts), "len", s.Len())
	c.UI.Output(fmt.Sprintf("%s (%d)", s, s.Len()))
	return 0
}
