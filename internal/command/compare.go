package command

import (
	"slices"
	"strconv"

	"github.com/rawbytedev/fixedstr"
)

type CompareCommand struct {
	Meta
}

func (c *CompareCommand) Synopsis() string {
	return "Compare two strings lexicographically"
}

func (c *CompareCommand) Help() string {
	return `Usage: fixedstr compare A B

  Prints -1, 0 or 1 as A orders before, equal to or after B.`
}

func (c *CompareCommand) Run(args []string) int {
	if len(args) != 2 {
		c.UI.Error("compare takes exactly two arguments")
		return 1
	}
	c.UI.Output(strconv.Itoa(fixedstr.Compare(fixedstr.Lit(args[0]), fixedstr.Lit(args[1]))))
	return 0
}

type SortCommand struct {
	Meta
}

func (c *SortCommand) Synopsis() string {
	return "Sort arguments lexicographically"
}

func (c *SortCommand) Help() string {
	return `Usage: fixedstr sort ARG...

  Prints the arguments one per line in ascending order.`
}

func (c *SortCommand) Run(args []string) int {
	vals := make([]fixedstr.String, len(args))
	for i, a := range args {
		vals[i] = fixedstr.Lit(a)
	}
	slices.SortFunc(vals, fixedstr.Compare[byte])
	for _, v := range vals {
		c.UI.Output(v.String())
	}
	return 0
}
