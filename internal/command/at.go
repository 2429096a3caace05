package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"github.com/rawbytedev/fixedstr"
)

type AtCommand struct {
	Meta

	pos string
}

func (c *AtCommand) Synopsis() string {
	return "Print units at positions with the bounds-checked accessor"
}

func (c *AtCommand) Help() string {
	return `Usage: fixedstr at -pos=P[,P...] STR

  Prints the unit at each position of STR. Positions outside the string
  print the accessor's error and make the command exit with status 1.`
}

func (c *AtCommand) Run(args []string) int {
	fs := c.flagSet("at")
	fs.StringVar(&c.pos, "pos", "", "")
	if err := fs.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if fs.NArg() != 1 {
		c.UI.Error("at takes exactly one string")
		return 1
	}

	positions, err := parsePositions(c.pos)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	s := fixedstr.Lit(fs.Arg(0))
	code := 0
	for _, p := range positions {
		u, err := s.At(p)
		if err != nil {
			var oor *fixedstr.OutOfRangeError
			if errors.As(err, &oor) {
				c.Log.Debug("position out of range", "pos", oor.Pos, "len", oor.Len)
			}
			c.UI.Error(fmt.Sprintf("%d: %s", p, err))
			code = 1
			continue
		}
		c.UI.Output(formatUnit(p, u))
	}
	return code
}

// parsePositions parses a comma separated list, reporting every bad entry.
func parsePositions(list string) ([]int, error) {
	if list == "" {
		return nil, errors.New("-pos is required")
	}
	var merr *multierror.Error
	var out []int
	for _, f := range strings.Split(list, ",") {
		p, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("invalid position %q", f))
			continue
		}
		out = append(out, p)
	}
	return out, merr.ErrorOrNil()
}

// formatUnit prints ASCII units as characters and other bytes in hex.
func formatUnit(p int, u byte) string {
	if u < utf8.RuneSelf {
		return fmt.Sprintf("%d: %c", p, u)
	}
	return fmt.Sprintf("%d: %#02x", p, u)
}
