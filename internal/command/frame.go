package command

import (
	"encoding/hex"

	"github.com/rawbytedev/fixedstr"
	"github.com/rawbytedev/fixedstr/pkg/compactwire"
)

type FrameCommand struct {
	Meta

	compress bool
	offsets  bool
}

func (c *FrameCommand) Synopsis() string {
	return "Encode arguments into a compactwire data frame"
}

func (c *FrameCommand) Help() string {
	return `Usage: fixedstr frame [-compress] [-offsets] ARG...

  Prints the hex encoded data frame holding every argument.

Options:

  -compress  Compress the payload with zstd.
  -offsets   Include an offset table.`
}

func (c *FrameCommand) Run(args []string) int {
	fs := c.flagSet("frame")
	fs.BoolVar(&c.compress, "compress", false, "")
	fs.BoolVar(&c.offsets, "offsets", false, "")
	if err := fs.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	var flags byte
	if c.compress {
		flags |= compactwire.FlagCompressed
	}
	if c.offsets {
		flags |= compactwire.FlagHasOffsetTable
	}

	vals := make([]fixedstr.String, fs.NArg())
	for i, a := range fs.Args() {
		vals[i] = fixedstr.Lit(a)
	}

	codec := compactwire.NewCodec[byte]()
	defer codec.Close()
	frame, err := codec.EncodeFrame(vals, flags)
	if err != nil {
		c.Log.Error("encode frame", "error", err)
		c.UI.Error(err.Error())
		return 1
	}
	c.Log.Debug("encoded frame", "values", len(vals), "bytes", len(frame))
	c.UI.Output(hex.EncodeToString(frame))
	return 0
}

type VersionCommand struct {
	Meta
}

func (c *VersionCommand) Synopsis() string { return "Print the version" }

func (c *VersionCommand) Help() string { return "Usage: fixedstr version" }

func (c *VersionCommand) Run(_ []string) int {
	c.UI.Output("fixedstr v" + Version)
	return 0
}
