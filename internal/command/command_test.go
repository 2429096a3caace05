package command

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/fixedstr"
	"github.com/rawbytedev/fixedstr/pkg/compactwire"
)

func testMeta() (Meta, *cli.MockUi) {
	ui := cli.NewMockUi()
	return Meta{Log: hclog.NewNullLogger(), UI: ui}, ui
}

func TestConcatCommand(t *testing.T) {
	meta, ui := testMeta()
	c := &ConcatCommand{Meta: meta}
	require.Equal(t, 0, c.Run([]string{"1", "2", "34"}))
	require.Equal(t, "1234 (4)\n", ui.OutputWriter.String())
}

func TestCompareCommand(t *testing.T) {
	meta, ui := testMeta()
	c := &CompareCommand{Meta: meta}
	require.Equal(t, 0, c.Run([]string{"abc", "abd"}))
	require.Equal(t, "-1\n", ui.OutputWriter.String())

	require.Equal(t, 1, c.Run([]string{"abc"}))
	require.Contains(t, ui.ErrorWriter.String(), "exactly two")
}

func TestSortCommand(t *testing.T) {
	meta, ui := testMeta()
	c := &SortCommand{Meta: meta}
	require.Equal(t, 0, c.Run([]string{"3", "1", "4", "2"}))
	require.Equal(t, "1\n2\n3\n4\n", ui.OutputWriter.String())
}

func TestHashCommand(t *testing.T) {
	meta, ui := testMeta()
	c := &HashCommand{Meta: meta}
	require.Equal(t, 0, c.Run([]string{"123"}))
	require.True(t, strings.HasPrefix(ui.OutputWriter.String(), hex.EncodeToString(be64(xxhash.Sum64String("123")))))

	wide := runHash(t, "u16", "123")
	require.Contains(t, wide, "  123")

	require.Equal(t, 1, c.Run([]string{"-unit=u7", "x"}))
}

func TestHashCommandInvalidText(t *testing.T) {
	meta, ui := testMeta()
	c := &HashCommand{Meta: meta}
	require.Equal(t, 1, c.Run([]string{"-unit=u16", "ok", "bad\xff"}))
	require.Contains(t, ui.OutputWriter.String(), "  ok")
	require.Contains(t, ui.ErrorWriter.String(), `"bad\xff"`)
	require.Contains(t, ui.ErrorWriter.String(), fixedstr.ErrInvalidText.Error())

	// narrow units take any bytes
	require.Contains(t, runHash(t, "u8", "bad\xff"), "  bad")
}

// runHash runs hash with -unit and returns its output.
func runHash(t *testing.T, unit, arg string) string {
	meta, ui := testMeta()
	c := &HashCommand{Meta: meta}
	require.Equal(t, 0, c.Run([]string{"-unit=" + unit, arg}))
	return ui.OutputWriter.String()
}

func be64(x uint64) []byte {
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = byte(x)
		x >>= 8
	}
	return b
}

func TestAtCommand(t *testing.T) {
	meta, ui := testMeta()
	c := &AtCommand{Meta: meta}
	code := c.Run([]string{"-pos=0,2,3", "abc"})
	require.Equal(t, "0: a\n2: c\n", ui.OutputWriter.String())
	if fixedstr.CheckedAt {
		require.Equal(t, 1, code)
		require.Equal(t, "3: fixedstr::Sized::at\n", ui.ErrorWriter.String())
	}
}

func TestAtCommandNonASCII(t *testing.T) {
	meta, ui := testMeta()
	c := &AtCommand{Meta: meta}
	require.Equal(t, 0, c.Run([]string{"-pos=0,1,2", "éx"}))
	require.Equal(t, "0: 0xc3\n1: 0xa9\n2: x\n", ui.OutputWriter.String())
}

func TestAtCommandBadPositions(t *testing.T) {
	meta, ui := testMeta()
	c := &AtCommand{Meta: meta}
	require.Equal(t, 1, c.Run([]string{"-pos=x,1,y", "abc"}))
	out := ui.ErrorWriter.String()
	require.Contains(t, out, `invalid position "x"`)
	require.Contains(t, out, `invalid position "y"`)

	require.Equal(t, 1, c.Run([]string{"abc"}))
}

func TestFrameCommand(t *testing.T) {
	meta, ui := testMeta()
	c := &FrameCommand{Meta: meta}
	require.Equal(t, 0, c.Run([]string{"-compress", "-offsets", "a", "bc"}))

	raw, err := hex.DecodeString(strings.TrimSpace(ui.OutputWriter.String()))
	require.NoError(t, err)
	vals, flags, err := compactwire.NewCodec[byte]().DecodeFrame(raw)
	require.NoError(t, err)
	require.Equal(t, compactwire.FlagCompressed|compactwire.FlagHasOffsetTable, flags)
	require.Len(t, vals, 2)
	require.Equal(t, "bc", vals[1].String())
}

func TestCommandsTable(t *testing.T) {
	meta, _ := testMeta()
	cmds := Commands(meta)
	for _, name := range []string{"concat", "compare", "sort", "hash", "at", "frame", "version"} {
		f, ok := cmds[name]
		require.True(t, ok, name)
		cmd, err := f()
		require.NoError(t, err)
		require.NotEmpty(t, cmd.Synopsis())
		require.NotEmpty(t, cmd.Help())
	}
}
