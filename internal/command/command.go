// Package command implements the fixedstr command line tool.
package command

import (
	"bufio"
	"flag"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Version of the fixedstr tool.
const Version = "0.1.0"

// Meta carries the dependencies shared by every command.
type Meta struct {
	Log hclog.Logger
	UI  cli.Ui
}

func (m Meta) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Commands returns the command table for meta.
func Commands(meta Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"concat":  func() (cli.Command, error) { return &ConcatCommand{Meta: meta}, nil },
		"compare": func() (cli.Command, error) { return &CompareCommand{Meta: meta}, nil },
		"sort":    func() (cli.Command, error) { return &SortCommand{Meta: meta}, nil },
		"hash":    func() (cli.Command, error) { return &HashCommand{Meta: meta}, nil },
		"at":      func() (cli.Command, error) { return &AtCommand{Meta: meta}, nil },
		"frame":   func() (cli.Command, error) { return &FrameCommand{Meta: meta}, nil },
		"version": func() (cli.Command, error) { return &VersionCommand{Meta: meta}, nil },
	}
}

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	cliName := args[0]

	log := hclog.New(&hclog.LoggerOptions{
		Name:   cliName,
		Level:  hclog.LevelFromString(os.Getenv("FIXEDSTR_LOG_LEVEL")),
		Output: os.Stderr,
	})

	if len(args) == 2 && (args[1] == "-version" || args[1] == "-v") {
		args = []string{cliName, "version"}
	}

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  Version,
		Commands: Commands(Meta{Log: log, UI: ui}),
	}

	exitCode, err := c.Run()
	if err != nil {
		log.Error("cli failed", "error", err)
		return 1
	}
	return exitCode
}
