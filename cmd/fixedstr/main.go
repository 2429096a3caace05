package main

import (
	"os"

	"github.com/rawbytedev/fixedstr/internal/command"
)

func main() {
	os.Exit(command.Main(os.Args))
}
