package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/brewdump/cmd/brewdump"
	"github.com/arthur-debert/brewdump/internal/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

// run writes brewdump(1) to w, or one page per command into the directory
// given as the only argument.
func run(args []string, w io.Writer) error {
	header := manHeader()
	rootCmd := brewdump.NewRootCmd()

	switch len(args) {
	case 0:
		return doc.GenMan(rootCmd, header, w)
	case 1:
		if err := os.MkdirAll(args[0], 0755); err != nil {
			return err
		}
		return doc.GenManTree(rootCmd, header, args[0])
	default:
		return fmt.Errorf("usage: brewdump-manpage [output-dir]")
	}
}

// manHeader stamps pages with the release date when the build carries one.
// Title is left empty so each page is titled after its own command.
func manHeader() *doc.GenManHeader {
	header := &doc.GenManHeader{
		Section: "1",
		Source:  "brewdump " + version.Version,
		Manual:  "Homebrew Cask Dumper",
	}
	if built, err := time.Parse(time.RFC3339, version.Date); err == nil {
		header.Date = &built
	}
	return header
}
