// Package cmd implements the CLI application that analyzes the inventory
// backup and prints the financial reports.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/nanis/breakeven"
)

// Commands lists the subcommands of the bep tool.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&purchasesCmd{},
	&salesCmd{},
	&inventoryCmd{},
	&withdrawalsCmd{},
	&topicCmd{},
}

// loadBackup is the central place commands load the backup from. It maps
// the three failure kinds to one descriptive line on stderr, so a broken
// input never produces a stack trace.
func loadBackup(path string) (*breakeven.Backup, subcommands.ExitStatus) {
	b, err := breakeven.LoadBackup(path)
	if err == nil {
		return b, subcommands.ExitSuccess
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(os.Stderr, "Error: could not find the backup file %q\n", path)
	case errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF):
		fmt.Fprintf(os.Stderr, "Error reading the backup JSON: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)
	}
	return nil, subcommands.ExitFailure
}

// printMarkdown renders a markdown report to the terminal. When the
// terminal renderer cannot be built the raw markdown is printed instead,
// so a report is never lost to a styling failure.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		log.Printf("terminal renderer unavailable: %v", err)
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		log.Printf("markdown rendering failed: %v", err)
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
