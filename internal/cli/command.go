package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command defines a CLI subcommand with unified help generation.
type Command struct {
	// Flags defines command-specific flags.
	// The FlagSet name is not used - command identity comes from Usage.
	Flags *flag.FlagSet

	// Usage is the freeform usage string shown after "ado" in help.
	// Includes the command name and arguments/flags.
	// Examples: "repo list [flags]", "workitem browse --id <n>"
	Usage string

	// Short is a one-line description for the global help listing.
	Short string

	// Long is the full description shown in command help.
	// If empty, Short is used instead.
	Long string

	// Exec runs the command after flags are parsed.
	Exec func(o *IO, args []string) error
}

// usageError marks a handled argument error (missing required option).
// It exits with code 2 rather than 1, matching argument-parse failures.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// HelpLine returns the short help line for the main usage display.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-36s %s", c.Usage, c.Short)
}

// PrintHelp prints the full help output for "ado <cmd> --help".
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: ado", c.Usage)
	o.Println()

	desc := c.Long
	if desc == "" {
		desc = c.Short
	}

	o.Println(desc)

	if c.Flags != nil && c.Flags.HasFlags() {
		o.Println()
		o.Println("Flags:")

		var buf strings.Builder
		c.Flags.SetOutput(&buf)
		c.Flags.PrintDefaults()
		o.Printf("%s", buf.String())
	}
}

// Run parses flags and executes the command. Returns the exit code:
// 0 on success, 1 on a handled user-facing error, 2 on argument errors.
// Error printing happens here for consistent output ordering.
func (c *Command) Run(o *IO, args []string) int {
	c.Flags.SetOutput(io.Discard) // discard pflag output

	err := c.Flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintHelp(o)
			return 0
		}

		o.ErrPrintln("Error:", err)
		o.ErrPrintln()
		c.PrintHelp(o)

		return 2
	}

	if err := c.Exec(o, c.Flags.Args()); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			o.ErrPrintln("Error:", uerr.msg)
			o.ErrPrintln()
			c.PrintHelp(o)

			return 2
		}

		o.ErrPrintln("Error:", err)

		return 1
	}

	return 0
}
