package cli

import (
	"bufio"
	"fmt"
	"io"
)

// IO bundles the command's input and output streams. Prompts, tables and
// Opening: lines go to stdout; errors and warnings go to stderr.
type IO struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewIO creates a new IO instance.
func NewIO(in io.Reader, out, errOut io.Writer) *IO {
	return &IO{in: bufio.NewReader(in), out: out, errOut: errOut}
}

// Println writes a line to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes a line to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Warnf writes a warning line to stderr. Warnings do not affect the
// exit code.
func (o *IO) Warnf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.errOut, "Warning: "+format+"\n", a...)
}

// ReadLine reads one line of interactive input, without the trailing
// newline. EOF reads as an empty line so piped input that ends early
// behaves like pressing Enter.
func (o *IO) ReadLine() string {
	line, err := o.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}

	return line
}
