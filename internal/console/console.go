// Package console provides line-oriented terminal I/O with a switchable
// foreground colour.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/go-ports/zoo/internal/palette"
)

// ErrNoInput is returned by ReadLine when the input stream has no further line.
var ErrNoInput = errors.New("no input")

// Console reads lines from an input stream and writes text in the current colour.
type Console struct {
	in    *bufio.Reader
	out   *termenv.Output
	color termenv.Color
}

// New wraps in and out. The colour profile is detected from out unless an
// option such as termenv.WithProfile overrides it.
func New(in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: termenv.NewOutput(out, opts...),
	}
}

// SetColor applies col to everything written afterwards.
func (c *Console) SetColor(col palette.Color) {
	c.color = col.Termenv(c.out.Profile)
}

// Print writes the operands like fmt.Print.
func (c *Console) Print(a ...any) {
	c.write(fmt.Sprint(a...))
}

// Println writes the operands like fmt.Println.
func (c *Console) Println(a ...any) {
	c.write(fmt.Sprintln(a...))
}

// Printf writes according to format like fmt.Printf.
func (c *Console) Printf(format string, a ...any) {
	c.write(fmt.Sprintf(format, a...))
}

// ReadLine returns the next input line without its line terminator.
// A final line lacking a terminator is still returned; ErrNoInput signals
// that the stream is exhausted.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("console: read line: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt writes question and reads the answer.
func (c *Console) Prompt(question string) (string, error) {
	c.Print(question)
	return c.ReadLine()
}

// write styles each line separately so escape sequences never span a newline.
func (c *Console) write(s string) {
	if c.color == nil {
		_, _ = io.WriteString(c.out, s)
		return
	}
	var b strings.Builder
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line != "" {
			b.WriteString(c.out.String(line).Foreground(c.color).String())
		}
	}
	_, _ = io.WriteString(c.out, b.String())
}
