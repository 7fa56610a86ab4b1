package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/gommon/color"
)

// ErrInvalidNumber is returned by PromptInt when the line is not an
// integer.
var ErrInvalidNumber = errors.New("invalid response. Please enter a valid integer")

// Context is handed to every command handler.  It carries the
// cancellation context of the loop and the terminal streams.
type Context struct {
	ctx   context.Context
	in    LineReader
	out   io.Writer
	color *color.Color

	choice int
	label  string
}

// Context returns the context.Context the loop is running under.
func (c *Context) Context() context.Context { return c.ctx }

// Choice is the menu number that selected the running handler.
func (c *Context) Choice() int { return c.choice }

// Label is the menu label of the running handler.
func (c *Context) Label() string { return c.label }

// Println writes a line to the terminal.
func (c *Context) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted output to the terminal.
func (c *Context) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Successln writes a confirmation line, green on a terminal.
func (c *Context) Successln(msg string) {
	fmt.Fprintln(c.out, c.color.Green(msg))
}

// Errorln writes an error line, red on a terminal.
func (c *Context) Errorln(msg string) {
	fmt.Fprintln(c.out, c.color.Red(msg))
}

// Prompt prints msg and reads one line.  Surrounding whitespace is
// trimmed.  At the end of input it returns io.EOF.
func (c *Context) Prompt(msg string) (string, error) {
	fmt.Fprint(c.out, msg)
	line, err := c.in.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptInt prompts and parses the answer as an integer.  A malformed
// answer returns ErrInvalidNumber; nothing has been consumed beyond the
// offending line, so the caller can simply carry on.
func (c *Context) PromptInt(msg string) (int, error) {
	line, err := c.Prompt(msg)
	if err != nil {
		return 0, err
	}
	return ParseInt(line)
}

// ParseInt parses a whole line as a base-10 integer.  Trailing garbage
// such as "12abc" is rejected.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return n, nil
}
