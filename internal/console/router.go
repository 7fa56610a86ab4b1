// Package console runs the numbered main menu of the front desk.  It
// plays the part a web framework plays for an HTTP service: handlers are
// registered against menu numbers, middleware wraps them, and Run drives
// the read-dispatch loop.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/labstack/gommon/color"
)

// ErrExit is returned by a handler to end the loop normally.
var ErrExit = errors.New("exit")

// HandlerFunc runs one menu command.
type HandlerFunc func(c *Context) error

// MiddlewareFunc wraps a handler.
type MiddlewareFunc func(next HandlerFunc) HandlerFunc

type route struct {
	label   string
	handler HandlerFunc
}

// Router maps menu numbers to handlers and runs the loop.
type Router struct {
	Title string

	in         LineReader
	out        io.Writer
	color      *color.Color
	routes     map[int]route
	middleware []MiddlewareFunc
	log        *slog.Logger
}

// Option customizes a Router.
type Option func(*Router)

// WithLogger sets the logger used for loop-level events.
func WithLogger(log *slog.Logger) Option {
	return func(r *Router) { r.log = log }
}

// WithColor enables or disables colored output.  Color is only ever
// emitted when out is a terminal.
func WithColor(enabled bool) Option {
	return func(r *Router) {
		if !enabled {
			r.color.Disable()
		}
	}
}

// New returns a router reading from in and writing to out.
func New(in LineReader, out io.Writer, opts ...Option) *Router {
	c := color.New()
	c.SetOutput(out)
	r := &Router{
		Title:  "Hotel Management System:",
		in:     in,
		out:    out,
		color:  c,
		routes: make(map[int]route),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers h under choice.  Registering the same choice twice
// panics, as does a nil handler.
func (r *Router) Add(choice int, label string, h HandlerFunc) {
	if h == nil {
		panic(fmt.Sprintf("console: nil handler for choice %d", choice))
	}
	if _, dup := r.routes[choice]; dup {
		panic(fmt.Sprintf("console: choice %d registered twice", choice))
	}
	r.routes[choice] = route{label: label, handler: h}
}

// Use appends middleware.  The first middleware added is the outermost.
func (r *Router) Use(m ...MiddlewareFunc) {
	r.middleware = append(r.middleware, m...)
}

// Choices returns the registered menu numbers in ascending order.
func (r *Router) Choices() []int {
	out := make([]int, 0, len(r.routes))
	for n := range r.routes {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// PrintMenu writes the title and the numbered options.
func (r *Router) PrintMenu() {
	fmt.Fprintf(r.out, "\n%s\n", r.Title)
	for _, n := range r.Choices() {
		fmt.Fprintf(r.out, "%d. %s\n", n, r.routes[n].label)
	}
}

// Run prints the menu, reads a choice and dispatches it until a handler
// returns ErrExit, the input ends, or ctx is cancelled.  Malformed
// choices, unknown choices and handler errors are reported on the
// terminal and the loop continues.  Run returns nil on a normal exit and
// the read error if the input fails.
func (r *Router) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			r.log.Info("loop cancelled", slog.Any("reason", err))
			return nil
		}

		r.PrintMenu()
		c := r.newContext(ctx)
		choice, err := c.PromptInt("Enter your choice: ")
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(r.out)
			r.log.Info("input closed")
			return nil
		case errors.Is(err, ErrInvalidNumber):
			c.Errorln("Invalid response. Please enter a valid integer.")
			continue
		case err != nil:
			return fmt.Errorf("read choice: %w", err)
		}

		rt, ok := r.routes[choice]
		if !ok {
			c.Errorln("Invalid choice. Please enter a valid option.")
			continue
		}
		c.choice, c.label = choice, rt.label

		err = r.chain(rt.handler)(c)
		switch {
		case err == nil:
		case errors.Is(err, ErrExit):
			return nil
		case errors.Is(err, io.EOF):
			fmt.Fprintln(r.out)
			r.log.Info("input closed")
			return nil
		default:
			c.Errorln("Something went wrong: " + err.Error())
		}
	}
}

func (r *Router) newContext(ctx context.Context) *Context {
	return &Context{ctx: ctx, in: r.in, out: r.out, color: r.color}
}

func (r *Router) chain(h HandlerFunc) HandlerFunc {
	for i := len(r.middleware) - 1; i >= 0; i-- {
		h = r.middleware[i](h)
	}
	return h
}
