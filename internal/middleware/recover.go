package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/iliyamo/hotel-front-desk/internal/console"
)

// Recover turns a panicking handler into an ordinary error so that one
// bad command cannot take the front desk down.
func Recover(log *slog.Logger) console.MiddlewareFunc {
	return func(next console.HandlerFunc) console.HandlerFunc {
		return func(c *console.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.ErrorContext(c.Context(), "command panicked",
						slog.String("command", c.Label()),
						slog.Any("panic", r),
						slog.String("stack", string(debug.Stack())),
					)
					err = fmt.Errorf("command %q panicked: %v", c.Label(), r)
				}
			}()
			return next(c)
		}
	}
}
