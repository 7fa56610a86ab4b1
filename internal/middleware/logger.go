package middleware // middleware provides shared processing around menu commands

import (
	"errors"
	"log/slog"
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/console"
)

// CommandLogger logs every dispatched command at debug level with its
// duration.  Handler errors other than a normal exit are logged at error
// level and passed on unchanged.
func CommandLogger(log *slog.Logger) console.MiddlewareFunc {
	return func(next console.HandlerFunc) console.HandlerFunc {
		return func(c *console.Context) error {
			start := time.Now()
			err := next(c)
			attrs := []any{
				slog.Int("choice", c.Choice()),
				slog.String("command", c.Label()),
				slog.Duration("took", time.Since(start)),
			}
			if err != nil && !errors.Is(err, console.ErrExit) {
				log.ErrorContext(c.Context(), "command failed", append(attrs, slog.Any("error", err))...)
				return err
			}
			log.DebugContext(c.Context(), "command handled", attrs...)
			return err
		}
	}
}
