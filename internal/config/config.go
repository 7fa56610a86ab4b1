package config // package config loads application configuration from environment variables

import (
	"errors"   // errors.Is for the optional .env file
	"fmt"      // fmt wraps validation errors
	"io/fs"    // fs.ErrNotExist marks a missing .env file
	"log/slog" // slog.Level is the parsed log level
	"os"       // os provides access to environment variables
	"strconv"  // strconv converts strings to other types
	"strings"  // strings normalizes enum values

	"github.com/joho/godotenv" // godotenv reads KEY=VALUE files into the environment

	"github.com/iliyamo/hotel-front-desk/internal/logger"
)

// Config holds all runtime configuration values.  Every field has a
// default so the front desk starts with no environment at all: ten rooms,
// rupee prices, warnings-only text logs on stderr and colored errors.
type Config struct {
	Env       string     // application environment (e.g. "dev", "prod")
	Rooms     int        // number of rooms seeded at startup
	Currency  string     // prefix printed before every price
	LogLevel  slog.Level // minimum level written to the log
	LogFormat string     // "text" or "json"
	LogFile   string     // append logs to this file instead of stderr (optional)
	Color     bool       // color error lines when stdout is a terminal
}

// Load reads an optional .env file and then the environment.  Values
// already present in the environment win over the file.  When files are
// given they are read instead of ./.env and must exist.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("read env file: %w", err)
	}

	rooms, err := envInt("HOTEL_ROOMS", 10)
	if err != nil {
		return Config{}, err
	}
	if rooms < 1 {
		return Config{}, fmt.Errorf("HOTEL_ROOMS must be at least 1, got %d", rooms)
	}
	level, err := logger.ParseLevel(envStr("LOG_LEVEL", "warn"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	format := strings.ToLower(envStr("LOG_FORMAT", "text"))
	if format != "text" && format != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT must be text or json, got %q", format)
	}

	return Config{
		Env:       envStr("APP_ENV", "dev"),
		Rooms:     rooms,
		Currency:  envStr("HOTEL_CURRENCY", "Rs."),
		LogLevel:  level,
		LogFormat: format,
		LogFile:   os.Getenv("LOG_FILE"),
		Color:     envBool("HOTEL_COLOR", true),
	}, nil
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// envInt is like envStr but parses the value; unlike the other helpers a
// malformed number is an error rather than silently defaulted.
func envInt(k string, d int) (int, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %q", k, v)
	}
	return n, nil
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}
