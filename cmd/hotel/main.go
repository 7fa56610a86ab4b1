package main // Entry point package

import (
	"context"   // root context for the menu loop
	"fmt"       // startup errors
	"io"        // log destination
	"os"        // terminal streams and exit codes
	"os/signal" // interrupt handling
	"syscall"   // SIGTERM

	"github.com/iliyamo/hotel-front-desk/internal/config"     // environment config loader
	"github.com/iliyamo/hotel-front-desk/internal/console"    // menu loop
	"github.com/iliyamo/hotel-front-desk/internal/handler"    // menu commands
	"github.com/iliyamo/hotel-front-desk/internal/logger"     // slog setup
	"github.com/iliyamo/hotel-front-desk/internal/middleware" // command logging and recovery
	"github.com/iliyamo/hotel-front-desk/internal/router"     // menu number registration
	"github.com/iliyamo/hotel-front-desk/internal/service"    // front-desk session
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load() // Load environment config
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	var logOut io.Writer = os.Stderr
	closeLog := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
		closeLog = func() { f.Close() }
	}
	logCfg := logger.DefaultConfig()
	logCfg.Level, logCfg.Format, logCfg.Output = cfg.LogLevel, cfg.LogFormat, logOut
	base := logger.New(logCfg)

	session := service.NewSession(service.Options{Rooms: cfg.Rooms, Logger: base})
	log := session.Logger()
	log.Info("front desk started", "env", cfg.Env, "rooms", session.RoomCount())

	// The loop blocks on stdin, so a signal ends the process directly.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("front desk interrupted", "signal", sig.String())
		closeLog()
		os.Exit(signalStatus(sig))
	}()

	r := console.New(console.NewLineReader(os.Stdin), os.Stdout,
		console.WithLogger(logger.ForComponent(log, "console")),
		console.WithColor(cfg.Color),
	)
	r.Use(middleware.Recover(log), middleware.CommandLogger(log))
	router.RegisterRoutes(r, handler.NewHandlers(session, handler.NewMoney(cfg.Currency)))

	if err := r.Run(context.Background()); err != nil {
		log.Error("front desk stopped", "error", err)
		return 1
	}
	log.Info("front desk stopped")
	return 0
}

// signalStatus is the shell convention for a process ended by sig.
func signalStatus(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
