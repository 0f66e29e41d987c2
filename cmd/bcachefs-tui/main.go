package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bcachefstui/internal/telemetry"
	"bcachefstui/internal/ui"
)

// config holds the parsed CLI configuration.
type config struct {
	debugLog      string
	traceEndpoint string
	noAltScreen   bool
}

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.debugLog, "debug-log", "", "write debug logs to this file (stdout belongs to the TUI)")
	flag.StringVar(&cfg.traceEndpoint, "trace-endpoint", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		"OTLP/HTTP endpoint for key-press traces (empty = disabled)")
	flag.BoolVar(&cfg.noAltScreen, "no-alt-screen", false, "render inline instead of the alternate screen")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bcachefs-tui [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Interactive counter panel: j decrements, k increments, q quits.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return cfg
}

func run(cfg config) error {
	if cfg.debugLog != "" {
		f, err := tea.LogToFile(cfg.debugLog, "debug")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}

	rec, err := telemetry.New(context.Background(), cfg.traceEndpoint, "bcachefs-tui")
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = rec.Shutdown(ctx)
	}()

	// A disabled setup returns a nil *Recorder; leave the KeyRecorder
	// interface nil rather than storing a typed nil in the model.
	var recorder ui.KeyRecorder
	if rec != nil {
		recorder = rec
	}

	model := ui.NewAppModel(recorder).AsTeaModel()
	var opts []tea.ProgramOption
	if !cfg.noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	// The program owns the terminal session: raw mode and the alternate
	// screen are entered on Run and restored on every exit path, panics
	// included.
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "bcachefs-tui: %v\n", err)
		os.Exit(1)
	}
}
