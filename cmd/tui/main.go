package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/rollup-cost-profiler/internal/logger"
	"github.com/rovshanmuradov/rollup-cost-profiler/internal/ui"
)

func main() {
	// Parse command line flags
	debug := flag.Bool("debug", false, "write debug logs to stderr (distorts the TUI on most terminals)")
	flag.Parse()

	// The explorer keeps the terminal to itself; logging stays off unless
	// explicitly requested
	appLogger := zap.NewNop()
	if *debug {
		appLogger = logger.New(true)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	appLogger.Info("🚀 Starting rollup cost explorer")

	program := tea.NewProgram(
		ui.New(appLogger),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		log.Fatalf("Explorer failed: %v", err)
	}
}
