// ABOUTME: Entry point for the operations dashboard TUI
// ABOUTME: Loads configuration, connects the store client, and runs the bubbletea program
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/harperreed/opsdash/config"
	"github.com/harperreed/opsdash/store"
	"github.com/harperreed/opsdash/tui"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	envFile := flag.String("env-file", ".env", "Path to dotenv file with connection settings")
	flag.Parse()

	if *showVersion {
		fmt.Printf("opsdash version %s\n", version)
		os.Exit(0)
	}

	if err := config.LoadEnvFile(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "opsdash: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "opsdash: %v\n", err)
		fmt.Fprintf(os.Stderr, "Set %s and %s (or put them in %s).\n", config.EnvURL, config.EnvKey, *envFile)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "opsdash: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	client := store.New(cfg.URL, cfg.Key)

	// Startup probe only; a dead store degrades every view to its empty
	// state rather than blocking launch.
	if err := client.Ping(context.Background()); err != nil {
		logger.Warn("remote store unreachable at startup", "err", err)
	}

	p := tea.NewProgram(tui.NewModel(client, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "opsdash: %v\n", err)
		os.Exit(1)
	}
}

// openLogger writes logs to a file under the XDG state dir. A full-screen
// TUI owns the terminal, so nothing may log to stdout/stderr while running.
func openLogger() (*log.Logger, func(), error) {
	dir := filepath.Join(xdg.StateHome, "opsdash")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(filepath.Join(dir, "opsdash.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "opsdash",
	})
	return logger, func() { _ = f.Close() }, nil
}
