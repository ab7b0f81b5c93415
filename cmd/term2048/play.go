package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/platform/tui"
)

var (
	flagPlain bool
	flagLog   string
)

func init() {
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the plain text renderer instead of the full-screen UI")
	rootCmd.Flags().StringVar(&flagLog, "log", "", "Append debug logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(flagLog)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagPlain {
		return tui.RunPlain(cfg, logger, os.Stdin, os.Stdout)
	}
	return tui.Run(cfg, logger)
}

// openLog returns a discarding logger unless a log file was requested.
// The terminal belongs to the game, so logs never go to stderr.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "term2048",
	})
	return logger, func() { f.Close() }, nil
}
