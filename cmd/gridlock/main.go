package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/gridlock/internal/domain"
)

var (
	logLevel string

	mainCommand = &cobra.Command{
		Use:   "gridlock",
		Short: "Sudoku puzzle engine: generate, solve, serve",
	}
)

func init() {
	mainCommand.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "debug|info|warn|error")
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// formatGrid renders a board with box separators for terminal output.
func formatGrid(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				sb.WriteString("| ")
			}
			v := b.Values[r][c]
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			if c < 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
