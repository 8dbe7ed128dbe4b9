package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/dshills/procon/internal/config"
)

var errorColor = color.New(color.FgRed, color.Bold)

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// setupOutput installs the default logger and applies the colour mode.
func setupOutput(stderr io.Writer, cfg config.Config) {
	slog.SetDefault(newLogger(stderr, cfg.Level()))

	switch cfg.Color {
	case config.ColorNever:
		color.NoColor = true
	case config.ColorAlways:
		color.NoColor = false
	}
}

func printError(w io.Writer, err error) {
	errorColor.Fprint(w, "Error:")
	io.WriteString(w, " "+err.Error()+"\n")
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
