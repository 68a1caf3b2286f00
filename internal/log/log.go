// Package log configures structured logging for saveactions using log/slog.
package log

import (
	"fmt"
	"io"
	"log/slog"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options selects the log level and format.
type Options struct {
	Verbose bool
	Quiet   bool
	// Format is FormatText or FormatJSON. "" means FormatText.
	Format string
}

// Level maps the verbosity flags to a slog level. Quiet wins over verbose.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
func (o Options) Level() slog.Level {
	switch {
	case o.Quiet:
		return slog.LevelWarn
	case o.Verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Setup installs the default slog logger writing to w. The CLI passes
// stderr so that stdout stays reserved for command output and the MCP
// stdio transport.
func Setup(w io.Writer, opts Options) error {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level()}

	var handler slog.Handler
	switch opts.Format {
	case "", FormatText:
		handler = slog.NewTextHandler(w, handlerOpts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, handlerOpts)
	default:
		return fmt.Errorf("invalid log format %q (must be %s or %s)", opts.Format, FormatText, FormatJSON)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
