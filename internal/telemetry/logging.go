package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agbru/rsa4096/internal/appconfig"
)

// NewLogger configures a zerolog.Logger for cfg writing to out: a console
// writer when LogFormat is "console" (colorized only when out is a
// terminal), structured JSON for any other LogFormat. This is the single construction point for the
// CLI's logging backend; nothing else configures zerolog.
func NewLogger(cfg appconfig.AppConfig, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case cfg.Quiet:
		level = zerolog.ErrorLevel
	case cfg.Verbose:
		level = zerolog.DebugLevel
	}

	var writer io.Writer = out
	if cfg.LogFormat == "console" {
		writer = zerolog.ConsoleWriter{Out: out, NoColor: !isTerminal(out)}
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
