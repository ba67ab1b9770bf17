// Package appconfig resolves the rsa4096 CLI's configuration from flags and
// environment variables: CLI flags override environment variables, which
// override static defaults.
package appconfig

import (
	"errors"
	"flag"
	"io"

	"github.com/agbru/rsa4096/internal/apperrors"
)

// EnvPrefix namespaces every environment variable this package reads.
const EnvPrefix = "RSA4096_"

// AppConfig is the fully resolved configuration for one CLI invocation.
type AppConfig struct {
	Subcommand string

	// Algo forces ExpSelector's choice: "auto" (default), "montgomery", or
	// "schoolbook".
	Algo string

	// Manual-mode / real4096-mode operand input, decimal or hex (Hex wins
	// when both are set for the same field).
	ModulusDecimal string
	ModulusHex     string
	ExponentDecimal string
	ExponentHex     string
	MessageDecimal  string
	MessageHex      string
	IsPrivate       bool

	Verbose    bool
	Quiet      bool
	// TUI switches the benchmark subcommand to the live dashboard.
	TUI         bool
	LogFormat   string // "console" or "json"
	MetricsAddr string // empty disables the Prometheus endpoint
	OutputFile  string
}

// defaultConfig returns the static defaults consulted when neither a flag
// nor an environment variable sets a field.
func defaultConfig() AppConfig {
	return AppConfig{
		Algo:      "auto",
		LogFormat: "console",
	}
}

// ParseConfig parses cmdArgs (os.Args[1:] form, subcommand first) into an
// AppConfig. Unknown flags or a missing subcommand fail with a
// apperrors.ConfigError; -h/--help fails with flag.ErrHelp, which callers
// should treat as a non-error "print usage and exit 0" condition.
func ParseConfig(programName string, cmdArgs []string, errw io.Writer) (AppConfig, error) {
	if len(cmdArgs) == 0 {
		return AppConfig{}, apperrors.NewConfigError("usage: %s <subcommand> [flags]\nsubcommands: %v", programName, Subcommands)
	}

	sub := cmdArgs[0]
	if !isKnownSubcommand(sub) {
		return AppConfig{}, apperrors.NewConfigError("unknown subcommand %q; want one of %v", sub, Subcommands)
	}

	cfg := applyEnv(defaultConfig())
	cfg.Subcommand = sub

	fs := flag.NewFlagSet(programName+" "+sub, flag.ContinueOnError)
	fs.SetOutput(errw)
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, "force the exponentiation algorithm: auto, montgomery, schoolbook")
	fs.StringVar(&cfg.ModulusDecimal, "n", cfg.ModulusDecimal, "modulus, decimal")
	fs.StringVar(&cfg.ModulusHex, "n-hex", cfg.ModulusHex, "modulus, hex")
	fs.StringVar(&cfg.ExponentDecimal, "exp", cfg.ExponentDecimal, "exponent, decimal")
	fs.StringVar(&cfg.ExponentHex, "exp-hex", cfg.ExponentHex, "exponent, hex")
	fs.StringVar(&cfg.MessageDecimal, "m", cfg.MessageDecimal, "message, decimal")
	fs.StringVar(&cfg.MessageHex, "m-hex", cfg.MessageHex, "message, hex")
	fs.BoolVar(&cfg.IsPrivate, "private", cfg.IsPrivate, "treat exp as the private exponent d")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose output")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "quiet output")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "benchmark only: live dashboard instead of the static table")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "console or json")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "address to serve /metrics on; empty disables it")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "write results to this file in addition to stdout")

	if err := fs.Parse(cmdArgs[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}

	if err := validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func validate(cfg AppConfig) error {
	switch cfg.Algo {
	case "auto", "montgomery", "schoolbook":
	default:
		return apperrors.NewConfigError("invalid --algo %q: want auto, montgomery, or schoolbook", cfg.Algo)
	}
	switch cfg.LogFormat {
	case "console", "json":
	default:
		return apperrors.NewConfigError("invalid --log-format %q: want console or json", cfg.LogFormat)
	}
	if cfg.Verbose && cfg.Quiet {
		return apperrors.NewConfigError("--v and --q are mutually exclusive")
	}
	return nil
}

// Subcommands lists every subcommand the CLI recognizes.
var Subcommands = []string{
	"verify", "test", "benchmark", "binary", "manual", "real4096",
	"hybrid", "roundtrip", "boundary", "montgomery", "algorithms",
}

func isKnownSubcommand(s string) bool {
	for _, known := range Subcommands {
		if s == known {
			return true
		}
	}
	return false
}

