// Package app wires the rsa4096 CLI together: configuration, logging,
// metrics, and one handler per subcommand. It is the only layer that knows
// every other package; the arithmetic core never imports it.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/rsa4096/internal/appconfig"
	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/telemetry"
	"github.com/agbru/rsa4096/internal/ui"
)

// Application holds the resolved configuration and the observability
// collaborators every subcommand handler shares.
type Application struct {
	Config    appconfig.AppConfig
	Logger    zerolog.Logger
	Metrics   *telemetry.Metrics
	ErrWriter io.Writer
}

// New parses command-line arguments into an Application. args is the full
// os.Args slice; errWriter receives usage and flag-parse output.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "rsa4096"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := appconfig.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{
		Config:    cfg,
		Logger:    telemetry.NewLogger(cfg, errWriter),
		Metrics:   telemetry.NewMetrics(),
		ErrWriter: errWriter,
	}
	return app, nil
}

// Run dispatches to the configured subcommand's handler and returns the
// process exit code. It is the only place that starts or stops the
// optional metrics endpoint.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(false)

	stopMetrics := a.serveMetricsIfConfigured()
	defer stopMetrics()

	switch a.Config.Subcommand {
	case "verify":
		return a.runVerify(out)
	case "test":
		return a.runTest(ctx, out)
	case "benchmark":
		return a.runBenchmark(ctx, out)
	case "binary":
		return a.runBinary(out)
	case "manual":
		return a.runManual(ctx, out)
	case "real4096":
		return a.runReal4096(ctx, out)
	case "hybrid":
		return a.runHybrid(ctx, out)
	case "roundtrip":
		return a.runRoundtrip(out)
	case "boundary":
		return a.runBoundary(out)
	case "montgomery":
		return a.runMontgomery(out)
	case "algorithms":
		return a.runAlgorithms(ctx, out)
	default:
		// ParseConfig validated the subcommand; reaching here is a bug.
		fmt.Fprintf(a.ErrWriter, "Error (internal_invariant_broken): unhandled subcommand %q\n", a.Config.Subcommand)
		return apperrors.ExitErrorInternal
	}
}

// fail reports err the way every subcommand reports failure: one
// descriptive line naming the kind and site, then the mapped exit code.
func (a *Application) fail(err error) int {
	if errors.Is(err, apperrors.Overflow) {
		a.Metrics.BigintOverflow.WithLabelValues(a.Config.Subcommand).Inc()
	}
	a.Logger.Error().Err(err).Str("subcommand", a.Config.Subcommand).Msg("subcommand failed")
	fmt.Fprintf(a.ErrWriter, "Error (%s): %s: %v\n", apperrors.KindOf(err), a.Config.Subcommand, err)
	return apperrors.ExitCodeFor(err)
}

// observer builds the selector observability hook wired to this
// Application's logger and metrics.
func (a *Application) observer() *telemetry.SelectorObserver {
	return telemetry.NewSelectorObserver(a.Logger, a.Metrics)
}

// serveMetricsIfConfigured starts the /metrics endpoint when
// --metrics-addr is set and returns a shutdown func; otherwise a no-op.
func (a *Application) serveMetricsIfConfigured() func() {
	if a.Config.MetricsAddr == "" {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", a.Metrics.Handler())
	srv := &http.Server{Addr: a.Config.MetricsAddr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Warn().Err(err).Str("addr", a.Config.MetricsAddr).Msg("metrics endpoint stopped")
		}
	}()
	a.Logger.Info().Str("addr", a.Config.MetricsAddr).Msg("serving /metrics")

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}

// IsHelpError reports whether err came from -h/--help rather than a real
// configuration problem.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
