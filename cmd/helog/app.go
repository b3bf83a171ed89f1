package main

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"helog/internal/config"
	"helog/internal/filtering"
	"helog/internal/logger"
	"helog/internal/printer"
	"helog/internal/render"
	"helog/internal/source"
	"helog/internal/stream"
	"helog/pkg/errors"
	"helog/pkg/health"
	"helog/pkg/logging"
	"helog/pkg/metrics"
)

// streamEnd carries the error that ended the stream. The printer has already
// reported it on stderr.
type streamEnd struct {
	err error
}

func (e *streamEnd) Error() string {
	return e.err.Error()
}

func (e *streamEnd) Unwrap() error {
	return e.err
}

func runStream(ctx context.Context, kind stream.Kind, host string, opts options, stdout, stderr io.Writer) error {
	if err := filtering.Validate(kind, opts.criteria, opts.format); err != nil {
		return err
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return errors.Validation("Failed to load config: %v", err)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer log.Sync()

	ctx = logging.WithStream(ctx, kind.String())

	app := NewApp(cfg, log, kind, host, opts, stdout, stderr)
	if err := app.Initialize(ctx); err != nil {
		return err
	}

	return app.Run(ctx)
}

type App struct {
	Config *config.Config
	Logger logger.Logger

	kind    stream.Kind
	host    string
	opts    options
	stdout  io.Writer
	stderr  io.Writer
	client  source.Client
	printer *printer.Printer

	renderer      render.Renderer
	metricsServer *metrics.Server
}

func NewApp(cfg *config.Config, log logger.Logger, kind stream.Kind, host string, opts options, stdout, stderr io.Writer) *App {
	return &App{
		Config: cfg,
		Logger: log,
		kind:   kind,
		host:   host,
		opts:   opts,
		stdout: stdout,
		stderr: stderr,
	}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := a.initRenderer(); err != nil {
		return err
	}

	a.client = source.NewWebSocketClient(
		a.Config.Connection.HandshakeTimeout,
		a.Config.Connection.ReadBufferSize,
	)
	a.printer = printer.New(a.client, a.stdout, a.stderr, a.Logger,
		printer.WithColor(a.Config.Output.Color),
	)

	if err := a.initMetrics(ctx); err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return nil
}

// initRenderer leaves the renderer nil in raw mode.
func (a *App) initRenderer() error {
	if a.opts.format.Raw {
		return nil
	}

	filter, err := filtering.NewFilter(a.kind, a.opts.criteria, a.Config.Filtering, a.Logger)
	if err != nil {
		return err
	}

	if a.opts.format.CSV {
		a.renderer = render.NewCSV(a.kind, filter)
	} else {
		a.renderer = render.NewHuman(a.kind, filter)
	}
	return nil
}

func (a *App) initMetrics(ctx context.Context) error {
	if !a.Config.Metrics.Enabled {
		return nil
	}

	registry := prometheus.NewRegistry()
	if err := metrics.RegisterStreamMetrics(registry); err != nil {
		return err
	}
	checks := health.NewCheckerRegistry()
	checks.Register(health.NewFuncChecker("connection", a.printer.CheckStreaming))

	a.metricsServer = metrics.NewServer(a.Config.Metrics.Listen, registry, checks)
	a.Logger.InfowCtx(ctx, "Metrics enabled", "listen", a.Config.Metrics.Listen)
	return nil
}

// Run streams until the connection ends. The metrics server, when enabled, is
// stopped with it.
func (a *App) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	if a.metricsServer != nil {
		g.Go(func() error {
			if err := a.metricsServer.Run(gCtx); err != nil {
				return errors.ErrInternal.WithMessage("Metrics server failed").WithDetail("%s", err.Error()).WithCause(err)
			}
			return nil
		})
	}

	g.Go(func() error {
		uri := a.kind.URI(a.host)
		err := a.printer.Run(gCtx, uri, a.renderer)
		a.Logger.InfowCtx(gCtx, "Stream finished", "uri", uri, "error", err)
		return &streamEnd{err: err}
	})

	return g.Wait()
}
