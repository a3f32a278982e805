package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/metinatakli/cinema-planner/internal/catalog"
	"github.com/metinatakli/cinema-planner/internal/command"
	"github.com/metinatakli/cinema-planner/internal/logging"
	"github.com/metinatakli/cinema-planner/internal/vcs"
)

var (
	version = vcs.Version()
)

type application struct {
	config    config
	logger    *slog.Logger
	telemetry *telemetry
	model     *catalog.Model
	engine    *command.Engine
	out       io.Writer
}

type config struct {
	env      string
	logLevel string
	sample   bool
	otel     struct {
		collectorUrl string
	}
}

func Run() error {
	var cfg config

	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.BoolVar(&cfg.sample, "sample", false, "Build a sample catalog through the command engine and print it")
	flag.StringVar(&cfg.otel.collectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	level, err := logging.ParseLevel(cfg.logLevel)
	if err != nil {
		return err
	}

	app := &application{
		config: cfg,
		logger: logging.New(os.Stdout, logging.WithLevel(level)),
		out:    os.Stdout,
	}

	app.telemetry, err = app.initTelemetry(context.Background())
	if err != nil {
		return err
	}
	defer func() {
		err := app.telemetry.shutdown(context.Background())
		if err != nil {
			app.logger.Error("failed to shutdown telemetry providers", "error", err)
		}
	}()

	if app.telemetry.exporting {
		app.logger = logging.New(os.Stdout,
			logging.WithLevel(level),
			logging.WithLoggerProvider(app.telemetry.loggerProvider),
			logging.WithVersion(version),
		)
	}

	return app.run(context.Background())
}

func (app *application) run(ctx context.Context) error {
	app.model = catalog.NewModel(catalog.New())

	engine, err := command.NewEngine(app.model,
		command.WithLogger(app.logger),
		command.WithTracerProvider(app.telemetry.tracerProvider),
		command.WithMeterProvider(app.telemetry.meterProvider),
	)
	if err != nil {
		return err
	}
	app.engine = engine

	app.logger.Info("planner ready", "env", app.config.env, "version", version)

	if !app.config.sample {
		return nil
	}

	err = app.seed(ctx)
	if err != nil {
		return err
	}

	app.engine.View(func(m *catalog.Model) {
		printCatalog(app.out, m.Catalog())
	})

	return nil
}
