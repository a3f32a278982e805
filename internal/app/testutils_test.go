package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func newTestApplication(opts ...func(*application)) *application {
	app := &application{
		config: config{env: "test"},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		out:    io.Discard,
	}

	tel, err := app.initTelemetry(context.Background())
	if err != nil {
		panic(err)
	}
	app.telemetry = tel

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func withSample(app *application) {
	app.config.sample = true
}

func withTracerProvider(provider trace.TracerProvider) func(*application) {
	return func(app *application) {
		app.telemetry.tracerProvider = provider
	}
}

func runTestApplication(t *testing.T, opts ...func(*application)) (*application, string) {
	t.Helper()

	var buf bytes.Buffer
	opts = append(opts, func(app *application) { app.out = &buf })

	app := newTestApplication(opts...)
	require.NoError(t, app.run(t.Context()))

	return app, buf.String()
}
