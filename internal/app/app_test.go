package app

import (
	"testing"

	"github.com/metinatakli/cinema-planner/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestRunWithoutSample(t *testing.T) {
	app, out := runTestApplication(t)

	assert.Empty(t, out)
	assert.Empty(t, app.model.Catalog().Cinemas())
	assert.False(t, app.engine.CanUndo())
}

func TestRunWithSample(t *testing.T) {
	app, out := runTestApplication(t, withSample)

	cinemas := app.model.Catalog().Cinemas()
	require.Len(t, cinemas, 2)
	assert.Len(t, cinemas[1].Theaters, 3)
	assert.Len(t, app.model.Catalog().Movies(), 2)

	theater, ok := cinemas[0].Theater(1)
	require.True(t, ok)
	require.Len(t, theater.Screenings, 2)
	assert.Equal(t, "Coco", theater.Screenings[0].MovieName)
	assert.Equal(t, "Black Panther", theater.Screenings[1].MovieName)

	assert.Contains(t, out, "1. Cathay Phone: 61234567")
	assert.Contains(t, out, "Coco at Theater 1 on 13-03-2018 13:00-15:00")
	assert.Contains(t, out, "Black Panther at Theater 1 on 13-03-2018 15:00-17:30")
	assert.Contains(t, out, "Tags: [action] [animation] [central] [family] [imax] [orchard]")
}

func TestSampleIsUndoable(t *testing.T) {
	app, _ := runTestApplication(t, withSample)

	for app.engine.CanUndo() {
		_, err := app.engine.Undo(t.Context())
		require.NoError(t, err)
	}

	app.engine.View(func(m *catalog.Model) {
		assert.True(t, m.Catalog().Equal(catalog.New()))
	})
}

func TestTelemetryWithoutCollector(t *testing.T) {
	app := newTestApplication()

	assert.False(t, app.telemetry.exporting)
	assert.IsType(t, tracenoop.NewTracerProvider(), app.telemetry.tracerProvider)
	assert.IsType(t, metricnoop.NewMeterProvider(), app.telemetry.meterProvider)
	assert.NoError(t, app.telemetry.shutdown(t.Context()))
}

func TestRunTracesSampleCommands(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	runTestApplication(t, withSample, withTracerProvider(provider))

	counts := make(map[string]int)
	for _, span := range recorder.Ended() {
		counts[span.Name()]++
	}

	// Eight seeded commands plus the rejected overlap.
	assert.Equal(t, 9, counts["command.execute"])
	assert.Equal(t, 1, counts["command.undo"])
	assert.Equal(t, 1, counts["command.redo"])
}
