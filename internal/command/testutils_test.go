package command

import (
	"testing"
	"time"

	"github.com/metinatakli/cinema-planner/internal/domain"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func march(day, hour, minute int) time.Time {
	return time.Date(2018, time.March, day, hour, minute, 0, 0, time.UTC)
}

func newTestCinema(t *testing.T, name string, theaters int, tags ...string) domain.Cinema {
	t.Helper()

	cinema, err := domain.NewCinema(name, "61234567", "contact@cinema.com", name+" Road", theaters, domain.NewTags(tags...)...)
	require.NoError(t, err)

	return cinema
}

func newTestMovie(t *testing.T, name string, duration int, release time.Time, tags ...string) domain.Movie {
	t.Helper()

	movie, err := domain.NewMovie(name, duration, "PG", release, domain.NewTags(tags...)...)
	require.NoError(t, err)

	return movie
}

func counterValue(rm metricdata.ResourceMetrics, name string) int64 {
	var total int64

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}

			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}

			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}

	return total
}

func ptr[T any](v T) *T {
	return &v
}
