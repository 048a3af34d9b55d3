package metrics_test

import (
	"context"
	"recap/pkg/metrics"
	"sort"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestDefaultBucketsSorted(t *testing.T) {
	require.True(t, sort.Float64sAreSorted(metrics.DefaultBuckets))
}

func TestSetup_ExportsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.Setup(reg)
	require.NoError(t, err)
	defer func() { _ = mp.Shutdown(context.Background()) }()

	counter, err := otel.Meter("recap/metrics_test").Int64Counter("test_events")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "test_events_total")
}
