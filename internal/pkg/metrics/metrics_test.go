package metrics_test

import (
	"testing"

	"github.com/kleberrossi/Procman/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should register every collector once", func(t *testing.T) {
		reg := prometheus.NewRegistry()

		m := metrics.New(reg)
		m.StatusTransitions.WithLabelValues("APROVADO").Inc()
		m.ProductionOrders.Inc()

		families, err := reg.Gather()
		require.NoError(t, err)
		assert.NotEmpty(t, families)
		assert.InDelta(t, 1, testutil.ToFloat64(m.StatusTransitions.WithLabelValues("APROVADO")), 0)
		assert.Panics(t, func() { metrics.New(reg) })
	})
}
