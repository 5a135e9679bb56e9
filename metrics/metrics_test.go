package metrics_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/monoton/metrics"
)

// TestCollector_Audit counts pass, fail and error audits.
func TestCollector_Audit(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	c.ObserveAudit(0, nil, time.Millisecond)
	c.ObserveAudit(3, nil, time.Millisecond)
	c.ObserveAudit(2, nil, time.Millisecond)
	c.ObserveAudit(0, errors.New("boom"), time.Millisecond)

	want := `
# HELP monoton_audits_total Number of table audits by result.
# TYPE monoton_audits_total counter
monoton_audits_total{result="error"} 1
monoton_audits_total{result="fail"} 2
monoton_audits_total{result="pass"} 1
# HELP monoton_violations_total Total number of monotonicity violations found by audits.
# TYPE monoton_violations_total counter
monoton_violations_total 5
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want),
		"monoton_audits_total", "monoton_violations_total"))
}

// TestCollector_Synthesis labels by strategy and result.
func TestCollector_Synthesis(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	c.ObserveSynthesis("topo", nil, time.Millisecond)
	c.ObserveSynthesis("topo", nil, time.Millisecond)
	c.ObserveSynthesis("rules", errors.New("not monotonic"), time.Millisecond)
	c.ObserveGrid(24)

	n, err := testutil.GatherAndCount(reg, "monoton_syntheses_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = testutil.GatherAndCount(reg, "monoton_grid_nodes")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// TestNew_DuplicateRegistration fails on a second Collector for one registry.
func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	assert.Error(t, err)

	unregistered, err := metrics.New(nil)
	require.NoError(t, err)
	unregistered.ObserveGrid(1)
}

// TestNilCollector records nothing and does not panic.
func TestNilCollector(t *testing.T) {
	var c *metrics.Collector
	assert.NotPanics(t, func() {
		c.ObserveGrid(4)
		c.ObserveAudit(1, nil, 0)
		c.ObserveSynthesis("magnitude", nil, 0)
	})
}
