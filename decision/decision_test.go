package decision_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/monoton/axis"
	"github.com/katalvlaran/monoton/decision"
	"github.com/katalvlaran/monoton/gridgraph"
	"github.com/katalvlaran/monoton/metrics"
	"github.com/katalvlaran/monoton/monotone"
	"github.com/katalvlaran/monoton/stats"
	"github.com/katalvlaran/monoton/table"
	"github.com/katalvlaran/monoton/threshold"
	"github.com/katalvlaran/monoton/topobucket"
)

const outID = "DSOI:1.0.0"

// deployer: E{N,P,A} × U{L,H} × SI{L,H} → DSOI{D,S,O,I}, 12 nodes.
func deployer(t *testing.T) *table.Schema {
	t.Helper()
	s, err := table.NewSchema([]*axis.Axis{
		axis.MustNew("E", "Exploitation", "1.1.0", axis.Keys("N", "P", "A")...),
		axis.MustNew("U", "Utility", "1.0.1", axis.Keys("L", "H")...),
		axis.MustNew("SI", "Safety Impact", "2.0.0", axis.Keys("L", "H")...),
	}, axis.MustNew("DSOI", "Decision", "1.0.0", axis.Keys("D", "S", "O", "I")...))
	require.NoError(t, err)
	return s
}

// triple: three 0/1/2 axes → outcome {lo,mid,hi}.
func triple(t *testing.T) *table.Schema {
	t.Helper()
	lmh := axis.Keys("0", "1", "2")
	s, err := table.NewSchema([]*axis.Axis{
		axis.MustNew("A", "", "1.0.0", lmh...),
		axis.MustNew("B", "", "1.0.0", lmh...),
		axis.MustNew("C", "", "1.0.0", lmh...),
	}, axis.MustNew("O", "", "1.0.0", axis.Keys("lo", "mid", "hi")...))
	require.NoError(t, err)
	return s
}

func outcomeCounts(rows []table.Row, id string) map[string]int {
	out := map[string]int{}
	for _, r := range rows {
		out[r[id]]++
	}
	return out
}

// TestSynthesize_Topo realizes the weighted counts in both orders and the
// result passes a full audit.
func TestSynthesize_Topo(t *testing.T) {
	s := deployer(t)
	e := decision.New()
	for _, order := range []topobucket.Order{topobucket.OrderTopological, topobucket.OrderRank} {
		rows, err := e.Synthesize(s, decision.TopoStrategy{Weights: []float64{0.5, 0.25, 0.125, 0.125}, Order: order})
		require.NoError(t, err)
		require.Len(t, rows, 12)
		assert.Equal(t, map[string]int{"D": 6, "S": 3, "O": 2, "I": 1}, outcomeCounts(rows, outID))

		rep, err := e.Audit(s, rows)
		require.NoError(t, err)
		assert.True(t, rep.Passed())
	}

	_, err := e.Synthesize(s, decision.TopoStrategy{Weights: []float64{0.5, 0.5}})
	assert.ErrorIs(t, err, topobucket.ErrWeightCount)
}

// TestSynthesize_Magnitude covers default and explicit bucket counts.
func TestSynthesize_Magnitude(t *testing.T) {
	s := deployer(t)
	e := decision.New()

	rows, err := e.Synthesize(s, decision.MagnitudeStrategy{})
	require.NoError(t, err)
	rep, err := e.Audit(s, rows)
	require.NoError(t, err)
	assert.True(t, rep.Passed())
	counts := outcomeCounts(rows, outID)
	assert.Len(t, counts, 4, "every bucket used")

	rows, err = e.Synthesize(s, decision.MagnitudeStrategy{Buckets: 2, Norm: stats.LInf})
	require.NoError(t, err)
	assert.NotContains(t, outcomeCounts(rows, outID), "O")

	_, err = e.Synthesize(s, decision.MagnitudeStrategy{Buckets: 5})
	assert.ErrorIs(t, err, decision.ErrBucketCount)
}

// TestSynthesize_Rules: the escalation rules give (2,2,0)→hi, (2,1,0)→mid, (0,0,0)→lo.
func TestSynthesize_Rules(t *testing.T) {
	s := triple(t)
	e := decision.New()
	rows, err := e.Synthesize(s, decision.RuleStrategy{Rules: []threshold.Rule{
		{Value: 2, MinCount: 2, Outcome: 2},
		{Value: 2, MinCount: 1, Outcome: 1},
		{Value: 0, MinCount: 0, Outcome: 0},
	}})
	require.NoError(t, err)

	lookup := func(a, b, c string) string {
		for _, r := range rows {
			if r["A:1.0.0"] == a && r["B:1.0.0"] == b && r["C:1.0.0"] == c {
				return r["O:1.0.0"]
			}
		}
		return ""
	}
	assert.Equal(t, "hi", lookup("2", "2", "0"))
	assert.Equal(t, "mid", lookup("2", "1", "0"))
	assert.Equal(t, "lo", lookup("0", "0", "0"))

	_, err = e.Synthesize(s, decision.RuleStrategy{Rules: []threshold.Rule{{Value: 0, MinCount: 1, Outcome: 2}}})
	assert.ErrorIs(t, err, monotone.ErrNotMonotonic)
}

// inverted assigns the reverse of the node index: never monotonic.
type inverted struct{}

func (inverted) Name() string { return "inverted" }

func (inverted) Assign(g *gridgraph.GridGraph, outcomeLen int) (gridgraph.Assignment, error) {
	a := gridgraph.NewAssignment(g.NodeCount())
	for i := range a {
		a[i] = (g.NodeCount() - 1 - i) * outcomeLen / g.NodeCount()
	}
	return a, nil
}

// TestSynthesize_Gate: the engine verifies every strategy's output itself.
func TestSynthesize_Gate(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)
	e := decision.New(decision.WithMetrics(c))

	rows, err := e.Synthesize(deployer(t), inverted{})
	assert.ErrorIs(t, err, monotone.ErrNotMonotonic)
	assert.Nil(t, rows)

	_, err = e.Synthesize(deployer(t), nil)
	assert.ErrorIs(t, err, decision.ErrNilStrategy)

	want := `
# HELP monoton_syntheses_total Number of synthesized tables by strategy and result.
# TYPE monoton_syntheses_total counter
monoton_syntheses_total{result="error",strategy="inverted"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "monoton_syntheses_total"))
}

// TestAudit_Violations reports inversions as records, not errors.
func TestAudit_Violations(t *testing.T) {
	s := deployer(t)
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)
	e := decision.New(decision.WithMetrics(c))

	rows, err := e.Synthesize(s, decision.TopoStrategy{Weights: []float64{0.25, 0.25, 0.25, 0.25}})
	require.NoError(t, err)
	// the all-lowest node escalates to the top outcome
	for _, r := range rows {
		if r["E:1.1.0"] == "N" && r["U:1.0.1"] == "L" && r["SI:2.0.0"] == "L" {
			r[outID] = "I"
		}
	}
	rep, err := e.Audit(s, rows)
	require.NoError(t, err)
	assert.False(t, rep.Passed())
	assert.Equal(t, 12, rep.Nodes)
	assert.NotEqual(t, uuid.Nil, rep.ID)
	require.NotEmpty(t, rep.Violations)
	assert.Equal(t, "E:N,U:L,SI:L", rep.Violations[0].From)
	assert.Equal(t, "I", rep.Violations[0].FromOutcome)

	rows[0] = table.Row{}
	_, err = e.Audit(s, rows)
	assert.ErrorIs(t, err, axis.ErrConstruction)

	want := `
# HELP monoton_audits_total Number of table audits by result.
# TYPE monoton_audits_total counter
monoton_audits_total{result="error"} 1
monoton_audits_total{result="fail"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "monoton_audits_total"))
}

// TestAudit_SizeLimitAndSplit: an oversize grid is rejected whole and
// audited slice by slice.
func TestAudit_SizeLimitAndSplit(t *testing.T) {
	s := deployer(t)
	rows, err := decision.New().Synthesize(s, decision.TopoStrategy{Weights: []float64{0.5, 0.25, 0.125, 0.125}})
	require.NoError(t, err)

	opts := gridgraph.DefaultGridOptions()
	opts.MaxNodes = 6
	var logs bytes.Buffer
	e := decision.New(decision.WithGridOptions(opts), decision.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	_, err = e.Audit(s, rows)
	assert.ErrorIs(t, err, axis.ErrSizeLimitExceeded)
	assert.Contains(t, logs.String(), "split the table")

	reps, err := e.AuditSplit(s, rows, "E:1.1.0")
	require.NoError(t, err)
	require.Len(t, reps, 3)
	for i, v := range []string{"N", "P", "A"} {
		assert.Equal(t, "E:1.1.0="+v, reps[i].Slice)
		assert.Equal(t, 4, reps[i].Nodes)
		assert.True(t, reps[i].Passed())
	}

	_, err = e.AuditSplit(s, rows, "X:1.0.0")
	assert.ErrorIs(t, err, table.ErrUnknownAxis)
}

// TestAuditDocument names the report after the document.
func TestAuditDocument(t *testing.T) {
	s := deployer(t)
	e := decision.New()
	rows, err := e.Synthesize(s, decision.MagnitudeStrategy{})
	require.NoError(t, err)

	rep, err := e.AuditDocument(table.NewDocument("deployer", s, rows))
	require.NoError(t, err)
	assert.Equal(t, "deployer", rep.Table)
	assert.True(t, rep.Passed())
}

// TestStrategyFor maps synth sections onto strategies.
func TestStrategyFor(t *testing.T) {
	st, err := decision.StrategyFor(&table.Synth{Strategy: "topo", Order: "rank", Weights: []float64{1}})
	require.NoError(t, err)
	assert.Equal(t, decision.TopoStrategy{Weights: []float64{1}, Order: topobucket.OrderRank}, st)

	st, err = decision.StrategyFor(&table.Synth{Strategy: "Magnitude", Buckets: 3, Norm: "l1"})
	require.NoError(t, err)
	assert.Equal(t, decision.MagnitudeStrategy{Buckets: 3, Norm: stats.L1}, st)

	st, err = decision.StrategyFor(&table.Synth{Strategy: "rules", Rules: []threshold.Rule{{Value: 1, MinCount: 1, Outcome: 1}}})
	require.NoError(t, err)
	assert.Equal(t, "rules", st.Name())

	_, err = decision.StrategyFor(&table.Synth{Strategy: "random"})
	assert.ErrorIs(t, err, decision.ErrUnknownStrategy)
	_, err = decision.StrategyFor(&table.Synth{Strategy: "topo", Order: "bfs"})
	assert.ErrorIs(t, err, decision.ErrUnknownStrategy)
	_, err = decision.StrategyFor(&table.Synth{Strategy: "magnitude", Norm: "l7"})
	assert.ErrorIs(t, err, stats.ErrUnknownNorm)
	_, err = decision.StrategyFor(nil)
	assert.ErrorIs(t, err, decision.ErrNilStrategy)
}

// TestWithLogger_Nil panics at option construction.
func TestWithLogger_Nil(t *testing.T) {
	assert.Panics(t, func() { decision.WithLogger(nil) })
}
