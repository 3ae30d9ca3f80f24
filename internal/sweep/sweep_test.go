package sweep

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econlab/internal/econ"
	"econlab/internal/scenario"
)

func marginalCostSweep() Spec {
	return Spec{
		Scenario: scenario.Scenario{
			Module:    scenario.ModuleMarket,
			Operation: "monopoly",
			Params:    map[string]float64{"intercept": 100, "slope": 1},
		},
		Parameter: "marginal_cost",
		From:      0,
		To:        40,
		Steps:     5,
	}
}

func TestRunSpacesValuesEvenly(t *testing.T) {
	res, err := Run(marginalCostSweep())
	require.NoError(t, err)

	require.Len(t, res.Rows, 5)
	want := []float64{0, 10, 20, 30, 40}
	for i, row := range res.Rows {
		assert.InDelta(t, want[i], row.Value, 1e-9)
	}

	// Monopoly price rises with marginal cost.
	assert.Equal(t, "price", res.MetricNames[0])
	for i := 1; i < len(res.Rows); i++ {
		assert.Greater(t, res.Rows[i].Metrics[0].Value, res.Rows[i-1].Metrics[0].Value)
	}
}

func TestRunDoesNotMutateBaseline(t *testing.T) {
	spec := marginalCostSweep()
	_, err := Run(spec)
	require.NoError(t, err)

	_, overwritten := spec.Scenario.Params["marginal_cost"]
	assert.False(t, overwritten)
}

func TestRunPropagatesStepErrors(t *testing.T) {
	spec := marginalCostSweep()
	spec.Parameter = "slope"
	spec.From = -1
	spec.To = 1
	_, err := Run(spec)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)
}

func TestSpecValidation(t *testing.T) {
	spec := marginalCostSweep()
	spec.Steps = 1
	_, err := Run(spec)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)

	spec = marginalCostSweep()
	spec.Parameter = ""
	_, err = Run(spec)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)

	spec = marginalCostSweep()
	spec.To = spec.From
	_, err = Run(spec)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)
}

func TestWriteCSV(t *testing.T) {
	res, err := Run(marginalCostSweep())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sweep.csv")
	require.NoError(t, WriteCSV(path, res))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 6) // header + 5 rows
	assert.Equal(t, "marginal_cost", records[0][0])
	assert.Equal(t, "price", records[0][1])
	assert.Equal(t, "10.000000", records[2][0])
	assert.Len(t, records[1], len(res.MetricNames)+1)
}
