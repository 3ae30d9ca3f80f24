package market

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econlab/internal/econ"
)

func TestCompetitive(t *testing.T) {
	eq, err := Competitive(Params{Intercept: 100, Slope: 1, MarginalCost: 20})
	require.NoError(t, err)

	assert.Equal(t, 20.0, eq.Price)
	assert.Equal(t, 80.0, eq.Quantity)
	assert.Equal(t, 0.0, eq.ProducerSurplus)
	assert.InDelta(t, 3200.0, eq.ConsumerSurplus, 1e-9)
	assert.Equal(t, eq.ConsumerSurplus, eq.TotalSurplus)
	assert.True(t, eq.Demanded)
}

func TestMonopolyHalvesCompetitiveQuantity(t *testing.T) {
	p := Params{Intercept: 100, Slope: 2, MarginalCost: 10}

	pc, err := Competitive(p)
	require.NoError(t, err)
	mono, err := Monopolist(p)
	require.NoError(t, err)

	assert.InDelta(t, pc.Quantity/2, mono.Quantity, 1e-9)
	assert.Greater(t, mono.DeadweightLoss, 0.0)
	assert.Greater(t, mono.Price, pc.Price)
	assert.Less(t, mono.TotalSurplus, pc.TotalSurplus)
}

func TestCournotConvergesToCompetition(t *testing.T) {
	p := Params{Intercept: 100, Slope: 1, MarginalCost: 20}

	pc, err := Competitive(p)
	require.NoError(t, err)

	p.Firms = 1000
	oligopoly, err := Cournot(p)
	require.NoError(t, err)

	assert.InDelta(t, pc.Quantity, oligopoly.Quantity, pc.Quantity*0.01)
	assert.InDelta(t, pc.Price, oligopoly.Price, 0.5)
}

func TestCournotSingleFirmMatchesMonopoly(t *testing.T) {
	p := Params{Intercept: 100, Slope: 1, MarginalCost: 20, Firms: 1}

	mono, err := Monopolist(p)
	require.NoError(t, err)
	single, err := Cournot(p)
	require.NoError(t, err)

	assert.InDelta(t, mono.Quantity, single.Quantity, 1e-9)
	assert.InDelta(t, mono.Price, single.Price, 1e-9)
}

func TestMarginalCostAboveInterceptClampsToZero(t *testing.T) {
	p := Params{Intercept: 50, Slope: 1, MarginalCost: 60, Firms: 3}

	for _, s := range []Structure{PerfectCompetition, Monopoly, CournotOligopoly} {
		eq, err := Solve(s, p)
		require.NoError(t, err, "structure %s", s)
		assert.Equal(t, 0.0, eq.Quantity, "structure %s", s)
		assert.Equal(t, 0.0, eq.Price, "structure %s", s)
		assert.False(t, eq.Demanded, "structure %s", s)
		assert.False(t, math.IsNaN(eq.TotalSurplus))
	}
}

func TestMonopolisticCompetitionMarkup(t *testing.T) {
	eq, err := Monopolistic(Params{Intercept: 100, Slope: 1, MarginalCost: 20})
	require.NoError(t, err)

	assert.InDelta(t, 24.0, eq.Price, 1e-9) // 20% markup over mc
	assert.Equal(t, 0.2, eq.Markup)
	assert.Greater(t, eq.Quantity, 0.0)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		p    Params
	}{
		{"zero slope", Params{Intercept: 100, Slope: 0, MarginalCost: 20}},
		{"negative slope", Params{Intercept: 100, Slope: -1, MarginalCost: 20}},
		{"zero intercept", Params{Intercept: 0, Slope: 1, MarginalCost: 20}},
		{"negative cost", Params{Intercept: 100, Slope: 1, MarginalCost: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Competitive(tc.p)
			require.Error(t, err)
			assert.ErrorIs(t, err, econ.ErrInvalidDomain)
		})
	}

	_, err := Cournot(Params{Intercept: 100, Slope: 1, MarginalCost: 20, Firms: 0})
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)

	_, err = Solve(Structure("bogus"), Params{Intercept: 100, Slope: 1, MarginalCost: 20})
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)
}

func TestCompareOrderAndDefaultFirms(t *testing.T) {
	results, err := Compare(Params{Intercept: 100, Slope: 1, MarginalCost: 20})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, PerfectCompetition, results[0].Structure)
	assert.Equal(t, Monopoly, results[1].Structure)
	assert.Equal(t, CournotOligopoly, results[2].Structure)
	assert.Equal(t, MonopolisticCompetition, results[3].Structure)
	assert.Equal(t, 3, results[2].Firms)
}
