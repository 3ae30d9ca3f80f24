package chart

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econlab/internal/auction"
	"econlab/internal/econ"
	"econlab/internal/market"
	"econlab/internal/network"
	"econlab/internal/scenario"
	"econlab/internal/sweep"
)

func TestMarketDiagram(t *testing.T) {
	p := market.Params{Intercept: 100, Slope: 1, MarginalCost: 20}
	eq, err := market.Monopolist(p)
	require.NoError(t, err)

	series, err := MarketDiagram(p, eq, 10)
	require.NoError(t, err)
	require.Len(t, series, 3)

	demand := series[0]
	assert.Equal(t, "demand", demand.Name)
	require.Len(t, demand.Points, 11)
	assert.Equal(t, Point{X: 0, Y: 100}, demand.Points[0])
	assert.InDelta(t, 0.0, demand.Points[10].Y, 1e-9) // price hits zero at q = a/b

	assert.Equal(t, "marginal_cost", series[1].Name)
	for _, pt := range series[1].Points {
		assert.Equal(t, 20.0, pt.Y)
	}

	assert.Equal(t, "equilibrium", series[2].Name)
	assert.Equal(t, Point{X: eq.Quantity, Y: eq.Price}, series[2].Points[0])
}

func TestMarketDiagramOmitsUndemandedEquilibrium(t *testing.T) {
	p := market.Params{Intercept: 100, Slope: 1, MarginalCost: 150}
	eq, err := market.Competitive(p)
	require.NoError(t, err)

	series, err := MarketDiagram(p, eq, 0)
	require.NoError(t, err)
	assert.Len(t, series, 2)
}

func TestAdoptionTrajectory(t *testing.T) {
	res, err := network.AdoptionDynamics(network.AdoptionParams{
		AdoptionThreshold: 0.1,
		NetworkValue:      5,
		Population:        1000,
	})
	require.NoError(t, err)

	series := AdoptionTrajectory(res)
	require.Len(t, series, 2)
	assert.Len(t, series[0].Points, len(res.History))
	assert.Equal(t, Point{X: 0, Y: 0.01}, series[0].Points[0])
	assert.Equal(t, 0.5, series[1].Points[0].Y)
}

func TestReserveCurve(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	res, err := auction.OptimalReserve(auction.Valuations{100, 70, 40}, 0, rng)
	require.NoError(t, err)

	series := ReserveCurve(res)
	require.Len(t, series, 2)
	assert.Len(t, series[0].Points, len(res.Curve))
	assert.Equal(t, res.EmpiricalOptimal, series[1].Points[0].X)
}

func TestSweepSeries(t *testing.T) {
	res, err := sweep.Run(sweep.Spec{
		Scenario: scenario.Scenario{
			Module:    scenario.ModuleMarket,
			Operation: "monopoly",
			Params:    map[string]float64{"intercept": 100, "slope": 1},
		},
		Parameter: "marginal_cost",
		From:      0,
		To:        40,
		Steps:     5,
	})
	require.NoError(t, err)

	series, err := SweepSeries(res, "price", "quantity")
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "price", series[0].Name)
	assert.Len(t, series[0].Points, 5)
	assert.Equal(t, 0.0, series[0].Points[0].X)

	// Unnamed selection takes every metric.
	all, err := SweepSeries(res)
	require.NoError(t, err)
	assert.Len(t, all, len(res.MetricNames))

	_, err = SweepSeries(res, "nonexistent")
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)
}
