package auction

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econlab/internal/econ"
)

func TestFirstPriceBidShading(t *testing.T) {
	res, err := RunFirstPrice(Valuations{100, 80, 60, 40}, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Winner)
	assert.InDelta(t, 75.0, res.WinningBid, 1e-9) // (n-1)/n * 100
	assert.Equal(t, res.WinningBid, res.Payment)
	assert.Equal(t, res.WinningBid, res.Revenue)
	assert.InDelta(t, 25.0, res.WinnerSurplus, 1e-9)
	assert.Equal(t, 1.0, res.Efficiency)
	require.Len(t, res.Bids, 4)
	assert.InDelta(t, 60.0, res.Bids[1], 1e-9)
}

func TestFirstPriceReserveFiltersBids(t *testing.T) {
	// Bids are 3/4 of valuations; a reserve of 70 leaves only bidder 0.
	res, err := RunFirstPrice(Valuations{100, 80, 60, 40}, 70)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Winner)

	// Reserve above every shaded bid: no winner sentinel.
	res, err = RunFirstPrice(Valuations{100, 80, 60, 40}, 80)
	require.NoError(t, err)
	assert.Equal(t, NoWinner, res.Winner)
	assert.Equal(t, 0.0, res.Revenue)
	assert.Equal(t, 0.0, res.Efficiency)
}

func TestSecondPriceAlwaysEfficient(t *testing.T) {
	vectors := []Valuations{
		{10, 20, 30},
		{5},
		{50, 50, 10},
		{1, 99, 42, 7},
		{0, 0.5, 0.25},
	}
	for _, vals := range vectors {
		res, err := RunSecondPrice(vals, 0)
		require.NoError(t, err)
		require.NotEqual(t, NoWinner, res.Winner)
		assert.Equal(t, 1.0, res.Efficiency)

		// Individual rationality: payment never exceeds the winner's
		// valuation.
		assert.LessOrEqual(t, res.Payment, vals[res.Winner])
		assert.GreaterOrEqual(t, res.WinnerSurplus, 0.0)
	}
}

func TestSecondPricePaysSecondHighest(t *testing.T) {
	res, err := RunSecondPrice(Valuations{100, 80, 60}, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Winner)
	assert.Equal(t, 100.0, res.WinningBid)
	assert.Equal(t, 80.0, res.Payment)
	assert.Equal(t, 20.0, res.WinnerSurplus)
}

func TestSecondPriceSingleQualifierPaysReserve(t *testing.T) {
	res, err := RunSecondPrice(Valuations{100, 30, 20}, 50)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Winner)
	assert.Equal(t, 50.0, res.Payment)
}

func TestSecondPriceNoWinnerBelowReserve(t *testing.T) {
	res, err := RunSecondPrice(Valuations{10, 20}, 50)
	require.NoError(t, err)
	assert.Equal(t, NoWinner, res.Winner)
	assert.Equal(t, 0.0, res.Revenue)
}

func TestEnglishAuction(t *testing.T) {
	res, err := RunEnglish(Valuations{100, 80, 60}, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Winner)
	assert.Equal(t, 1.0, res.Efficiency)
	assert.InDelta(t, 81.0, res.Payment, 1e-9) // runner-up valuation + increment
	assert.Equal(t, res.Payment, res.FinalPrice)
	assert.InDelta(t, 19.0, res.WinnerSurplus, 1e-9)
}

func TestEnglishNoQualifiers(t *testing.T) {
	res, err := RunEnglish(Valuations{10, 20}, 50, 1)
	require.NoError(t, err)
	assert.Equal(t, NoWinner, res.Winner)
}

func TestDutchAuction(t *testing.T) {
	res, err := RunDutch(Valuations{60, 80, 100}, 110, 1)
	require.NoError(t, err)

	// Clock descends 110, 109, ... until it reaches the highest
	// valuation; that bidder accepts at exactly their value.
	assert.Equal(t, 2, res.Winner)
	assert.Equal(t, 1.0, res.Efficiency)
	assert.InDelta(t, 100.0, res.Payment, 1e-9)
	assert.InDelta(t, 0.0, res.WinnerSurplus, 1e-9)
}

func TestDutchCoarseClockLeavesSurplus(t *testing.T) {
	// With a decrement of 30 the clock jumps 110 -> 80 -> 50; the top
	// bidder (95) accepts at 80.
	res, err := RunDutch(Valuations{40, 95}, 110, 30)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Winner)
	assert.InDelta(t, 80.0, res.Payment, 1e-9)
	assert.InDelta(t, 15.0, res.WinnerSurplus, 1e-9)
}

func TestDutchNoWinnerWhenNoOneAccepts(t *testing.T) {
	res, err := RunDutch(Valuations{0, 0}, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, NoWinner, res.Winner)
	assert.Equal(t, 0.0, res.Revenue)
}

func TestCompareMechanisms(t *testing.T) {
	results, err := CompareMechanisms(Valuations{100, 80, 60, 40, 20}, 0)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, FirstPrice, results[0].Mechanism)
	assert.Equal(t, SecondPrice, results[1].Mechanism)
	assert.Equal(t, English, results[2].Mechanism)
	assert.Equal(t, Dutch, results[3].Mechanism)

	for _, r := range results[1:3] {
		assert.Equal(t, 1.0, r.Efficiency, "mechanism %s", r.Mechanism)
	}
}

func TestValidation(t *testing.T) {
	_, err := RunFirstPrice(nil, 0)
	assert.ErrorIs(t, err, econ.ErrNoBidders)

	_, err = RunSecondPrice(Valuations{10, -5}, 0)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)

	_, err = RunEnglish(Valuations{10}, 0, 0)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)

	_, err = RunDutch(Valuations{10}, 100, -1)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)
}

func TestRevenueEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	res, err := RevenueEquivalence(Uniform, 1000, 5, rng)
	require.NoError(t, err)

	assert.Len(t, res.RevenuesFirstPrice, 1000)
	assert.Len(t, res.RevenuesSecondPrice, 1000)

	// Mean revenues converge within 5% relative difference.
	relDiff := res.RevenueDifference / res.MeanRevenueSecondPrice
	if relDiff < 0 {
		relDiff = -relDiff
	}
	assert.Less(t, relDiff, 0.05)
	assert.Greater(t, res.MeanRevenueFirstPrice, 0.0)
}

func TestRevenueEquivalenceNormalDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	res, err := RevenueEquivalence(Normal, 500, 5, rng)
	require.NoError(t, err)
	assert.Greater(t, res.MeanRevenueSecondPrice, 0.0)
	assert.Greater(t, res.StdRevenueFirstPrice, 0.0)
}

func TestRevenueEquivalenceValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := RevenueEquivalence(Uniform, 0, 5, rng)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)

	_, err = RevenueEquivalence(Uniform, 10, 1, rng)
	assert.ErrorIs(t, err, econ.ErrNoBidders)

	_, err = RevenueEquivalence(Distribution("pareto"), 10, 5, rng)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)

	_, err = RevenueEquivalence(Uniform, 10, 5, nil)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)
}

func TestOptimalReserveApproximatesTheory(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	res, err := OptimalReserve(Valuations{100, 70, 40, 20, 10}, 0, rng)
	require.NoError(t, err)

	assert.InDelta(t, 50.0, res.TheoreticalOptimal, 1e-9)
	require.Len(t, res.Curve, 50)

	// Empirical grid optimum lands near the theoretical reserve.
	assert.InDelta(t, res.TheoreticalOptimal, res.EmpiricalOptimal, 20.0)
	assert.Greater(t, res.MaxExpectedRevenue, 0.0)
}

func TestOptimalReserveValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := OptimalReserve(nil, 0, rng)
	assert.ErrorIs(t, err, econ.ErrNoBidders)

	_, err = OptimalReserve(Valuations{0, 0}, 0, rng)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)

	_, err = OptimalReserve(Valuations{10}, -1, rng)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)
}
