package competition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econlab/internal/econ"
)

func symmetricParams() DuopolyParams {
	return DuopolyParams{Intercept: 100, Slope: 1, MarginalCost1: 10, MarginalCost2: 10}
}

func TestBertrandSymmetricCostsYieldSymmetricOutcome(t *testing.T) {
	out, err := SolveBertrand(BertrandParams{
		DuopolyParams:    symmetricParams(),
		Substitutability: 0.5,
	})
	require.NoError(t, err)

	assert.InDelta(t, out.Price1, out.Price2, 1e-9)
	assert.InDelta(t, out.Quantity1, out.Quantity2, 1e-9)
	assert.InDelta(t, out.Profit1, out.Profit2, 1e-9)
	assert.Greater(t, out.Price1, 10.0) // above marginal cost under differentiation
}

func TestBertrandMatchesClosedForm(t *testing.T) {
	p := BertrandParams{
		DuopolyParams:    DuopolyParams{Intercept: 100, Slope: 2, MarginalCost1: 10, MarginalCost2: 20},
		Substitutability: 0.5,
	}
	out, err := SolveBertrand(p)
	require.NoError(t, err)

	// p_i = (2a + 2b*mc_i + gamma*b*mc_j) / (b * (4 - gamma^2))
	denom := p.Slope * (4 - p.Substitutability*p.Substitutability)
	want1 := (2*p.Intercept + 2*p.Slope*p.MarginalCost1 + p.Substitutability*p.Slope*p.MarginalCost2) / denom
	want2 := (2*p.Intercept + 2*p.Slope*p.MarginalCost2 + p.Substitutability*p.Slope*p.MarginalCost1) / denom

	assert.InDelta(t, want1, out.Price1, 1e-9)
	assert.InDelta(t, want2, out.Price2, 1e-9)
}

func TestBertrandRejectsOutOfRangeGamma(t *testing.T) {
	for _, g := range []float64{-0.1, 1.01, 2} {
		_, err := SolveBertrand(BertrandParams{DuopolyParams: symmetricParams(), Substitutability: g})
		assert.ErrorIs(t, err, econ.ErrInvalidDomain, "gamma %g", g)
	}
}

func TestCournotSymmetric(t *testing.T) {
	out, err := SolveCournot(symmetricParams())
	require.NoError(t, err)

	// q_i = (a - mc) / (3b) = 30 each, price = 100 - 60 = 40.
	assert.InDelta(t, 30.0, out.Quantity1, 1e-9)
	assert.InDelta(t, 30.0, out.Quantity2, 1e-9)
	assert.InDelta(t, 40.0, out.MarketPrice, 1e-9)
	assert.InDelta(t, 900.0, out.Profit1, 1e-9)
	assert.Equal(t, out.Price1, out.Price2)
}

func TestStackelbergLeaderAdvantage(t *testing.T) {
	out, err := SolveStackelberg(symmetricParams(), Firm1)
	require.NoError(t, err)

	assert.Equal(t, Firm1, out.Leader)
	assert.Greater(t, out.Quantity1, out.Quantity2)
	assert.Greater(t, out.Profit1, out.Profit2)

	// Leader output doubles the follower's with symmetric costs.
	assert.InDelta(t, out.Quantity1/2, out.Quantity2, 1e-9)

	mirrored, err := SolveStackelberg(symmetricParams(), Firm2)
	require.NoError(t, err)
	assert.InDelta(t, out.Quantity1, mirrored.Quantity2, 1e-9)
	assert.InDelta(t, out.Profit1, mirrored.Profit2, 1e-9)
}

func TestStackelbergRejectsUnknownLeader(t *testing.T) {
	_, err := SolveStackelberg(symmetricParams(), Firm(3))
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)
}

func TestStackelbergTotalExceedsCournot(t *testing.T) {
	cournot, err := SolveCournot(symmetricParams())
	require.NoError(t, err)
	stackelberg, err := SolveStackelberg(symmetricParams(), Firm1)
	require.NoError(t, err)

	assert.Greater(t, stackelberg.TotalQuantity, cournot.TotalQuantity)
	assert.Less(t, stackelberg.MarketPrice, cournot.MarketPrice)
}

func TestCompare(t *testing.T) {
	outcomes, err := Compare(symmetricParams())
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	assert.Equal(t, Bertrand, outcomes[0].Model)
	assert.Equal(t, Cournot, outcomes[1].Model)
	assert.Equal(t, Stackelberg, outcomes[2].Model)
	assert.Equal(t, Firm1, outcomes[2].Leader)
	assert.Equal(t, Firm2, outcomes[3].Leader)
}

func TestValidation(t *testing.T) {
	_, err := SolveCournot(DuopolyParams{Intercept: 100, Slope: 0, MarginalCost1: 10, MarginalCost2: 10})
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)

	_, err = SolveCournot(DuopolyParams{Intercept: 100, Slope: 1, MarginalCost1: -1, MarginalCost2: 10})
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)
}
