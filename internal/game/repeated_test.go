package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econlab/internal/econ"
)

func TestTitForTatAgainstAlwaysDefect(t *testing.T) {
	res, err := Repeated(prisonersDilemma(), 10, TitForTat, AlwaysDefect)
	require.NoError(t, err)

	// Tit-for-tat cooperates once, then mirrors defection forever.
	assert.Equal(t, Cooperate, res.HistoryPlayer1[0])
	for _, a := range res.HistoryPlayer1[1:] {
		assert.Equal(t, Defect, a)
	}
	assert.InDelta(t, 0.1, res.CooperationRate1, 1e-9)
	assert.Equal(t, 0.0, res.CooperationRate2)

	// Round 1: (C,D) pays 0 vs 5; all later rounds (D,D) pay 1 each.
	assert.InDelta(t, 9.0, res.TotalPayoff1, 1e-9)
	assert.InDelta(t, 14.0, res.TotalPayoff2, 1e-9)
}

func TestTitForTatSustainsCooperation(t *testing.T) {
	res, err := Repeated(prisonersDilemma(), 50, TitForTat, AlwaysCooperate)
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.CooperationRate1)
	assert.Equal(t, 1.0, res.CooperationRate2)
	assert.InDelta(t, 150.0, res.TotalPayoff1, 1e-9) // 50 rounds of mutual cooperation
	assert.Equal(t, res.TotalPayoff1, res.TotalPayoff2)
}

func TestMutualTitForTatNeverDefects(t *testing.T) {
	res, err := Repeated(prisonersDilemma(), 20, TitForTat, TitForTat)
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.CooperationRate1)
	assert.Equal(t, 1.0, res.CooperationRate2)
}

func TestAlwaysDefectBothSides(t *testing.T) {
	res, err := Repeated(prisonersDilemma(), 30, AlwaysDefect, AlwaysDefect)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.CooperationRate1)
	assert.InDelta(t, 30.0, res.TotalPayoff1, 1e-9)
	assert.Len(t, res.HistoryPlayer1, 30)
	assert.Len(t, res.PayoffsPlayer2, 30)
}

func TestRepeatedValidation(t *testing.T) {
	_, err := Repeated(PayoffMatrix{{1}}, 10, TitForTat, TitForTat)
	assert.ErrorIs(t, err, econ.ErrMalformedMatrix)

	_, err = Repeated(prisonersDilemma(), 0, TitForTat, TitForTat)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)

	_, err = Repeated(prisonersDilemma(), 10, Strategy("grim_trigger"), TitForTat)
	assert.ErrorIs(t, err, econ.ErrInvalidDomain)
}
