package game

import (
	"fmt"

	"econlab/internal/econ"
)

// Strategy names a repeated-game strategy.
type Strategy string

const (
	// TitForTat cooperates first, then copies the opponent's previous
	// round action.
	TitForTat Strategy = "tit_for_tat"
	// AlwaysCooperate plays Cooperate every round.
	AlwaysCooperate Strategy = "always_cooperate"
	// AlwaysDefect plays Defect every round.
	AlwaysDefect Strategy = "always_defect"
)

// Actions in a 2x2 repeated game. Index 0 is Cooperate, 1 is Defect,
// matching the payoff matrix layout.
const (
	Cooperate = 0
	Defect    = 1
)

func validStrategy(s Strategy) error {
	switch s {
	case TitForTat, AlwaysCooperate, AlwaysDefect:
		return nil
	default:
		return fmt.Errorf("unknown strategy %q: %w", s, econ.ErrInvalidDomain)
	}
}

func opening(s Strategy) int {
	if s == AlwaysDefect {
		return Defect
	}
	return Cooperate
}

func nextAction(s Strategy, opponentPrev int) int {
	switch s {
	case TitForTat:
		return opponentPrev
	case AlwaysCooperate:
		return Cooperate
	default:
		return Defect
	}
}

// RepeatedResult records a full repeated-game run.
type RepeatedResult struct {
	Rounds int

	// History holds each player's action per round (0=Cooperate,
	// 1=Defect).
	HistoryPlayer1 []int
	HistoryPlayer2 []int

	PayoffsPlayer1 []float64
	PayoffsPlayer2 []float64

	TotalPayoff1 float64
	TotalPayoff2 float64

	CooperationRate1 float64
	CooperationRate2 float64
}

// Repeated plays a fixed-length repeated symmetric 2x2 game. Both
// players choose simultaneously: each round's action depends only on the
// opponent's action in the previous round.
func Repeated(payoffs PayoffMatrix, rounds int, s1, s2 Strategy) (RepeatedResult, error) {
	if err := payoffs.Validate(); err != nil {
		return RepeatedResult{}, err
	}
	if payoffs.Size() != 2 {
		return RepeatedResult{}, fmt.Errorf("repeated game requires a 2x2 matrix, got %dx%d: %w", payoffs.Size(), payoffs.Size(), econ.ErrMalformedMatrix)
	}
	if rounds < 1 {
		return RepeatedResult{}, fmt.Errorf("rounds must be >= 1, got %d: %w", rounds, econ.ErrInvalidDomain)
	}
	if err := validStrategy(s1); err != nil {
		return RepeatedResult{}, err
	}
	if err := validStrategy(s2); err != nil {
		return RepeatedResult{}, err
	}

	res := RepeatedResult{
		Rounds:         rounds,
		HistoryPlayer1: make([]int, 0, rounds),
		HistoryPlayer2: make([]int, 0, rounds),
		PayoffsPlayer1: make([]float64, 0, rounds),
		PayoffsPlayer2: make([]float64, 0, rounds),
	}

	a1, a2 := opening(s1), opening(s2)
	coop1, coop2 := 0, 0

	for round := 0; round < rounds; round++ {
		res.HistoryPlayer1 = append(res.HistoryPlayer1, a1)
		res.HistoryPlayer2 = append(res.HistoryPlayer2, a2)
		if a1 == Cooperate {
			coop1++
		}
		if a2 == Cooperate {
			coop2++
		}

		// Symmetric game: player 2 reads the matrix with roles swapped.
		pay1 := payoffs[a1][a2]
		pay2 := payoffs[a2][a1]
		res.PayoffsPlayer1 = append(res.PayoffsPlayer1, pay1)
		res.PayoffsPlayer2 = append(res.PayoffsPlayer2, pay2)
		res.TotalPayoff1 += pay1
		res.TotalPayoff2 += pay2

		a1, a2 = nextAction(s1, a2), nextAction(s2, a1)
	}

	res.CooperationRate1 = float64(coop1) / float64(rounds)
	res.CooperationRate2 = float64(coop2) / float64(rounds)
	return res, nil
}
