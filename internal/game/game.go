package game

import (
	"fmt"

	"econlab/internal/econ"
)

// PayoffMatrix holds one player's payoffs indexed by (own strategy,
// opponent strategy). Both players of a game use this orientation, so a
// symmetric game passes the same matrix twice.
type PayoffMatrix [][]float64

func (m PayoffMatrix) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("payoff matrix is empty: %w", econ.ErrMalformedMatrix)
	}
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("payoff matrix row %d has %d entries, want %d: %w", i, len(row), n, econ.ErrMalformedMatrix)
		}
	}
	return nil
}

// Size returns the number of strategies per player.
func (m PayoffMatrix) Size() int { return len(m) }

// Profile is a pure strategy profile: row player's strategy index and
// column player's strategy index.
type Profile struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// FindNashEquilibria exhaustively checks every strategy profile of a
// two-player game. Both matrices are own-action-major: p1[i][j] pays the
// row player at profile (i,j), p2[j][i] pays the column player. A
// profile is a pure-strategy Nash equilibrium iff no unilateral
// deviation strictly improves the deviating player's payoff; ties do not
// break equilibrium. The result may be empty or contain multiple
// profiles, ordered row-major.
func FindNashEquilibria(p1, p2 PayoffMatrix) ([]Profile, error) {
	if err := p1.Validate(); err != nil {
		return nil, fmt.Errorf("player 1: %w", err)
	}
	if err := p2.Validate(); err != nil {
		return nil, fmt.Errorf("player 2: %w", err)
	}
	if p1.Size() != p2.Size() {
		return nil, fmt.Errorf("payoff matrices differ in size (%d vs %d): %w", p1.Size(), p2.Size(), econ.ErrMalformedMatrix)
	}

	n := p1.Size()
	var equilibria []Profile
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if bestResponseRow(p1, i, j) && bestResponseCol(p2, i, j) {
				equilibria = append(equilibria, Profile{Row: i, Col: j})
			}
		}
	}
	return equilibria, nil
}

func bestResponseRow(p1 PayoffMatrix, i, j int) bool {
	for k := range p1 {
		if p1[k][j] > p1[i][j] {
			return false
		}
	}
	return true
}

func bestResponseCol(p2 PayoffMatrix, i, j int) bool {
	for l := range p2 {
		if p2[l][i] > p2[j][i] {
			return false
		}
	}
	return true
}

// Player selects which side of the matrix a dominance check reads.
type Player string

const (
	RowPlayer    Player = "row"
	ColumnPlayer Player = "column"
)

// Dominance reports a strict dominant strategy for one player, if any.
type Dominance struct {
	// Dominant is the index of the strictly dominant strategy, or -1.
	Dominant int
}

// HasDominant reports whether a strictly dominant strategy exists.
func (d Dominance) HasDominant() bool { return d.Dominant >= 0 }

// FindDominantStrategy checks for a strategy that strictly dominates
// every alternative against all opponent strategies.
func FindDominantStrategy(m PayoffMatrix, player Player) (Dominance, error) {
	if err := m.Validate(); err != nil {
		return Dominance{}, err
	}
	if player != RowPlayer && player != ColumnPlayer {
		return Dominance{}, fmt.Errorf("unknown player %q: %w", player, econ.ErrInvalidDomain)
	}

	n := m.Size()
	for cand := 0; cand < n; cand++ {
		if dominates(m, player, cand) {
			return Dominance{Dominant: cand}, nil
		}
	}
	return Dominance{Dominant: -1}, nil
}

func dominates(m PayoffMatrix, player Player, cand int) bool {
	n := m.Size()
	for other := 0; other < n; other++ {
		if other == cand {
			continue
		}
		for opp := 0; opp < n; opp++ {
			var candPay, otherPay float64
			if player == RowPlayer {
				candPay, otherPay = m[cand][opp], m[other][opp]
			} else {
				candPay, otherPay = m[opp][cand], m[opp][other]
			}
			if candPay <= otherPay {
				return false
			}
		}
	}
	return true
}

// EntryGameResult describes the market entry game built from profit
// primitives, with each entrant's payoff matrix and its equilibria.
type EntryGameResult struct {
	PayoffsEntrant1 PayoffMatrix
	PayoffsEntrant2 PayoffMatrix
	Equilibria      []Profile

	EntryCost      float64
	MonopolyProfit float64
	DuopolyProfit  float64
}

// EntryGame builds the two-firm market entry game. Strategy 0 is Enter,
// strategy 1 is Stay Out: both entering earns each the duopoly profit
// net of entry cost, a lone entrant earns monopoly profit net of entry
// cost, staying out earns zero.
func EntryGame(entryCost, monopolyProfit, duopolyProfit float64) (EntryGameResult, error) {
	if entryCost < 0 {
		return EntryGameResult{}, fmt.Errorf("entry cost must be >= 0, got %g: %w", entryCost, econ.ErrInvalidDomain)
	}

	// The game is symmetric, so both entrants share one own-action-major
	// matrix.
	p1 := PayoffMatrix{
		{duopolyProfit - entryCost, monopolyProfit - entryCost},
		{0, 0},
	}
	p2 := PayoffMatrix{
		{duopolyProfit - entryCost, monopolyProfit - entryCost},
		{0, 0},
	}

	eq, err := FindNashEquilibria(p1, p2)
	if err != nil {
		return EntryGameResult{}, err
	}

	return EntryGameResult{
		PayoffsEntrant1: p1,
		PayoffsEntrant2: p2,
		Equilibria:      eq,
		EntryCost:       entryCost,
		MonopolyProfit:  monopolyProfit,
		DuopolyProfit:   duopolyProfit,
	}, nil
}

// PricingGameResult is the symmetric High/Low pricing game: strategy 0
// is High Price, strategy 1 is Low Price.
type PricingGameResult struct {
	Payoffs    PayoffMatrix
	Equilibria []Profile
	// Dominant is the row player's strictly dominant strategy, or -1.
	Dominant int
}

// PricingGame analyzes symmetric duopoly price competition over a 2x2
// payoff matrix.
func PricingGame(payoffs PayoffMatrix) (PricingGameResult, error) {
	if err := payoffs.Validate(); err != nil {
		return PricingGameResult{}, err
	}
	if payoffs.Size() != 2 {
		return PricingGameResult{}, fmt.Errorf("pricing game requires a 2x2 matrix, got %dx%d: %w", payoffs.Size(), payoffs.Size(), econ.ErrMalformedMatrix)
	}

	eq, err := FindNashEquilibria(payoffs, payoffs)
	if err != nil {
		return PricingGameResult{}, err
	}
	dom, err := FindDominantStrategy(payoffs, RowPlayer)
	if err != nil {
		return PricingGameResult{}, err
	}

	return PricingGameResult{
		Payoffs:    payoffs,
		Equilibria: eq,
		Dominant:   dom.Dominant,
	}, nil
}

// InvestmentDecision is the expected-value analysis of investing under
// demand uncertainty.
type InvestmentDecision struct {
	InvestExpectedPayoff float64
	NoInvestPayoff       float64
	Invest               bool
}

// InvestmentGame compares the expected payoff of investing against the
// status-quo profit.
func InvestmentGame(investmentCost, highDemandProb, highDemandProfit, lowDemandProfit, noInvestProfit float64) (InvestmentDecision, error) {
	if highDemandProb < 0 || highDemandProb > 1 {
		return InvestmentDecision{}, fmt.Errorf("probability must be in [0,1], got %g: %w", highDemandProb, econ.ErrInvalidDomain)
	}
	if investmentCost < 0 {
		return InvestmentDecision{}, fmt.Errorf("investment cost must be >= 0, got %g: %w", investmentCost, econ.ErrInvalidDomain)
	}

	expected := highDemandProb*highDemandProfit + (1-highDemandProb)*lowDemandProfit - investmentCost
	return InvestmentDecision{
		InvestExpectedPayoff: expected,
		NoInvestPayoff:       noInvestProfit,
		Invest:               expected > noInvestProfit,
	}, nil
}
