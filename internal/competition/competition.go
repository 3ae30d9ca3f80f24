package competition

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"econlab/internal/econ"
)

// Model identifies a duopoly competition model.
type Model string

const (
	Bertrand    Model = "bertrand"
	Cournot     Model = "cournot"
	Stackelberg Model = "stackelberg"
)

// Firm indexes one of the two firms.
type Firm int

const (
	Firm1 Firm = 1
	Firm2 Firm = 2
)

// DuopolyParams are shared linear-demand parameters for two firms with
// possibly asymmetric marginal costs. For Cournot and Stackelberg the
// inverse demand is P = a - b(q1 + q2).
type DuopolyParams struct {
	Intercept     float64 // a
	Slope         float64 // b, must be > 0
	MarginalCost1 float64
	MarginalCost2 float64
}

func (p DuopolyParams) Validate() error {
	if p.Slope <= 0 {
		return fmt.Errorf("demand slope must be > 0, got %g: %w", p.Slope, econ.ErrInvalidDomain)
	}
	if p.Intercept <= 0 {
		return fmt.Errorf("demand intercept must be > 0, got %g: %w", p.Intercept, econ.ErrInvalidDomain)
	}
	if p.MarginalCost1 < 0 || p.MarginalCost2 < 0 {
		return fmt.Errorf("marginal costs must be >= 0: %w", econ.ErrInvalidDomain)
	}
	return nil
}

// BertrandParams adds the product-substitutability parameter gamma.
// gamma = 0 means independent products, gamma = 1 perfect substitutes.
type BertrandParams struct {
	DuopolyParams
	Substitutability float64 // gamma in [0, 1]
}

func (p BertrandParams) Validate() error {
	if err := p.DuopolyParams.Validate(); err != nil {
		return err
	}
	if p.Substitutability < 0 || p.Substitutability > 1 {
		return fmt.Errorf("substitutability must be in [0,1], got %g: %w", p.Substitutability, econ.ErrInvalidDomain)
	}
	return nil
}

// Outcome is the flat result record shared by all three models. For
// Cournot and Stackelberg the two prices coincide with MarketPrice.
type Outcome struct {
	Model Model `json:"model"`
	// Leader is set for Stackelberg only, 0 otherwise.
	Leader Firm `json:"leader,omitempty"`

	Price1 float64 `json:"price_1"`
	Price2 float64 `json:"price_2"`

	Quantity1     float64 `json:"quantity_1"`
	Quantity2     float64 `json:"quantity_2"`
	TotalQuantity float64 `json:"total_quantity"`

	Profit1 float64 `json:"profit_1"`
	Profit2 float64 `json:"profit_2"`

	MarketPrice     float64 `json:"market_price,omitempty"`
	ConsumerSurplus float64 `json:"consumer_surplus"`

	// Substitutability echoes gamma for Bertrand outcomes.
	Substitutability float64 `json:"substitutability,omitempty"`
}

// SolveBertrand computes the Bertrand price-competition equilibrium with
// differentiated products. Demand: qi = a - b*pi + gamma*b*pj. The two
// first-order conditions form the linear system
//
//	2b*p1 - gamma*b*p2 = a + b*mc1
//	-gamma*b*p1 + 2b*p2 = a + b*mc2
//
// which is solved directly; the system is never singular for gamma in
// [0,1] (determinant b^2(4-gamma^2) > 0).
func SolveBertrand(p BertrandParams) (Outcome, error) {
	if err := p.Validate(); err != nil {
		return Outcome{}, err
	}

	a, b, g := p.Intercept, p.Slope, p.Substitutability

	coeff := mat.NewDense(2, 2, []float64{
		2 * b, -g * b,
		-g * b, 2 * b,
	})
	rhs := mat.NewVecDense(2, []float64{
		a + b*p.MarginalCost1,
		a + b*p.MarginalCost2,
	})

	var prices mat.VecDense
	if err := prices.SolveVec(coeff, rhs); err != nil {
		return Outcome{}, fmt.Errorf("bertrand price system: %w", err)
	}
	p1, p2 := prices.AtVec(0), prices.AtVec(1)

	q1 := a - b*p1 + g*b*p2
	q2 := a - b*p2 + g*b*p1

	// Quadratic consumer-surplus approximation for differentiated demand.
	cs := 0.5*b*(q1*q1+q2*q2) + g*b*q1*q2

	return Outcome{
		Model:            Bertrand,
		Price1:           p1,
		Price2:           p2,
		Quantity1:        q1,
		Quantity2:        q2,
		TotalQuantity:    q1 + q2,
		Profit1:          (p1 - p.MarginalCost1) * q1,
		Profit2:          (p2 - p.MarginalCost2) * q2,
		ConsumerSurplus:  cs,
		Substitutability: g,
	}, nil
}

// SolveCournot computes the simultaneous quantity-competition equilibrium
// from the two reaction functions: qi = (a - 2*mci + mcj) / (3b).
func SolveCournot(p DuopolyParams) (Outcome, error) {
	if err := p.Validate(); err != nil {
		return Outcome{}, err
	}

	a, b := p.Intercept, p.Slope
	q1 := (a - 2*p.MarginalCost1 + p.MarginalCost2) / (3 * b)
	q2 := (a - 2*p.MarginalCost2 + p.MarginalCost1) / (3 * b)

	return quantityOutcome(Cournot, 0, p, q1, q2), nil
}

// SolveStackelberg computes the sequential quantity-competition
// equilibrium with an explicit leader. The leader commits first knowing
// the follower's reaction function q_f = (a - mc_f - b*q_l) / (2b).
func SolveStackelberg(p DuopolyParams, leader Firm) (Outcome, error) {
	if err := p.Validate(); err != nil {
		return Outcome{}, err
	}
	if leader != Firm1 && leader != Firm2 {
		return Outcome{}, fmt.Errorf("leader must be firm 1 or 2, got %d: %w", leader, econ.ErrInvalidDomain)
	}

	a, b := p.Intercept, p.Slope
	var q1, q2 float64
	if leader == Firm1 {
		q1 = (a - 2*p.MarginalCost1 + p.MarginalCost2) / (2 * b)
		q2 = (a - p.MarginalCost2 - b*q1) / (2 * b)
	} else {
		q2 = (a - 2*p.MarginalCost2 + p.MarginalCost1) / (2 * b)
		q1 = (a - p.MarginalCost1 - b*q2) / (2 * b)
	}

	return quantityOutcome(Stackelberg, leader, p, q1, q2), nil
}

func quantityOutcome(m Model, leader Firm, p DuopolyParams, q1, q2 float64) Outcome {
	price := p.Intercept - p.Slope*(q1+q2)
	total := q1 + q2

	return Outcome{
		Model:           m,
		Leader:          leader,
		Price1:          price,
		Price2:          price,
		MarketPrice:     price,
		Quantity1:       q1,
		Quantity2:       q2,
		TotalQuantity:   total,
		Profit1:         (price - p.MarginalCost1) * q1,
		Profit2:         (price - p.MarginalCost2) * q2,
		ConsumerSurplus: 0.5 * total * (p.Intercept - price),
	}
}

// Compare evaluates all competition models on the same parameters:
// Bertrand at gamma = 0.5 and Stackelberg under both leaders, matching
// the side-by-side view of the UI.
func Compare(p DuopolyParams) ([]Outcome, error) {
	bertrand, err := SolveBertrand(BertrandParams{DuopolyParams: p, Substitutability: 0.5})
	if err != nil {
		return nil, err
	}
	cournot, err := SolveCournot(p)
	if err != nil {
		return nil, err
	}
	lead1, err := SolveStackelberg(p, Firm1)
	if err != nil {
		return nil, err
	}
	lead2, err := SolveStackelberg(p, Firm2)
	if err != nil {
		return nil, err
	}
	return []Outcome{bertrand, cournot, lead1, lead2}, nil
}
