package market

import (
	"fmt"

	"econlab/internal/econ"
)

// Structure identifies one of the four supported market structures.
// Keep these values stable; they appear in API responses and CSV output.
type Structure string

const (
	PerfectCompetition      Structure = "perfect_competition"
	Monopoly                Structure = "monopoly"
	CournotOligopoly        Structure = "cournot_oligopoly"
	MonopolisticCompetition Structure = "monopolistic_competition"
)

// Params defines a linear-demand market: inverse demand P = a - bQ with
// constant marginal cost. Firms is only consulted by the Cournot model.
type Params struct {
	// Intercept is the demand intercept a (maximum willingness to pay).
	Intercept float64
	// Slope is the demand slope b; must be > 0.
	Slope float64
	// MarginalCost is the constant marginal cost shared by all firms.
	MarginalCost float64
	// Firms is the number of symmetric firms (Cournot only).
	Firms int
}

func (p Params) Validate() error {
	if p.Slope <= 0 {
		return fmt.Errorf("demand slope must be > 0, got %g: %w", p.Slope, econ.ErrInvalidDomain)
	}
	if p.Intercept <= 0 {
		return fmt.Errorf("demand intercept must be > 0, got %g: %w", p.Intercept, econ.ErrInvalidDomain)
	}
	if p.MarginalCost < 0 {
		return fmt.Errorf("marginal cost must be >= 0, got %g: %w", p.MarginalCost, econ.ErrInvalidDomain)
	}
	return nil
}

func (p Params) validateFirms() error {
	if p.Firms < 1 {
		return fmt.Errorf("firm count must be >= 1, got %d: %w", p.Firms, econ.ErrInvalidDomain)
	}
	return nil
}

// Equilibrium is the flat result record for a single market structure.
// Fields that only apply to some structures (DeadweightLoss, per-firm
// figures, Markup) are zero elsewhere.
type Equilibrium struct {
	Structure Structure `json:"structure"`

	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`

	ConsumerSurplus float64 `json:"consumer_surplus"`
	ProducerSurplus float64 `json:"producer_surplus"`
	TotalSurplus    float64 `json:"total_surplus"`

	// Monopoly only: welfare loss relative to perfect competition.
	DeadweightLoss float64 `json:"deadweight_loss,omitempty"`

	// Cournot only.
	Firms           int     `json:"firms,omitempty"`
	QuantityPerFirm float64 `json:"quantity_per_firm,omitempty"`
	ProfitPerFirm   float64 `json:"profit_per_firm,omitempty"`

	// Monopolistic competition only: markup over marginal cost.
	Markup float64 `json:"markup,omitempty"`

	// Demanded reports whether the market clears at positive quantity.
	// When marginal cost meets or exceeds the demand intercept the
	// equilibrium quantity is non-positive and the result is zeroed.
	Demanded bool `json:"demanded"`
}

// Competitive solves the perfect-competition equilibrium: price equals
// marginal cost, quantity clears demand at that price.
func Competitive(p Params) (Equilibrium, error) {
	if err := p.Validate(); err != nil {
		return Equilibrium{}, err
	}
	if p.MarginalCost >= p.Intercept {
		return Equilibrium{Structure: PerfectCompetition}, nil
	}

	q := (p.Intercept - p.MarginalCost) / p.Slope
	price := p.MarginalCost
	cs := 0.5 * q * (p.Intercept - price)

	return Equilibrium{
		Structure:       PerfectCompetition,
		Price:           price,
		Quantity:        q,
		ConsumerSurplus: cs,
		ProducerSurplus: 0, // price equals marginal cost
		TotalSurplus:    cs,
		Demanded:        true,
	}, nil
}

// Monopolist solves the monopoly equilibrium from MR = MC.
func Monopolist(p Params) (Equilibrium, error) {
	if err := p.Validate(); err != nil {
		return Equilibrium{}, err
	}
	if p.MarginalCost >= p.Intercept {
		return Equilibrium{Structure: Monopoly}, nil
	}

	q := (p.Intercept - p.MarginalCost) / (2 * p.Slope)
	price := p.Intercept - p.Slope*q

	cs := 0.5 * q * (p.Intercept - price)
	ps := (price - p.MarginalCost) * q

	// Deadweight loss against the competitive benchmark.
	qCompetitive := (p.Intercept - p.MarginalCost) / p.Slope
	dwl := 0.5 * p.Slope * (qCompetitive - q) * (qCompetitive - q)

	return Equilibrium{
		Structure:       Monopoly,
		Price:           price,
		Quantity:        q,
		ConsumerSurplus: cs,
		ProducerSurplus: ps,
		TotalSurplus:    cs + ps,
		DeadweightLoss:  dwl,
		Demanded:        true,
	}, nil
}

// Cournot solves the symmetric n-firm Cournot oligopoly. Per-firm quantity
// is (a-mc)/(b(n+1)); as n grows the outcome approaches perfect competition.
func Cournot(p Params) (Equilibrium, error) {
	if err := p.Validate(); err != nil {
		return Equilibrium{}, err
	}
	if err := p.validateFirms(); err != nil {
		return Equilibrium{}, err
	}
	if p.MarginalCost >= p.Intercept {
		return Equilibrium{Structure: CournotOligopoly, Firms: p.Firms}, nil
	}

	n := float64(p.Firms)
	qPerFirm := (p.Intercept - p.MarginalCost) / (p.Slope * (n + 1))
	qTotal := n * qPerFirm
	price := p.Intercept - p.Slope*qTotal

	profitPerFirm := (price - p.MarginalCost) * qPerFirm
	ps := n * profitPerFirm
	cs := 0.5 * qTotal * (p.Intercept - price)

	return Equilibrium{
		Structure:       CournotOligopoly,
		Price:           price,
		Quantity:        qTotal,
		ConsumerSurplus: cs,
		ProducerSurplus: ps,
		TotalSurplus:    cs + ps,
		Firms:           p.Firms,
		QuantityPerFirm: qPerFirm,
		ProfitPerFirm:   profitPerFirm,
		Demanded:        true,
	}, nil
}

// markup is the long-run monopolistic-competition markup over marginal
// cost. Heuristic constant, not a derived optimum.
const markup = 0.2

// Monopolistic solves the simplified monopolistic-competition equilibrium:
// firms price a fixed markup over marginal cost, free entry keeps producer
// surplus near zero.
func Monopolistic(p Params) (Equilibrium, error) {
	if err := p.Validate(); err != nil {
		return Equilibrium{}, err
	}

	price := p.MarginalCost * (1 + markup)
	if price >= p.Intercept {
		return Equilibrium{Structure: MonopolisticCompetition, Markup: markup}, nil
	}

	q := (p.Intercept - price) / p.Slope
	cs := 0.5 * q * (p.Intercept - price)
	ps := 0.1 * q // small residual profit; heuristic stand-in for the long run

	return Equilibrium{
		Structure:       MonopolisticCompetition,
		Price:           price,
		Quantity:        q,
		ConsumerSurplus: cs,
		ProducerSurplus: ps,
		TotalSurplus:    cs + ps,
		Markup:          markup,
		Demanded:        true,
	}, nil
}

// Solve dispatches to the named structure.
func Solve(s Structure, p Params) (Equilibrium, error) {
	switch s {
	case PerfectCompetition:
		return Competitive(p)
	case Monopoly:
		return Monopolist(p)
	case CournotOligopoly:
		return Cournot(p)
	case MonopolisticCompetition:
		return Monopolistic(p)
	default:
		return Equilibrium{}, fmt.Errorf("unknown market structure %q: %w", s, econ.ErrInvalidDomain)
	}
}

// Compare evaluates all four structures on the same demand and cost
// parameters, in a stable order suitable for side-by-side display.
func Compare(p Params) ([]Equilibrium, error) {
	if p.Firms < 1 {
		p.Firms = 3
	}
	structures := []Structure{PerfectCompetition, Monopoly, CournotOligopoly, MonopolisticCompetition}
	out := make([]Equilibrium, 0, len(structures))
	for _, s := range structures {
		eq, err := Solve(s, p)
		if err != nil {
			return nil, err
		}
		out = append(out, eq)
	}
	return out, nil
}
