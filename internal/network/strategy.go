package network

import (
	"fmt"

	"econlab/internal/econ"
)

// PricingRegime names one of the heuristic platform pricing regimes.
type PricingRegime string

const (
	PenetrationPricing PricingRegime = "penetration_pricing"
	CompetitivePricing PricingRegime = "competitive_pricing"
	ProfitMaximization PricingRegime = "profit_maximization"
)

// Regime cutoffs on network strength. Heuristic constants, preserved as
// documented behavior rather than derived optima.
const (
	penetrationCutoff = 1.0
	competitiveCutoff = 0.5

	strategyMarketSize = 1000.0
)

// PricingResult is the selected regime with its implied price, share and
// profit.
type PricingResult struct {
	Regime PricingRegime

	OptimalPrice        float64
	ExpectedMarketShare float64
	ExpectedUsers       float64
	ExpectedProfit      float64

	NetworkStrength float64
}

// PricingStrategy selects a pricing regime by comparing network strength
// against two fixed cutoffs: strong effects price below cost to build
// the base, medium effects price competitively, weak effects maximize
// per-user profit.
func PricingStrategy(networkStrength, marginalCost, competitionIntensity float64) (PricingResult, error) {
	if networkStrength < 0 {
		return PricingResult{}, fmt.Errorf("network strength must be >= 0, got %g: %w", networkStrength, econ.ErrInvalidDomain)
	}
	if marginalCost < 0 {
		return PricingResult{}, fmt.Errorf("marginal cost must be >= 0, got %g: %w", marginalCost, econ.ErrInvalidDomain)
	}
	if competitionIntensity <= 0 {
		return PricingResult{}, fmt.Errorf("competition intensity must be > 0, got %g: %w", competitionIntensity, econ.ErrInvalidDomain)
	}

	var (
		regime PricingRegime
		price  float64
		share  float64
	)
	switch {
	case networkStrength > penetrationCutoff:
		regime = PenetrationPricing
		price = marginalCost * 0.8
		share = 0.7
	case networkStrength > competitiveCutoff:
		regime = CompetitivePricing
		price = marginalCost * (1 + 0.2/competitionIntensity)
		share = 0.5
	default:
		regime = ProfitMaximization
		price = marginalCost * 2
		share = 0.3
	}

	users := share * strategyMarketSize
	profit := (price - marginalCost) * users

	return PricingResult{
		Regime:              regime,
		OptimalPrice:        price,
		ExpectedMarketShare: share,
		ExpectedUsers:       users,
		ExpectedProfit:      profit,
		NetworkStrength:     networkStrength,
	}, nil
}

// ExternalityWelfare quantifies the welfare gap from users not
// internalizing their network contribution when adopting.
type ExternalityWelfare struct {
	CurrentAdoption float64
	OptimalAdoption float64

	NetworkValuePerUser float64
	TotalNetworkValue   float64

	DeadweightLoss float64
}

// ExternalityAnalysis compares realized adoption against the higher
// adoption a coordinating planner would choose, pricing the gap as a
// quadratic deadweight loss.
func ExternalityAnalysis(networkStrength, adoptionRate, population float64) (ExternalityWelfare, error) {
	if networkStrength < 0 || population <= 0 {
		return ExternalityWelfare{}, fmt.Errorf("network strength must be >= 0 and population > 0: %w", econ.ErrInvalidDomain)
	}
	if adoptionRate < 0 || adoptionRate > 1 {
		return ExternalityWelfare{}, fmt.Errorf("adoption rate must be in [0,1], got %g: %w", adoptionRate, econ.ErrInvalidDomain)
	}

	activeUsers := adoptionRate * population
	perUser := networkStrength * activeUsers

	optimalAdoption := adoptionRate * (1 + networkStrength)
	if optimalAdoption > 1 {
		optimalAdoption = 1
	}
	optimalUsers := optimalAdoption * population
	gap := optimalUsers - activeUsers

	return ExternalityWelfare{
		CurrentAdoption:     adoptionRate,
		OptimalAdoption:     optimalAdoption,
		NetworkValuePerUser: perUser,
		TotalNetworkValue:   activeUsers * perUser,
		DeadweightLoss:      0.5 * networkStrength * gap * gap,
	}, nil
}

// TippingPoint is one sample of the tipping sweep: the equilibrium split
// at a given network strength.
type TippingPoint struct {
	NetworkStrength float64 `json:"network_strength"`
	MarketShare1    float64 `json:"market_share_1"`
	MarketShare2    float64 `json:"market_share_2"`
	// Platform1Wins reports which platform holds the majority.
	Platform1Wins bool `json:"platform_1_wins"`
}

// TippingAnalysis sweeps the network-strength axis and records how the
// equilibrium split moves, exposing the tipping region where quality
// leadership stops guaranteeing the market.
func TippingAnalysis(strengths []float64, quality1, quality2 float64) ([]TippingPoint, error) {
	if len(strengths) == 0 {
		return nil, fmt.Errorf("at least one network strength required: %w", econ.ErrInvalidDomain)
	}

	out := make([]TippingPoint, 0, len(strengths))
	for _, s := range strengths {
		res, err := PlatformCompetition(PlatformParams{
			NetworkStrength: s,
			Quality1:        quality1,
			Quality2:        quality2,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, TippingPoint{
			NetworkStrength: s,
			MarketShare1:    res.MarketShare1,
			MarketShare2:    res.MarketShare2,
			Platform1Wins:   res.MarketShare1 > 0.5,
		})
	}
	return out, nil
}
