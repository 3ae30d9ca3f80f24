package differentiation

import (
	"fmt"
	"math"

	"econlab/internal/econ"
)

// HotellingParams describes the linear-city model. Firms are pre-located
// at the 1/4 and 3/4 marks of the city; only the price stage is solved.
type HotellingParams struct {
	TransportCost float64 // t, per unit distance; must be > 0
	MarginalCost  float64
	CityLength    float64 // defaults to 1 when zero
}

func (p HotellingParams) Validate() error {
	if p.TransportCost <= 0 {
		return fmt.Errorf("transport cost must be > 0, got %g: %w", p.TransportCost, econ.ErrInvalidDomain)
	}
	if p.MarginalCost < 0 {
		return fmt.Errorf("marginal cost must be >= 0, got %g: %w", p.MarginalCost, econ.ErrInvalidDomain)
	}
	if p.CityLength < 0 {
		return fmt.Errorf("city length must be >= 0, got %g: %w", p.CityLength, econ.ErrInvalidDomain)
	}
	return nil
}

// HotellingResult is the symmetric linear-city equilibrium.
type HotellingResult struct {
	Location1 float64
	Location2 float64

	Price1 float64
	Price2 float64

	MarketShare1 float64
	MarketShare2 float64

	Profit1 float64
	Profit2 float64

	IndifferentConsumer float64
	TotalTransportCosts float64
	CityLength          float64
}

// HotellingLinearCity solves the price stage of the linear-city game with
// equilibrium locations fixed at L/4 and 3L/4. Symmetric equilibrium
// price is mc + t*L; each firm serves half the city.
func HotellingLinearCity(p HotellingParams) (HotellingResult, error) {
	if err := p.Validate(); err != nil {
		return HotellingResult{}, err
	}
	if p.CityLength == 0 {
		p.CityLength = 1
	}

	l := p.CityLength
	price := p.MarginalCost + p.TransportCost*l
	demand := 0.5 * l // unit consumer density
	profit := (price - p.MarginalCost) * demand

	return HotellingResult{
		Location1:           l / 4,
		Location2:           3 * l / 4,
		Price1:              price,
		Price2:              price,
		MarketShare1:        0.5,
		MarketShare2:        0.5,
		Profit1:             profit,
		Profit2:             profit,
		IndifferentConsumer: l / 2,
		TotalTransportCosts: p.TransportCost * l * l / 12,
		CityLength:          l,
	}, nil
}

// SalopParams describes the circular-city model with n equally spaced
// firms on a circle of unit circumference.
type SalopParams struct {
	TransportCost float64
	MarginalCost  float64
	Firms         int
}

func (p SalopParams) Validate() error {
	if p.TransportCost <= 0 {
		return fmt.Errorf("transport cost must be > 0, got %g: %w", p.TransportCost, econ.ErrInvalidDomain)
	}
	if p.MarginalCost < 0 {
		return fmt.Errorf("marginal cost must be >= 0, got %g: %w", p.MarginalCost, econ.ErrInvalidDomain)
	}
	if p.Firms < 1 {
		return fmt.Errorf("firm count must be >= 1, got %d: %w", p.Firms, econ.ErrInvalidDomain)
	}
	return nil
}

// SalopResult is the symmetric circular-city equilibrium.
type SalopResult struct {
	Firms       int
	FirmSpacing float64

	Price              float64
	MarketSharePerFirm float64
	ProfitPerFirm      float64
	TotalProfit        float64

	ConsumerSurplusPerFirm float64
}

// CircularCity solves the symmetric Salop equilibrium: each firm prices
// mc + t/(2n) and serves a 1/n arc. Price approaches marginal cost as
// the number of firms grows.
func CircularCity(p SalopParams) (SalopResult, error) {
	if err := p.Validate(); err != nil {
		return SalopResult{}, err
	}

	n := float64(p.Firms)
	price := p.MarginalCost + p.TransportCost/(2*n)
	share := 1 / n
	profit := (price - p.MarginalCost) * share

	return SalopResult{
		Firms:                  p.Firms,
		FirmSpacing:            1 / n,
		Price:                  price,
		MarketSharePerFirm:     share,
		ProfitPerFirm:          profit,
		TotalProfit:            n * profit,
		ConsumerSurplusPerFirm: 0.5 * share * (p.TransportCost / (2 * n)),
	}, nil
}

// VerticalParams describes two quality tiers with distinct unit costs.
// Consumer taste for quality is uniform on [0,1]; utility is theta*q - p.
type VerticalParams struct {
	QualityHigh float64
	QualityLow  float64
	CostHigh    float64
	CostLow     float64
}

func (p VerticalParams) Validate() error {
	if p.QualityHigh < 0 || p.QualityLow < 0 {
		return fmt.Errorf("qualities must be >= 0: %w", econ.ErrInvalidDomain)
	}
	if p.CostHigh < 0 || p.CostLow < 0 {
		return fmt.Errorf("costs must be >= 0: %w", econ.ErrInvalidDomain)
	}
	if p.QualityHigh < p.QualityLow {
		return fmt.Errorf("high quality %g below low quality %g: %w", p.QualityHigh, p.QualityLow, econ.ErrInvalidDomain)
	}
	return nil
}

// VerticalResult is the vertical-differentiation duopoly equilibrium.
type VerticalResult struct {
	QualityHigh float64
	QualityLow  float64

	PriceHigh float64
	PriceLow  float64

	DemandHigh float64
	DemandLow  float64

	ProfitHigh float64
	ProfitLow  float64

	// MarginalConsumer is the taste level indifferent between tiers.
	MarginalConsumer float64
	QualityPremium   float64
}

// Vertical solves the discriminating duopoly with two quality tiers.
// If a tier's computed demand would be negative it exits: demand is
// clamped to zero and its price re-floored to cost. Equal qualities
// degenerate to Bertrand on the common quality.
func Vertical(p VerticalParams) (VerticalResult, error) {
	if err := p.Validate(); err != nil {
		return VerticalResult{}, err
	}

	qualityDiff := p.QualityHigh - p.QualityLow

	var priceHigh, priceLow, demandHigh, demandLow, thetaStar float64
	if qualityDiff > 0 {
		priceHigh = p.CostHigh + (2*p.QualityHigh-p.QualityLow)/3
		priceLow = p.CostLow + (2*p.QualityLow-p.QualityHigh)/3

		thetaStar = (priceHigh - priceLow) / qualityDiff
		demandHigh = math.Max(0, 1-thetaStar)
		demandLow = math.Max(0, thetaStar)

		if 1-thetaStar < 0 {
			demandHigh = 0
			priceHigh = p.CostHigh
		}
		if thetaStar < 0 {
			demandLow = 0
			priceLow = p.CostLow
		}
	} else {
		// Identical qualities: undifferentiated Bertrand, both price at
		// the higher of the two costs and split the market.
		price := math.Max(p.CostHigh, p.CostLow)
		priceHigh, priceLow = price, price
		demandHigh, demandLow = 0.5, 0.5
		thetaStar = 0.5
	}

	return VerticalResult{
		QualityHigh:      p.QualityHigh,
		QualityLow:       p.QualityLow,
		PriceHigh:        priceHigh,
		PriceLow:         priceLow,
		DemandHigh:       demandHigh,
		DemandLow:        demandLow,
		ProfitHigh:       math.Max(0, (priceHigh-p.CostHigh)*demandHigh),
		ProfitLow:        math.Max(0, (priceLow-p.CostLow)*demandLow),
		MarginalConsumer: thetaStar,
		QualityPremium:   priceHigh - priceLow,
	}, nil
}

// Welfare summarizes producer and consumer surplus for a differentiation
// outcome.
type Welfare struct {
	ProducerSurplus float64
	ConsumerSurplus float64
	TotalWelfare    float64
}

// HotellingWelfare reports welfare components of a linear-city outcome.
// Transport costs are the welfare loss borne by consumers.
func HotellingWelfare(r HotellingResult) Welfare {
	ps := r.Profit1 + r.Profit2
	cs := -r.TotalTransportCosts
	return Welfare{ProducerSurplus: ps, ConsumerSurplus: cs, TotalWelfare: ps + cs}
}

// VerticalWelfare reports welfare components of a vertical-differentiation
// outcome, integrating consumer utility across the two served segments.
func VerticalWelfare(r VerticalResult) Welfare {
	ps := r.ProfitHigh + r.ProfitLow

	theta := r.MarginalConsumer
	csHigh := (theta*r.QualityHigh - r.PriceHigh) * (1 - theta) / 2
	csLow := (theta*r.QualityLow - r.PriceLow) * theta / 2
	cs := math.Max(0, csHigh+csLow)

	return Welfare{ProducerSurplus: ps, ConsumerSurplus: cs, TotalWelfare: ps + cs}
}
