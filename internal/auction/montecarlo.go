package auction

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"econlab/internal/econ"
)

// Distribution names a valuation sampling distribution for Monte Carlo
// experiments.
type Distribution string

const (
	// Uniform draws valuations from U[0, 100].
	Uniform Distribution = "uniform"
	// Normal draws valuations from N(50, 15) truncated at zero.
	Normal Distribution = "normal"
)

func drawValuations(dist Distribution, bidders int, rng *rand.Rand) (Valuations, error) {
	vals := make(Valuations, bidders)
	switch dist {
	case Uniform:
		for i := range vals {
			vals[i] = rng.Float64() * 100
		}
	case Normal:
		for i := range vals {
			vals[i] = math.Max(0, 50+15*rng.NormFloat64())
		}
	default:
		return nil, fmt.Errorf("unknown distribution %q: %w", dist, econ.ErrInvalidDomain)
	}
	return vals, nil
}

// RevenueEquivalenceResult summarizes a Monte Carlo comparison of mean
// seller revenue between first- and second-price formats.
type RevenueEquivalenceResult struct {
	Trials  int `json:"trials"`
	Bidders int `json:"bidders"`

	MeanRevenueFirstPrice  float64 `json:"mean_revenue_first_price"`
	MeanRevenueSecondPrice float64 `json:"mean_revenue_second_price"`
	StdRevenueFirstPrice   float64 `json:"std_revenue_first_price"`
	StdRevenueSecondPrice  float64 `json:"std_revenue_second_price"`

	// RevenueDifference is mean(first) - mean(second); near zero under
	// the revenue equivalence theorem.
	RevenueDifference float64 `json:"revenue_difference"`

	RevenuesFirstPrice  []float64 `json:"revenues_first_price,omitempty"`
	RevenuesSecondPrice []float64 `json:"revenues_second_price,omitempty"`
}

// RevenueEquivalence runs repeated auctions on freshly drawn valuation
// vectors and compares mean revenue across the two sealed-bid formats.
// This is an empirical check of the revenue equivalence theorem, not a
// proof. The caller supplies the random source for reproducibility.
func RevenueEquivalence(dist Distribution, trials, bidders int, rng *rand.Rand) (RevenueEquivalenceResult, error) {
	if trials < 1 {
		return RevenueEquivalenceResult{}, fmt.Errorf("trials must be >= 1, got %d: %w", trials, econ.ErrInvalidDomain)
	}
	if bidders < 2 {
		return RevenueEquivalenceResult{}, fmt.Errorf("at least 2 bidders required, got %d: %w", bidders, econ.ErrNoBidders)
	}
	if rng == nil {
		return RevenueEquivalenceResult{}, fmt.Errorf("random source is required: %w", econ.ErrInvalidDomain)
	}

	revenuesFP := make([]float64, 0, trials)
	revenuesSP := make([]float64, 0, trials)

	for t := 0; t < trials; t++ {
		vals, err := drawValuations(dist, bidders, rng)
		if err != nil {
			return RevenueEquivalenceResult{}, err
		}

		fp, err := RunFirstPrice(vals, 0)
		if err != nil {
			return RevenueEquivalenceResult{}, err
		}
		sp, err := RunSecondPrice(vals, 0)
		if err != nil {
			return RevenueEquivalenceResult{}, err
		}

		revenuesFP = append(revenuesFP, fp.Revenue)
		revenuesSP = append(revenuesSP, sp.Revenue)
	}

	meanFP := stat.Mean(revenuesFP, nil)
	meanSP := stat.Mean(revenuesSP, nil)

	return RevenueEquivalenceResult{
		Trials:                 trials,
		Bidders:                bidders,
		MeanRevenueFirstPrice:  meanFP,
		MeanRevenueSecondPrice: meanSP,
		StdRevenueFirstPrice:   stat.StdDev(revenuesFP, nil),
		StdRevenueSecondPrice:  stat.StdDev(revenuesSP, nil),
		RevenueDifference:      meanFP - meanSP,
		RevenuesFirstPrice:     revenuesFP,
		RevenuesSecondPrice:    revenuesSP,
	}, nil
}

const (
	reserveGridPoints    = 50
	reserveTrialsPerStep = 100
)

// ReservePoint is one sampled point on the reserve-revenue curve.
type ReservePoint struct {
	Reserve         float64
	ExpectedRevenue float64
}

// OptimalReserveResult reports the empirical revenue-maximizing reserve
// alongside the theoretical (v_max + cost)/2 optimum for uniform values.
type OptimalReserveResult struct {
	TheoreticalOptimal float64
	EmpiricalOptimal   float64
	MaxExpectedRevenue float64
	Curve              []ReservePoint
}

// OptimalReserve grid-searches reserve prices between zero and the
// highest valuation in vals, estimating expected second-price revenue at
// each grid point by Monte Carlo: every trial redraws the bidders'
// valuations uniformly on [0, v_max]. For uniform values the empirical
// optimum approximates the theoretical (v_max + cost)/2.
func OptimalReserve(vals Valuations, cost float64, rng *rand.Rand) (OptimalReserveResult, error) {
	if err := vals.Validate(); err != nil {
		return OptimalReserveResult{}, err
	}
	if cost < 0 {
		return OptimalReserveResult{}, fmt.Errorf("seller cost must be >= 0, got %g: %w", cost, econ.ErrInvalidDomain)
	}
	if rng == nil {
		return OptimalReserveResult{}, fmt.Errorf("random source is required: %w", econ.ErrInvalidDomain)
	}

	maxVal := vals[vals.highest()]
	if maxVal <= 0 {
		return OptimalReserveResult{}, fmt.Errorf("all valuations are zero: %w", econ.ErrInvalidDomain)
	}
	theoretical := (maxVal + cost) / 2

	curve := make([]ReservePoint, 0, reserveGridPoints)
	bestIdx := 0
	for i := 0; i < reserveGridPoints; i++ {
		reserve := maxVal * float64(i) / float64(reserveGridPoints-1)

		revenues := make([]float64, 0, reserveTrialsPerStep)
		for t := 0; t < reserveTrialsPerStep; t++ {
			drawn := make(Valuations, len(vals))
			for j := range drawn {
				drawn[j] = rng.Float64() * maxVal
			}

			participating := make(Valuations, 0, len(drawn))
			for _, v := range drawn {
				if v >= reserve {
					participating = append(participating, v)
				}
			}
			switch {
			case len(participating) >= 2:
				sp, err := RunSecondPrice(participating, reserve)
				if err != nil {
					return OptimalReserveResult{}, err
				}
				revenues = append(revenues, sp.Revenue)
			case len(participating) == 1:
				revenues = append(revenues, reserve)
			default:
				revenues = append(revenues, 0)
			}
		}

		point := ReservePoint{Reserve: reserve, ExpectedRevenue: stat.Mean(revenues, nil)}
		curve = append(curve, point)
		if point.ExpectedRevenue > curve[bestIdx].ExpectedRevenue {
			bestIdx = i
		}
	}

	return OptimalReserveResult{
		TheoreticalOptimal: theoretical,
		EmpiricalOptimal:   curve[bestIdx].Reserve,
		MaxExpectedRevenue: curve[bestIdx].ExpectedRevenue,
		Curve:              curve,
	}, nil
}
