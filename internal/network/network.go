package network

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"econlab/internal/econ"
)

// PlatformParams describes two competing platforms whose users value
// both intrinsic quality and the installed base.
type PlatformParams struct {
	// NetworkStrength is the per-user network-effect coefficient beta;
	// zero degenerates to pure quality competition.
	NetworkStrength float64
	Quality1        float64
	Quality2        float64
	// TotalUsers defaults to 1000 when zero.
	TotalUsers float64
}

func (p PlatformParams) Validate() error {
	if p.NetworkStrength < 0 {
		return fmt.Errorf("network strength must be >= 0, got %g: %w", p.NetworkStrength, econ.ErrInvalidDomain)
	}
	if p.TotalUsers < 0 {
		return fmt.Errorf("total users must be >= 0, got %g: %w", p.TotalUsers, econ.ErrInvalidDomain)
	}
	return nil
}

// PlatformResult is the market-share equilibrium of two platforms.
type PlatformResult struct {
	MarketShare1 float64
	MarketShare2 float64

	Users1 float64
	Users2 float64

	NetworkValue1 float64
	NetworkValue2 float64

	Utility1 float64
	Utility2 float64

	TotalUsers float64
}

// PlatformCompetition solves for the market split at which the marginal
// user is indifferent between platforms:
//
//	q1 + beta*x*N = q2 + beta*(1-x)*N
//
// giving x = (beta*N + q2 - q1) / (2*beta*N), clamped to [0,1]. With no
// network effect the higher-quality platform takes the whole market.
func PlatformCompetition(p PlatformParams) (PlatformResult, error) {
	if err := p.Validate(); err != nil {
		return PlatformResult{}, err
	}
	if p.TotalUsers == 0 {
		p.TotalUsers = 1000
	}

	var share1 float64
	if p.NetworkStrength > 0 {
		share1 = (p.NetworkStrength*p.TotalUsers + p.Quality2 - p.Quality1) /
			(2 * p.NetworkStrength * p.TotalUsers)
	} else {
		switch {
		case p.Quality1 > p.Quality2:
			share1 = 1
		case p.Quality2 > p.Quality1:
			share1 = 0
		default:
			share1 = 0.5
		}
	}
	share1 = clamp01(share1)

	users1 := share1 * p.TotalUsers
	users2 := (1 - share1) * p.TotalUsers
	nv1 := p.NetworkStrength * users1
	nv2 := p.NetworkStrength * users2

	return PlatformResult{
		MarketShare1:  share1,
		MarketShare2:  1 - share1,
		Users1:        users1,
		Users2:        users2,
		NetworkValue1: nv1,
		NetworkValue2: nv2,
		Utility1:      p.Quality1 + nv1,
		Utility2:      p.Quality2 + nv2,
		TotalUsers:    p.TotalUsers,
	}, nil
}

// AdoptionParams drives the discrete-time adoption simulation.
type AdoptionParams struct {
	// AdoptionThreshold is the network-utility level above which
	// adoption accelerates.
	AdoptionThreshold float64
	// NetworkValue scales utility with the current adoption rate.
	NetworkValue float64
	Population   float64
	// Periods defaults to 50 when zero.
	Periods int
}

func (p AdoptionParams) Validate() error {
	if p.Population <= 0 {
		return fmt.Errorf("population must be > 0, got %g: %w", p.Population, econ.ErrInvalidDomain)
	}
	if p.AdoptionThreshold < 0 || p.NetworkValue < 0 {
		return fmt.Errorf("threshold and network value must be >= 0: %w", econ.ErrInvalidDomain)
	}
	if p.Periods < 0 {
		return fmt.Errorf("periods must be >= 0, got %d: %w", p.Periods, econ.ErrInvalidDomain)
	}
	return nil
}

// NoCriticalMass is the CriticalMassTime value when adoption never
// reaches 50% within the horizon.
const NoCriticalMass = -1

// AdoptionResult is the simulated adoption trajectory.
type AdoptionResult struct {
	// History is the adoption rate at the start of each simulated
	// period, in [0,1].
	History []float64

	FinalAdoption float64

	// CriticalMassTime is the first period with adoption >= 50%, or
	// NoCriticalMass.
	CriticalMassTime int

	Population float64
}

// Two-regime growth rates: below the utility threshold adoption creeps;
// above it, growth scales with the utility excess.
const (
	slowGrowthRate       = 0.02
	fastGrowthMultiplier = 0.1
	fullAdoptionCutoff   = 0.99
)

// AdoptionDynamics simulates diffusion with a threshold-switched growth
// regime, starting from 1% early adopters. The run stops early once 99%
// of the population has adopted.
func AdoptionDynamics(p AdoptionParams) (AdoptionResult, error) {
	if err := p.Validate(); err != nil {
		return AdoptionResult{}, err
	}
	if p.Periods == 0 {
		p.Periods = 50
	}

	adopters := 0.01 * p.Population
	history := make([]float64, 0, p.Periods)

	for t := 0; t < p.Periods; t++ {
		rate := adopters / p.Population
		history = append(history, rate)

		networkUtility := p.NetworkValue * rate

		var newAdopters float64
		remaining := p.Population - adopters
		if networkUtility > p.AdoptionThreshold {
			growth := fastGrowthMultiplier * (networkUtility - p.AdoptionThreshold)
			newAdopters = growth * remaining
			if newAdopters > remaining {
				newAdopters = remaining
			}
		} else {
			newAdopters = slowGrowthRate * remaining
		}
		adopters += newAdopters

		if adopters >= fullAdoptionCutoff*p.Population {
			break
		}
	}

	criticalMass := NoCriticalMass
	for i, rate := range history {
		if rate >= 0.5 {
			criticalMass = i
			break
		}
	}

	return AdoptionResult{
		History:          history,
		FinalAdoption:    adopters / p.Population,
		CriticalMassTime: criticalMass,
		Population:       p.Population,
	}, nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// TwoSidedParams describes a platform intermediating two user sides with
// cross-side network effects.
type TwoSidedParams struct {
	// CrossNetworkEffect is the cross-side coefficient beta in [0, 1).
	CrossNetworkEffect float64
	PlatformCost       float64
	// MaxUsersPerSide defaults to 1000 when zero.
	MaxUsersPerSide float64
}

func (p TwoSidedParams) Validate() error {
	if p.CrossNetworkEffect < 0 {
		return fmt.Errorf("cross network effect must be >= 0, got %g: %w", p.CrossNetworkEffect, econ.ErrInvalidDomain)
	}
	if p.PlatformCost < 0 {
		return fmt.Errorf("platform cost must be >= 0, got %g: %w", p.PlatformCost, econ.ErrInvalidDomain)
	}
	if p.MaxUsersPerSide < 0 {
		return fmt.Errorf("max users per side must be >= 0, got %g: %w", p.MaxUsersPerSide, econ.ErrInvalidDomain)
	}
	return nil
}

// TwoSidedResult is the cross-side demand solution for a chosen price
// pair.
type TwoSidedResult struct {
	UsersA float64
	UsersB float64

	PriceA float64
	PriceB float64

	Revenue float64
	Profit  float64

	NetworkValueA float64
	NetworkValueB float64

	Subsidized bool
}

// Policy price pairs; selected by network-strength threshold, not
// optimized. Strong cross effects subsidize side A.
const (
	subsidyThreshold = 0.5

	subsidizedPriceA = 0.1
	subsidizedPriceB = 0.8
	symmetricPrice   = 0.4

	twoSidedBaseValue = 1.0
)

// TwoSidedMarket picks the policy price pair for the given cross-side
// strength and solves the coupled demand system
//
//	n_a = K * (v - p_a + beta*n_b/K)
//	n_b = K * (v - p_b + beta*n_a/K)
//
// for the two sides. At beta >= 1 the system has no stable interior
// solution and demand degenerates to an even split.
func TwoSidedMarket(p TwoSidedParams) (TwoSidedResult, error) {
	if err := p.Validate(); err != nil {
		return TwoSidedResult{}, err
	}
	if p.MaxUsersPerSide == 0 {
		p.MaxUsersPerSide = 1000
	}

	beta := p.CrossNetworkEffect
	k := p.MaxUsersPerSide

	priceA, priceB := symmetricPrice, symmetricPrice
	subsidized := beta > subsidyThreshold
	if subsidized {
		priceA, priceB = subsidizedPriceA, subsidizedPriceB
	}

	var usersA, usersB float64
	if beta < 1 {
		coeff := mat.NewDense(2, 2, []float64{
			1, -beta,
			-beta, 1,
		})
		rhs := mat.NewVecDense(2, []float64{
			k * (twoSidedBaseValue - priceA),
			k * (twoSidedBaseValue - priceB),
		})
		var users mat.VecDense
		if err := users.SolveVec(coeff, rhs); err != nil {
			return TwoSidedResult{}, fmt.Errorf("two-sided demand system: %w", err)
		}
		usersA, usersB = users.AtVec(0), users.AtVec(1)
	} else {
		usersA, usersB = k/2, k/2
	}

	usersA = clampRange(usersA, 0, k)
	usersB = clampRange(usersB, 0, k)

	revenue := priceA*usersA + priceB*usersB

	return TwoSidedResult{
		UsersA:        usersA,
		UsersB:        usersB,
		PriceA:        priceA,
		PriceB:        priceB,
		Revenue:       revenue,
		Profit:        revenue - p.PlatformCost,
		NetworkValueA: beta * usersB,
		NetworkValueB: beta * usersA,
		Subsidized:    subsidized,
	}, nil
}

func clampRange(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
