// Package scenario maps flat scenario records onto the model packages.
// A scenario names one module, one operation within it, and a flat
// float parameter map; evaluation dispatches to exactly one function
// and flattens its result into an ordered metric list. This is the
// shared boundary used by the API sweep endpoint and the CLI.
package scenario

import (
	"fmt"
	"math/rand"
	"time"

	"econlab/internal/auction"
	"econlab/internal/competition"
	"econlab/internal/differentiation"
	"econlab/internal/econ"
	"econlab/internal/game"
	"econlab/internal/market"
	"econlab/internal/network"
)

// Module names, stable across API and CSV output.
const (
	ModuleMarket          = "market"
	ModuleCompetition     = "competition"
	ModuleDifferentiation = "differentiation"
	ModuleAuction         = "auction"
	ModuleGame            = "game"
	ModuleNetwork         = "network"
)

// Metric is one named value of an evaluation result. Order is part of
// the contract: CSV columns and chart series follow it.
type Metric struct {
	Name  string
	Value float64
}

// Scenario is a flat, fully serializable description of one evaluation.
type Scenario struct {
	Module    string
	Operation string
	// Params holds every numeric input by name; missing keys fall back
	// to per-operation defaults.
	Params map[string]float64
	// Seed drives the random source for sampling operations. Zero means
	// non-reproducible (time-seeded).
	Seed int64
}

func (s Scenario) param(name string, def float64) float64 {
	if v, ok := s.Params[name]; ok {
		return v
	}
	return def
}

func (s Scenario) rng() *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Evaluate dispatches the scenario to its module's operation and
// returns the flattened metrics.
func Evaluate(s Scenario) ([]Metric, error) {
	switch s.Module {
	case ModuleMarket:
		return evalMarket(s)
	case ModuleCompetition:
		return evalCompetition(s)
	case ModuleDifferentiation:
		return evalDifferentiation(s)
	case ModuleAuction:
		return evalAuction(s)
	case ModuleGame:
		return evalGame(s)
	case ModuleNetwork:
		return evalNetwork(s)
	default:
		return nil, fmt.Errorf("unknown module %q: %w", s.Module, econ.ErrInvalidDomain)
	}
}

func evalMarket(s Scenario) ([]Metric, error) {
	p := market.Params{
		Intercept:    s.param("intercept", 100),
		Slope:        s.param("slope", 1),
		MarginalCost: s.param("marginal_cost", 20),
		Firms:        int(s.param("firms", 3)),
	}

	eq, err := market.Solve(market.Structure(s.Operation), p)
	if err != nil {
		return nil, err
	}
	return marketMetrics(eq), nil
}

func marketMetrics(eq market.Equilibrium) []Metric {
	return []Metric{
		{"price", eq.Price},
		{"quantity", eq.Quantity},
		{"consumer_surplus", eq.ConsumerSurplus},
		{"producer_surplus", eq.ProducerSurplus},
		{"total_surplus", eq.TotalSurplus},
		{"deadweight_loss", eq.DeadweightLoss},
	}
}

func evalCompetition(s Scenario) ([]Metric, error) {
	base := competition.DuopolyParams{
		Intercept:     s.param("intercept", 100),
		Slope:         s.param("slope", 1),
		MarginalCost1: s.param("marginal_cost_1", 10),
		MarginalCost2: s.param("marginal_cost_2", 10),
	}

	var (
		out competition.Outcome
		err error
	)
	switch s.Operation {
	case "bertrand":
		out, err = competition.SolveBertrand(competition.BertrandParams{
			DuopolyParams:    base,
			Substitutability: s.param("substitutability", 0.5),
		})
	case "cournot":
		out, err = competition.SolveCournot(base)
	case "stackelberg":
		out, err = competition.SolveStackelberg(base, competition.Firm(s.param("leader", 1)))
	default:
		return nil, unknownOperation(s)
	}
	if err != nil {
		return nil, err
	}

	return []Metric{
		{"price_1", out.Price1},
		{"price_2", out.Price2},
		{"quantity_1", out.Quantity1},
		{"quantity_2", out.Quantity2},
		{"total_quantity", out.TotalQuantity},
		{"profit_1", out.Profit1},
		{"profit_2", out.Profit2},
		{"consumer_surplus", out.ConsumerSurplus},
	}, nil
}

func evalDifferentiation(s Scenario) ([]Metric, error) {
	switch s.Operation {
	case "hotelling":
		r, err := differentiation.HotellingLinearCity(differentiation.HotellingParams{
			TransportCost: s.param("transport_cost", 1),
			MarginalCost:  s.param("marginal_cost", 10),
			CityLength:    s.param("city_length", 1),
		})
		if err != nil {
			return nil, err
		}
		w := differentiation.HotellingWelfare(r)
		return []Metric{
			{"price_1", r.Price1},
			{"price_2", r.Price2},
			{"market_share_1", r.MarketShare1},
			{"profit_1", r.Profit1},
			{"transport_costs", r.TotalTransportCosts},
			{"total_welfare", w.TotalWelfare},
		}, nil
	case "salop":
		r, err := differentiation.CircularCity(differentiation.SalopParams{
			TransportCost: s.param("transport_cost", 1),
			MarginalCost:  s.param("marginal_cost", 10),
			Firms:         int(s.param("firms", 4)),
		})
		if err != nil {
			return nil, err
		}
		return []Metric{
			{"price", r.Price},
			{"market_share_per_firm", r.MarketSharePerFirm},
			{"profit_per_firm", r.ProfitPerFirm},
			{"total_profit", r.TotalProfit},
		}, nil
	case "vertical":
		r, err := differentiation.Vertical(differentiation.VerticalParams{
			QualityHigh: s.param("quality_high", 2),
			QualityLow:  s.param("quality_low", 1),
			CostHigh:    s.param("cost_high", 0.3),
			CostLow:     s.param("cost_low", 0.1),
		})
		if err != nil {
			return nil, err
		}
		w := differentiation.VerticalWelfare(r)
		return []Metric{
			{"price_high", r.PriceHigh},
			{"price_low", r.PriceLow},
			{"demand_high", r.DemandHigh},
			{"demand_low", r.DemandLow},
			{"profit_high", r.ProfitHigh},
			{"profit_low", r.ProfitLow},
			{"quality_premium", r.QualityPremium},
			{"total_welfare", w.TotalWelfare},
		}, nil
	default:
		return nil, unknownOperation(s)
	}
}

// drawnValuations samples one uniform valuation vector for the
// mechanism operations, so bidder counts stay sweepable.
func drawnValuations(s Scenario) auction.Valuations {
	bidders := int(s.param("bidders", 5))
	maxVal := s.param("max_valuation", 100)
	rng := s.rng()

	vals := make(auction.Valuations, bidders)
	for i := range vals {
		vals[i] = rng.Float64() * maxVal
	}
	return vals
}

func evalAuction(s Scenario) ([]Metric, error) {
	reserve := s.param("reserve", 0)

	var (
		res auction.Result
		err error
	)
	switch s.Operation {
	case "first_price":
		res, err = auction.RunFirstPrice(drawnValuations(s), reserve)
	case "second_price":
		res, err = auction.RunSecondPrice(drawnValuations(s), reserve)
	case "english":
		res, err = auction.RunEnglish(drawnValuations(s), reserve, s.param("increment", 1))
	case "dutch":
		vals := drawnValuations(s)
		start := s.param("starting_price", s.param("max_valuation", 100)+10)
		res, err = auction.RunDutch(vals, start, s.param("decrement", 1))
	case "revenue_equivalence":
		re, err := auction.RevenueEquivalence(
			auction.Uniform,
			int(s.param("trials", 1000)),
			int(s.param("bidders", 5)),
			s.rng(),
		)
		if err != nil {
			return nil, err
		}
		return []Metric{
			{"mean_revenue_first_price", re.MeanRevenueFirstPrice},
			{"mean_revenue_second_price", re.MeanRevenueSecondPrice},
			{"std_revenue_first_price", re.StdRevenueFirstPrice},
			{"std_revenue_second_price", re.StdRevenueSecondPrice},
			{"revenue_difference", re.RevenueDifference},
		}, nil
	case "optimal_reserve":
		or, err := auction.OptimalReserve(drawnValuations(s), s.param("seller_cost", 0), s.rng())
		if err != nil {
			return nil, err
		}
		return []Metric{
			{"theoretical_optimal", or.TheoreticalOptimal},
			{"empirical_optimal", or.EmpiricalOptimal},
			{"max_expected_revenue", or.MaxExpectedRevenue},
		}, nil
	default:
		return nil, unknownOperation(s)
	}
	if err != nil {
		return nil, err
	}

	return []Metric{
		{"winner", float64(res.Winner)},
		{"winning_bid", res.WinningBid},
		{"payment", res.Payment},
		{"revenue", res.Revenue},
		{"winner_surplus", res.WinnerSurplus},
		{"efficiency", res.Efficiency},
	}, nil
}

// Strategy codes for the repeated-game operation; the parameter map
// carries only numbers.
var repeatedStrategies = map[int]game.Strategy{
	0: game.TitForTat,
	1: game.AlwaysCooperate,
	2: game.AlwaysDefect,
}

func evalGame(s Scenario) ([]Metric, error) {
	switch s.Operation {
	case "prisoners_dilemma":
		payoffs := game.PayoffMatrix{
			{s.param("reward", 3), s.param("sucker", 0)},
			{s.param("temptation", 5), s.param("punishment", 1)},
		}
		eq, err := game.FindNashEquilibria(payoffs, payoffs)
		if err != nil {
			return nil, err
		}
		dom, err := game.FindDominantStrategy(payoffs, game.RowPlayer)
		if err != nil {
			return nil, err
		}
		return []Metric{
			{"equilibrium_count", float64(len(eq))},
			{"dominant_strategy", float64(dom.Dominant)},
		}, nil
	case "repeated":
		payoffs := game.PayoffMatrix{
			{s.param("reward", 3), s.param("sucker", 0)},
			{s.param("temptation", 5), s.param("punishment", 1)},
		}
		s1, ok1 := repeatedStrategies[int(s.param("strategy_1", 0))]
		s2, ok2 := repeatedStrategies[int(s.param("strategy_2", 2))]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("strategy codes must be 0..2: %w", econ.ErrInvalidDomain)
		}
		r, err := game.Repeated(payoffs, int(s.param("rounds", 10)), s1, s2)
		if err != nil {
			return nil, err
		}
		return []Metric{
			{"total_payoff_1", r.TotalPayoff1},
			{"total_payoff_2", r.TotalPayoff2},
			{"cooperation_rate_1", r.CooperationRate1},
			{"cooperation_rate_2", r.CooperationRate2},
		}, nil
	case "pricing":
		r, err := game.PricingGame(game.PayoffMatrix{
			{s.param("both_high", 10), s.param("undercut_against", 2)},
			{s.param("undercut", 15), s.param("both_low", 5)},
		})
		if err != nil {
			return nil, err
		}
		return []Metric{
			{"equilibrium_count", float64(len(r.Equilibria))},
			{"dominant_strategy", float64(r.Dominant)},
		}, nil
	case "entry":
		r, err := game.EntryGame(
			s.param("entry_cost", 50),
			s.param("monopoly_profit", 100),
			s.param("duopoly_profit", 30),
		)
		if err != nil {
			return nil, err
		}
		return []Metric{
			{"equilibrium_count", float64(len(r.Equilibria))},
			{"monopoly_net", r.MonopolyProfit - r.EntryCost},
			{"duopoly_net", r.DuopolyProfit - r.EntryCost},
		}, nil
	case "investment":
		d, err := game.InvestmentGame(
			s.param("investment_cost", 100),
			s.param("high_demand_prob", 0.6),
			s.param("high_demand_profit", 500),
			s.param("low_demand_profit", 50),
			s.param("no_invest_profit", 150),
		)
		if err != nil {
			return nil, err
		}
		invest := 0.0
		if d.Invest {
			invest = 1
		}
		return []Metric{
			{"invest_expected_payoff", d.InvestExpectedPayoff},
			{"no_invest_payoff", d.NoInvestPayoff},
			{"invest", invest},
		}, nil
	default:
		return nil, unknownOperation(s)
	}
}

func evalNetwork(s Scenario) ([]Metric, error) {
	switch s.Operation {
	case "platform_competition":
		r, err := network.PlatformCompetition(network.PlatformParams{
			NetworkStrength: s.param("network_strength", 0.5),
			Quality1:        s.param("quality_1", 10),
			Quality2:        s.param("quality_2", 10),
			TotalUsers:      s.param("total_users", 1000),
		})
		if err != nil {
			return nil, err
		}
		return []Metric{
			{"market_share_1", r.MarketShare1},
			{"market_share_2", r.MarketShare2},
			{"users_1", r.Users1},
			{"users_2", r.Users2},
			{"utility_1", r.Utility1},
			{"utility_2", r.Utility2},
		}, nil
	case "adoption":
		r, err := network.AdoptionDynamics(network.AdoptionParams{
			AdoptionThreshold: s.param("adoption_threshold", 0.1),
			NetworkValue:      s.param("network_value", 5),
			Population:        s.param("population", 1000),
			Periods:           int(s.param("periods", 50)),
		})
		if err != nil {
			return nil, err
		}
		return []Metric{
			{"final_adoption", r.FinalAdoption},
			{"critical_mass_time", float64(r.CriticalMassTime)},
			{"periods_simulated", float64(len(r.History))},
		}, nil
	case "two_sided":
		r, err := network.TwoSidedMarket(network.TwoSidedParams{
			CrossNetworkEffect: s.param("cross_network_effect", 0.3),
			PlatformCost:       s.param("platform_cost", 0),
			MaxUsersPerSide:    s.param("max_users_per_side", 1000),
		})
		if err != nil {
			return nil, err
		}
		subsidized := 0.0
		if r.Subsidized {
			subsidized = 1
		}
		return []Metric{
			{"users_a", r.UsersA},
			{"users_b", r.UsersB},
			{"price_a", r.PriceA},
			{"price_b", r.PriceB},
			{"revenue", r.Revenue},
			{"profit", r.Profit},
			{"subsidized", subsidized},
		}, nil
	case "pricing":
		r, err := network.PricingStrategy(
			s.param("network_strength", 0.5),
			s.param("marginal_cost", 10),
			s.param("competition_intensity", 0.5),
		)
		if err != nil {
			return nil, err
		}
		return []Metric{
			{"optimal_price", r.OptimalPrice},
			{"expected_market_share", r.ExpectedMarketShare},
			{"expected_users", r.ExpectedUsers},
			{"expected_profit", r.ExpectedProfit},
		}, nil
	case "externality":
		w, err := network.ExternalityAnalysis(
			s.param("network_strength", 0.5),
			s.param("adoption_rate", 0.4),
			s.param("population", 1000),
		)
		if err != nil {
			return nil, err
		}
		return []Metric{
			{"current_adoption", w.CurrentAdoption},
			{"optimal_adoption", w.OptimalAdoption},
			{"network_value_per_user", w.NetworkValuePerUser},
			{"deadweight_loss", w.DeadweightLoss},
		}, nil
	default:
		return nil, unknownOperation(s)
	}
}

func unknownOperation(s Scenario) error {
	return fmt.Errorf("module %q has no operation %q: %w", s.Module, s.Operation, econ.ErrInvalidDomain)
}
