package main

import (
	"flag"
	"fmt"
	"math/rand"

	"econlab/internal/auction"
	"econlab/internal/competition"
	"econlab/internal/differentiation"
	"econlab/internal/game"
	"econlab/internal/market"
	"econlab/internal/network"
)

// Demo: walk through one worked example per model family to show how
// the packages fit together.
func main() {
	seed := flag.Int64("seed", 42, "Random seed for the auction experiments")
	flag.Parse()

	demoMarket()
	demoCompetition()
	demoDifferentiation()
	demoAuction(*seed)
	demoGame()
	demoNetwork()
}

func demoMarket() {
	fmt.Println("== Market structures (a=100, b=1, mc=20) ==")
	results, err := market.Compare(market.Params{Intercept: 100, Slope: 1, MarginalCost: 20, Firms: 3})
	if err != nil {
		panic(err)
	}
	for _, eq := range results {
		fmt.Printf("  %-26s price=%7.2f  q=%7.2f  cs=%8.2f  dwl=%7.2f\n",
			eq.Structure, eq.Price, eq.Quantity, eq.ConsumerSurplus, eq.DeadweightLoss)
	}
	fmt.Println()
}

func demoCompetition() {
	fmt.Println("== Duopoly competition (a=100, b=1, mc1=mc2=10) ==")
	results, err := competition.Compare(competition.DuopolyParams{
		Intercept: 100, Slope: 1, MarginalCost1: 10, MarginalCost2: 10,
	})
	if err != nil {
		panic(err)
	}
	for _, out := range results {
		label := string(out.Model)
		if out.Leader != 0 {
			label = fmt.Sprintf("%s (leader %d)", out.Model, out.Leader)
		}
		fmt.Printf("  %-22s q1=%6.2f  q2=%6.2f  profit1=%8.2f  profit2=%8.2f\n",
			label, out.Quantity1, out.Quantity2, out.Profit1, out.Profit2)
	}
	fmt.Println()
}

func demoDifferentiation() {
	fmt.Println("== Product differentiation ==")
	hot, err := differentiation.HotellingLinearCity(differentiation.HotellingParams{
		TransportCost: 1, MarginalCost: 10,
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("  hotelling: price=%.2f  profit=%.2f  transport costs=%.4f\n",
		hot.Price1, hot.Profit1, hot.TotalTransportCosts)

	sal, err := differentiation.CircularCity(differentiation.SalopParams{
		TransportCost: 1, MarginalCost: 10, Firms: 4,
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("  salop (n=4): price=%.3f  profit/firm=%.4f\n", sal.Price, sal.ProfitPerFirm)

	vert, err := differentiation.Vertical(differentiation.VerticalParams{
		QualityHigh: 2, QualityLow: 1, CostHigh: 0.3, CostLow: 0.1,
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("  vertical: pH=%.3f pL=%.3f  demand=%.2f/%.2f\n\n",
		vert.PriceHigh, vert.PriceLow, vert.DemandHigh, vert.DemandLow)
}

func demoAuction(seed int64) {
	fmt.Println("== Auctions (valuations 100, 80, 60, 40, 20; reserve 0) ==")
	vals := auction.Valuations{100, 80, 60, 40, 20}
	results, err := auction.CompareMechanisms(vals, 0)
	if err != nil {
		panic(err)
	}
	for _, r := range results {
		fmt.Printf("  %-13s winner=%d  payment=%7.2f  revenue=%7.2f  efficient=%v\n",
			r.Mechanism, r.Winner, r.Payment, r.Revenue, r.Efficiency == 1)
	}

	rng := rand.New(rand.NewSource(seed))
	re, err := auction.RevenueEquivalence(auction.Uniform, 1000, 5, rng)
	if err != nil {
		panic(err)
	}
	fmt.Printf("  revenue equivalence: first=%.2f second=%.2f diff=%.2f\n\n",
		re.MeanRevenueFirstPrice, re.MeanRevenueSecondPrice, re.RevenueDifference)
}

func demoGame() {
	fmt.Println("== Game theory ==")
	pd := game.PayoffMatrix{{3, 0}, {5, 1}}
	eq, err := game.FindNashEquilibria(pd, pd)
	if err != nil {
		panic(err)
	}
	fmt.Printf("  prisoner's dilemma equilibria: %v\n", eq)

	rep, err := game.Repeated(pd, 10, game.TitForTat, game.AlwaysDefect)
	if err != nil {
		panic(err)
	}
	fmt.Printf("  tit-for-tat vs always-defect (10 rounds): payoffs %.0f vs %.0f\n\n",
		rep.TotalPayoff1, rep.TotalPayoff2)
}

func demoNetwork() {
	fmt.Println("== Network effects ==")
	plat, err := network.PlatformCompetition(network.PlatformParams{
		NetworkStrength: 0.5, Quality1: 12, Quality2: 10, TotalUsers: 1000,
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("  platform split: %.3f / %.3f\n", plat.MarketShare1, plat.MarketShare2)

	adopt, err := network.AdoptionDynamics(network.AdoptionParams{
		AdoptionThreshold: 0.1, NetworkValue: 5, Population: 1000,
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("  adoption: final=%.2f  critical mass at period %d\n",
		adopt.FinalAdoption, adopt.CriticalMassTime)

	ts, err := network.TwoSidedMarket(network.TwoSidedParams{CrossNetworkEffect: 0.7, MaxUsersPerSide: 1000})
	if err != nil {
		panic(err)
	}
	fmt.Printf("  two-sided: prices %.2f/%.2f  users %.0f/%.0f  subsidized=%v\n",
		ts.PriceA, ts.PriceB, ts.UsersA, ts.UsersB, ts.Subsidized)
}
