package scenario

// ParamInfo documents one numeric parameter of an operation, including
// the slider bounds the UI uses for it.
type ParamInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Default     float64 `json:"default"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
}

// OperationInfo documents one operation of a module.
type OperationInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []ParamInfo `json:"params"`
}

// ModuleInfo documents one module family.
type ModuleInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Operations  []OperationInfo `json:"operations"`
}

// Catalog lists every module and operation Evaluate accepts, with
// parameter defaults and bounds. The API catalog endpoint and the CLI
// usage text both serve from this.
func Catalog() []ModuleInfo {
	demand := []ParamInfo{
		{Name: "intercept", Description: "Demand intercept a", Default: 100, Min: 1, Max: 1000},
		{Name: "slope", Description: "Demand slope b", Default: 1, Min: 0.01, Max: 10},
		{Name: "marginal_cost", Description: "Constant marginal cost", Default: 20, Min: 0, Max: 500},
	}
	duopoly := []ParamInfo{
		{Name: "intercept", Description: "Demand intercept a", Default: 100, Min: 1, Max: 1000},
		{Name: "slope", Description: "Demand slope b", Default: 1, Min: 0.01, Max: 10},
		{Name: "marginal_cost_1", Description: "Firm 1 marginal cost", Default: 10, Min: 0, Max: 500},
		{Name: "marginal_cost_2", Description: "Firm 2 marginal cost", Default: 10, Min: 0, Max: 500},
	}
	pdPayoffs := []ParamInfo{
		{Name: "reward", Description: "Mutual cooperation payoff", Default: 3, Min: -100, Max: 100},
		{Name: "sucker", Description: "Cooperate-against-defect payoff", Default: 0, Min: -100, Max: 100},
		{Name: "temptation", Description: "Defect-against-cooperate payoff", Default: 5, Min: -100, Max: 100},
		{Name: "punishment", Description: "Mutual defection payoff", Default: 1, Min: -100, Max: 100},
	}
	biddersParams := []ParamInfo{
		{Name: "bidders", Description: "Number of bidders", Default: 5, Min: 1, Max: 100},
		{Name: "max_valuation", Description: "Upper bound of drawn valuations", Default: 100, Min: 1, Max: 10000},
		{Name: "reserve", Description: "Seller reserve price", Default: 0, Min: 0, Max: 10000},
	}

	return []ModuleInfo{
		{
			Name:        ModuleMarket,
			Description: "Single-market equilibria under four market structures with linear demand.",
			Operations: []OperationInfo{
				{Name: "perfect_competition", Description: "Price-taking equilibrium at price = marginal cost.", Params: demand},
				{Name: "monopoly", Description: "Single-seller equilibrium from MR = MC, with deadweight loss.", Params: demand},
				{Name: "cournot_oligopoly", Description: "Symmetric n-firm quantity competition.", Params: append(demand[:3:3],
					ParamInfo{Name: "firms", Description: "Number of symmetric firms", Default: 3, Min: 1, Max: 50})},
				{Name: "monopolistic_competition", Description: "Differentiated firms pricing a fixed markup over cost.", Params: demand},
			},
		},
		{
			Name:        ModuleCompetition,
			Description: "Duopoly price and quantity competition with asymmetric costs.",
			Operations: []OperationInfo{
				{Name: "bertrand", Description: "Differentiated price competition.", Params: append(duopoly[:4:4],
					ParamInfo{Name: "substitutability", Description: "Product substitutability gamma", Default: 0.5, Min: 0, Max: 1})},
				{Name: "cournot", Description: "Simultaneous quantity competition.", Params: duopoly},
				{Name: "stackelberg", Description: "Sequential quantity competition with a committed leader.", Params: append(duopoly[:4:4],
					ParamInfo{Name: "leader", Description: "Leading firm (1 or 2)", Default: 1, Min: 1, Max: 2})},
			},
		},
		{
			Name:        ModuleDifferentiation,
			Description: "Spatial and quality product differentiation.",
			Operations: []OperationInfo{
				{Name: "hotelling", Description: "Linear city with firms fixed at the quartile locations.", Params: []ParamInfo{
					{Name: "transport_cost", Description: "Transport cost per unit distance", Default: 1, Min: 0.01, Max: 100},
					{Name: "marginal_cost", Description: "Production marginal cost", Default: 10, Min: 0, Max: 500},
					{Name: "city_length", Description: "City length", Default: 1, Min: 0.1, Max: 100},
				}},
				{Name: "salop", Description: "Circular city with n equally spaced firms.", Params: []ParamInfo{
					{Name: "transport_cost", Description: "Transport cost per unit distance", Default: 1, Min: 0.01, Max: 100},
					{Name: "marginal_cost", Description: "Production marginal cost", Default: 10, Min: 0, Max: 500},
					{Name: "firms", Description: "Number of firms on the circle", Default: 4, Min: 1, Max: 50},
				}},
				{Name: "vertical", Description: "Two quality tiers with taste-uniform consumers.", Params: []ParamInfo{
					{Name: "quality_high", Description: "High tier quality", Default: 2, Min: 0, Max: 100},
					{Name: "quality_low", Description: "Low tier quality", Default: 1, Min: 0, Max: 100},
					{Name: "cost_high", Description: "High tier unit cost", Default: 0.3, Min: 0, Max: 100},
					{Name: "cost_low", Description: "Low tier unit cost", Default: 0.1, Min: 0, Max: 100},
				}},
			},
		},
		{
			Name:        ModuleAuction,
			Description: "Single-object auction mechanisms and Monte Carlo experiments.",
			Operations: []OperationInfo{
				{Name: "first_price", Description: "Sealed-bid, winner pays own (shaded) bid.", Params: biddersParams},
				{Name: "second_price", Description: "Sealed-bid Vickrey, truthful and efficient.", Params: biddersParams},
				{Name: "english", Description: "Ascending clock from the reserve.", Params: append(biddersParams[:3:3],
					ParamInfo{Name: "increment", Description: "Clock increment", Default: 1, Min: 0.01, Max: 100})},
				{Name: "dutch", Description: "Descending clock until a bidder accepts.", Params: append(biddersParams[:2:2],
					ParamInfo{Name: "starting_price", Description: "Clock starting price", Default: 110, Min: 1, Max: 20000},
					ParamInfo{Name: "decrement", Description: "Clock decrement", Default: 1, Min: 0.01, Max: 100})},
				{Name: "revenue_equivalence", Description: "Monte Carlo revenue comparison of the sealed-bid formats.", Params: []ParamInfo{
					{Name: "trials", Description: "Monte Carlo trials", Default: 1000, Min: 1, Max: 100000},
					{Name: "bidders", Description: "Number of bidders", Default: 5, Min: 2, Max: 100},
				}},
				{Name: "optimal_reserve", Description: "Grid search for the revenue-maximizing reserve.", Params: []ParamInfo{
					{Name: "bidders", Description: "Number of bidders", Default: 5, Min: 1, Max: 100},
					{Name: "max_valuation", Description: "Upper bound of drawn valuations", Default: 100, Min: 1, Max: 10000},
					{Name: "seller_cost", Description: "Seller's cost of the object", Default: 0, Min: 0, Max: 10000},
				}},
			},
		},
		{
			Name:        ModuleGame,
			Description: "Two-player strategic games.",
			Operations: []OperationInfo{
				{Name: "prisoners_dilemma", Description: "Equilibria and dominance of the 2x2 dilemma.", Params: pdPayoffs},
				{Name: "repeated", Description: "Fixed-horizon repeated play; strategies 0=tit-for-tat, 1=always-cooperate, 2=always-defect.", Params: append(pdPayoffs[:4:4],
					ParamInfo{Name: "rounds", Description: "Number of rounds", Default: 10, Min: 1, Max: 1000},
					ParamInfo{Name: "strategy_1", Description: "Player 1 strategy code", Default: 0, Min: 0, Max: 2},
					ParamInfo{Name: "strategy_2", Description: "Player 2 strategy code", Default: 2, Min: 0, Max: 2})},
				{Name: "pricing", Description: "Symmetric High/Low pricing game; strategy 0 = high price.", Params: []ParamInfo{
					{Name: "both_high", Description: "Payoff when both price high", Default: 10, Min: -1000, Max: 1000},
					{Name: "undercut_against", Description: "Payoff when pricing high against a low pricer", Default: 2, Min: -1000, Max: 1000},
					{Name: "undercut", Description: "Payoff when undercutting a high pricer", Default: 15, Min: -1000, Max: 1000},
					{Name: "both_low", Description: "Payoff when both price low", Default: 5, Min: -1000, Max: 1000},
				}},
				{Name: "entry", Description: "Two-firm market entry game.", Params: []ParamInfo{
					{Name: "entry_cost", Description: "Sunk cost of entering", Default: 50, Min: 0, Max: 10000},
					{Name: "monopoly_profit", Description: "Profit of a lone entrant", Default: 100, Min: 0, Max: 10000},
					{Name: "duopoly_profit", Description: "Per-firm profit when both enter", Default: 30, Min: 0, Max: 10000},
				}},
				{Name: "investment", Description: "Invest-or-not decision under demand uncertainty.", Params: []ParamInfo{
					{Name: "investment_cost", Description: "Upfront investment cost", Default: 100, Min: 0, Max: 10000},
					{Name: "high_demand_prob", Description: "Probability of high demand", Default: 0.6, Min: 0, Max: 1},
					{Name: "high_demand_profit", Description: "Profit under high demand", Default: 500, Min: 0, Max: 100000},
					{Name: "low_demand_profit", Description: "Profit under low demand", Default: 50, Min: 0, Max: 100000},
					{Name: "no_invest_profit", Description: "Status-quo profit", Default: 150, Min: 0, Max: 100000},
				}},
			},
		},
		{
			Name:        ModuleNetwork,
			Description: "Network effects: platform competition, adoption, two-sided markets.",
			Operations: []OperationInfo{
				{Name: "platform_competition", Description: "Two-platform market split with installed-base effects.", Params: []ParamInfo{
					{Name: "network_strength", Description: "Per-user network effect", Default: 0.5, Min: 0, Max: 2},
					{Name: "quality_1", Description: "Platform 1 quality", Default: 10, Min: 0, Max: 1000},
					{Name: "quality_2", Description: "Platform 2 quality", Default: 10, Min: 0, Max: 1000},
					{Name: "total_users", Description: "Market size", Default: 1000, Min: 1, Max: 1000000},
				}},
				{Name: "adoption", Description: "Threshold-switched adoption diffusion.", Params: []ParamInfo{
					{Name: "adoption_threshold", Description: "Utility level where adoption accelerates", Default: 0.1, Min: 0, Max: 10},
					{Name: "network_value", Description: "Utility per unit adoption rate", Default: 5, Min: 0, Max: 100},
					{Name: "population", Description: "Population size", Default: 1000, Min: 1, Max: 1000000},
					{Name: "periods", Description: "Simulation horizon", Default: 50, Min: 1, Max: 1000},
				}},
				{Name: "two_sided", Description: "Cross-side demand under policy price pairs.", Params: []ParamInfo{
					{Name: "cross_network_effect", Description: "Cross-side effect beta", Default: 0.3, Min: 0, Max: 2},
					{Name: "platform_cost", Description: "Platform fixed cost", Default: 0, Min: 0, Max: 100000},
					{Name: "max_users_per_side", Description: "Users per side at full demand", Default: 1000, Min: 1, Max: 1000000},
				}},
				{Name: "pricing", Description: "Regime selection by network strength.", Params: []ParamInfo{
					{Name: "network_strength", Description: "Per-user network effect", Default: 0.5, Min: 0, Max: 2},
					{Name: "marginal_cost", Description: "Marginal cost per user", Default: 10, Min: 0, Max: 1000},
					{Name: "competition_intensity", Description: "Competitive pressure", Default: 0.5, Min: 0.01, Max: 10},
				}},
				{Name: "externality", Description: "Welfare gap from unpriced network externalities.", Params: []ParamInfo{
					{Name: "network_strength", Description: "Per-user network effect", Default: 0.5, Min: 0, Max: 2},
					{Name: "adoption_rate", Description: "Realized adoption rate", Default: 0.4, Min: 0, Max: 1},
					{Name: "population", Description: "Population size", Default: 1000, Min: 1, Max: 1000000},
				}},
			},
		},
	}
}
