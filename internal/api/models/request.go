package models

// SolveRequest evaluates one scenario: a module, one of its operations
// and a flat parameter map. Missing params take the cataloged defaults.
type SolveRequest struct {
	Module    string             `json:"module" binding:"required"`
	Operation string             `json:"operation" binding:"required"`
	Params    map[string]float64 `json:"params,omitempty"`
	// Seed makes sampling operations reproducible; 0 means time-seeded.
	Seed int64 `json:"seed,omitempty"`
}

// SweepRequest runs a scenario over an evenly spaced parameter range.
type SweepRequest struct {
	SolveRequest
	Parameter string  `json:"parameter" binding:"required"`
	From      float64 `json:"from"`
	To        float64 `json:"to"`
	Steps     int     `json:"steps,omitempty" binding:"omitempty,gte=2,lte=1000"`
	// Metrics optionally narrows the chart series; empty means all.
	Metrics []string `json:"metrics,omitempty"`
}

// MarketCompareRequest evaluates all four market structures on shared
// demand parameters.
type MarketCompareRequest struct {
	Intercept    float64 `json:"intercept" binding:"required,gt=0"`
	Slope        float64 `json:"slope" binding:"required,gt=0"`
	MarginalCost float64 `json:"marginal_cost" binding:"gte=0"`
	Firms        int     `json:"firms,omitempty" binding:"omitempty,gte=1,lte=50"`
}

// MarketDiagramRequest builds the demand/supply chart for one structure.
type MarketDiagramRequest struct {
	Structure    string  `json:"structure" binding:"required"`
	Intercept    float64 `json:"intercept" binding:"required,gt=0"`
	Slope        float64 `json:"slope" binding:"required,gt=0"`
	MarginalCost float64 `json:"marginal_cost" binding:"gte=0"`
	Firms        int     `json:"firms,omitempty" binding:"omitempty,gte=1,lte=50"`
	Samples      int     `json:"samples,omitempty" binding:"omitempty,gte=2,lte=2000"`
}

// CompetitionCompareRequest evaluates Bertrand, Cournot and both
// Stackelberg leaderships on shared duopoly parameters.
type CompetitionCompareRequest struct {
	Intercept     float64 `json:"intercept" binding:"required,gt=0"`
	Slope         float64 `json:"slope" binding:"required,gt=0"`
	MarginalCost1 float64 `json:"marginal_cost_1" binding:"gte=0"`
	MarginalCost2 float64 `json:"marginal_cost_2" binding:"gte=0"`
}

// WelfareRequest analyzes welfare for one differentiation model. Only
// the fields of the chosen model are consulted.
type WelfareRequest struct {
	Model string `json:"model" binding:"required,oneof=hotelling vertical"`

	// Hotelling.
	TransportCost float64 `json:"transport_cost,omitempty" binding:"omitempty,gt=0"`
	MarginalCost  float64 `json:"marginal_cost,omitempty" binding:"omitempty,gte=0"`
	CityLength    float64 `json:"city_length,omitempty" binding:"omitempty,gt=0"`

	// Vertical.
	QualityHigh float64 `json:"quality_high,omitempty" binding:"omitempty,gte=0"`
	QualityLow  float64 `json:"quality_low,omitempty" binding:"omitempty,gte=0"`
	CostHigh    float64 `json:"cost_high,omitempty" binding:"omitempty,gte=0"`
	CostLow     float64 `json:"cost_low,omitempty" binding:"omitempty,gte=0"`
}

// NashRequest searches a two-player game for pure-strategy equilibria
// and dominant strategies. Each matrix is own-action-major; omitting
// payoffs_2 plays the symmetric game on payoffs_1.
type NashRequest struct {
	Payoffs1 [][]float64 `json:"payoffs_1" binding:"required"`
	Payoffs2 [][]float64 `json:"payoffs_2,omitempty"`
}

// RepeatedGameRequest plays a fixed-horizon repeated 2x2 game and
// returns the full action histories.
type RepeatedGameRequest struct {
	Payoffs   [][]float64 `json:"payoffs" binding:"required"`
	Rounds    int         `json:"rounds" binding:"required,gte=1,lte=10000"`
	Strategy1 string      `json:"strategy_1" binding:"required,oneof=tit_for_tat always_cooperate always_defect"`
	Strategy2 string      `json:"strategy_2" binding:"required,oneof=tit_for_tat always_cooperate always_defect"`
}

// AuctionCompareRequest runs all four mechanisms on explicit valuations.
type AuctionCompareRequest struct {
	Valuations []float64 `json:"valuations" binding:"required,min=1,max=100"`
	Reserve    float64   `json:"reserve" binding:"gte=0"`
}

// RevenueEquivalenceRequest runs the sealed-bid Monte Carlo comparison.
type RevenueEquivalenceRequest struct {
	Distribution string `json:"distribution,omitempty" binding:"omitempty,oneof=uniform normal"`
	Trials       int    `json:"trials,omitempty" binding:"omitempty,gte=1,lte=100000"`
	Bidders      int    `json:"bidders,omitempty" binding:"omitempty,gte=2,lte=100"`
	Seed         int64  `json:"seed,omitempty"`
}

// OptimalReserveRequest grid-searches the revenue-maximizing reserve.
type OptimalReserveRequest struct {
	Valuations []float64 `json:"valuations" binding:"required,min=1,max=100"`
	SellerCost float64   `json:"seller_cost" binding:"gte=0"`
	Seed       int64     `json:"seed,omitempty"`
}

// TippingRequest sweeps platform competition over network strengths.
type TippingRequest struct {
	Strengths []float64 `json:"strengths" binding:"required,min=1,max=200"`
	Quality1  float64   `json:"quality_1" binding:"required"`
	Quality2  float64   `json:"quality_2" binding:"required"`
}

// AdoptionChartRequest simulates adoption and returns its trajectory.
type AdoptionChartRequest struct {
	AdoptionThreshold float64 `json:"adoption_threshold" binding:"gte=0"`
	NetworkValue      float64 `json:"network_value" binding:"gte=0"`
	Population        float64 `json:"population" binding:"required,gt=0"`
	Periods           int     `json:"periods,omitempty" binding:"omitempty,gte=1,lte=1000"`
}
