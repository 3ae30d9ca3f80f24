// Package chart builds plot-ready data series from model results. It
// produces points only; all rendering belongs to the consuming UI.
package chart

import (
	"fmt"

	"econlab/internal/auction"
	"econlab/internal/econ"
	"econlab/internal/market"
	"econlab/internal/network"
	"econlab/internal/sweep"
)

// Point is one (x, y) sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is a named polyline or scatter set.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

const defaultSamples = 100

// MarketDiagram builds the demand line, the marginal-cost line and the
// equilibrium point for a linear-demand market. The quantity axis spans
// from zero to the demand intercept's root a/b.
func MarketDiagram(p market.Params, eq market.Equilibrium, samples int) ([]Series, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if samples <= 0 {
		samples = defaultSamples
	}

	qMax := p.Intercept / p.Slope
	demand := make([]Point, 0, samples+1)
	supply := make([]Point, 0, samples+1)
	for i := 0; i <= samples; i++ {
		q := qMax * float64(i) / float64(samples)
		demand = append(demand, Point{X: q, Y: p.Intercept - p.Slope*q})
		supply = append(supply, Point{X: q, Y: p.MarginalCost})
	}

	out := []Series{
		{Name: "demand", Points: demand},
		{Name: "marginal_cost", Points: supply},
	}
	if eq.Demanded {
		out = append(out, Series{
			Name:   "equilibrium",
			Points: []Point{{X: eq.Quantity, Y: eq.Price}},
		})
	}
	return out, nil
}

// AdoptionTrajectory converts a simulated adoption history into a
// period-indexed series, with the 50% critical-mass line alongside.
func AdoptionTrajectory(r network.AdoptionResult) []Series {
	points := make([]Point, len(r.History))
	for i, rate := range r.History {
		points[i] = Point{X: float64(i), Y: rate}
	}

	criticalMass := []Point{
		{X: 0, Y: 0.5},
		{X: float64(len(r.History) - 1), Y: 0.5},
	}

	return []Series{
		{Name: "adoption_rate", Points: points},
		{Name: "critical_mass", Points: criticalMass},
	}
}

// ReserveCurve converts an optimal-reserve search into a revenue curve
// plus the empirical optimum as a single marked point.
func ReserveCurve(r auction.OptimalReserveResult) []Series {
	points := make([]Point, len(r.Curve))
	for i, p := range r.Curve {
		points[i] = Point{X: p.Reserve, Y: p.ExpectedRevenue}
	}

	return []Series{
		{Name: "expected_revenue", Points: points},
		{Name: "optimal_reserve", Points: []Point{{X: r.EmpiricalOptimal, Y: r.MaxExpectedRevenue}}},
	}
}

// SweepSeries extracts one series per metric from a sweep result, with
// the swept parameter on the x axis.
func SweepSeries(res *sweep.Result, metrics ...string) ([]Series, error) {
	if res == nil || len(res.Rows) == 0 {
		return nil, fmt.Errorf("empty sweep result: %w", econ.ErrInvalidDomain)
	}
	if len(metrics) == 0 {
		metrics = res.MetricNames
	}

	index := make(map[string]int, len(res.MetricNames))
	for i, name := range res.MetricNames {
		index[name] = i
	}

	out := make([]Series, 0, len(metrics))
	for _, name := range metrics {
		col, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("sweep has no metric %q: %w", name, econ.ErrInvalidDomain)
		}
		points := make([]Point, len(res.Rows))
		for i, row := range res.Rows {
			points[i] = Point{X: row.Value, Y: row.Metrics[col].Value}
		}
		out = append(out, Series{Name: name, Points: points})
	}
	return out, nil
}
