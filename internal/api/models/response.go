package models

import "econlab/internal/chart"

// Metric is one named value of an evaluation result.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SolveResponse is the flat result of one scenario evaluation.
type SolveResponse struct {
	Module    string   `json:"module"`
	Operation string   `json:"operation"`
	Seed      int64    `json:"seed,omitempty"`
	Metrics   []Metric `json:"metrics"`
}

// SweepRow is one swept value with its metric vector, aligned to the
// response's MetricNames.
type SweepRow struct {
	Value   float64   `json:"value"`
	Metrics []float64 `json:"metrics"`
}

// SweepResponse carries the sweep table plus plot-ready series.
type SweepResponse struct {
	Module      string         `json:"module"`
	Operation   string         `json:"operation"`
	Parameter   string         `json:"parameter"`
	MetricNames []string       `json:"metric_names"`
	Rows        []SweepRow     `json:"rows"`
	Series      []chart.Series `json:"series"`
}

// ChartResponse wraps standalone chart endpoints.
type ChartResponse struct {
	Series []chart.Series `json:"series"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
