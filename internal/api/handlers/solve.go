package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"econlab/internal/api/models"
	"econlab/internal/chart"
	"econlab/internal/scenario"
	"econlab/internal/sweep"
)

// SolveHandler serves the generic scenario endpoints.
type SolveHandler struct{}

func NewSolveHandler() *SolveHandler {
	return &SolveHandler{}
}

// Solve handles POST /api/v1/solve
func (h *SolveHandler) Solve(c *gin.Context) {
	var req models.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	metrics, err := scenario.Evaluate(scenario.Scenario{
		Module:    req.Module,
		Operation: req.Operation,
		Params:    req.Params,
		Seed:      req.Seed,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]models.Metric, len(metrics))
	for i, m := range metrics {
		out[i] = models.Metric{Name: m.Name, Value: m.Value}
	}
	c.JSON(http.StatusOK, models.SolveResponse{
		Module:    req.Module,
		Operation: req.Operation,
		Seed:      req.Seed,
		Metrics:   out,
	})
}

// Sweep handles POST /api/v1/sweep
func (h *SolveHandler) Sweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	if req.Steps == 0 {
		req.Steps = 20
	}

	res, err := sweep.Run(sweep.Spec{
		Scenario: scenario.Scenario{
			Module:    req.Module,
			Operation: req.Operation,
			Params:    req.Params,
			Seed:      req.Seed,
		},
		Parameter: req.Parameter,
		From:      req.From,
		To:        req.To,
		Steps:     req.Steps,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	series, err := chart.SweepSeries(res, req.Metrics...)
	if err != nil {
		respondError(c, err)
		return
	}

	rows := make([]models.SweepRow, len(res.Rows))
	for i, r := range res.Rows {
		values := make([]float64, len(r.Metrics))
		for j, m := range r.Metrics {
			values[j] = m.Value
		}
		rows[i] = models.SweepRow{Value: r.Value, Metrics: values}
	}

	c.JSON(http.StatusOK, models.SweepResponse{
		Module:      res.Module,
		Operation:   res.Operation,
		Parameter:   res.Parameter,
		MetricNames: res.MetricNames,
		Rows:        rows,
		Series:      series,
	})
}
