package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"econlab/internal/api/models"
	"econlab/internal/chart"
	"econlab/internal/market"
)

// MarketHandler serves the market-structure comparison and chart
// endpoints.
type MarketHandler struct{}

func NewMarketHandler() *MarketHandler {
	return &MarketHandler{}
}

// Compare handles POST /api/v1/market/compare
func (h *MarketHandler) Compare(c *gin.Context) {
	var req models.MarketCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	results, err := market.Compare(market.Params{
		Intercept:    req.Intercept,
		Slope:        req.Slope,
		MarginalCost: req.MarginalCost,
		Firms:        req.Firms,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// Diagram handles POST /api/v1/market/diagram
func (h *MarketHandler) Diagram(c *gin.Context) {
	var req models.MarketDiagramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	p := market.Params{
		Intercept:    req.Intercept,
		Slope:        req.Slope,
		MarginalCost: req.MarginalCost,
		Firms:        req.Firms,
	}
	if p.Firms == 0 {
		p.Firms = 3
	}

	eq, err := market.Solve(market.Structure(req.Structure), p)
	if err != nil {
		respondError(c, err)
		return
	}

	series, err := chart.MarketDiagram(p, eq, req.Samples)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ChartResponse{Series: series})
}
