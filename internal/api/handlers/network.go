package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"econlab/internal/api/models"
	"econlab/internal/chart"
	"econlab/internal/network"
)

// NetworkHandler serves the network-effect analysis endpoints.
type NetworkHandler struct{}

func NewNetworkHandler() *NetworkHandler {
	return &NetworkHandler{}
}

// Tipping handles POST /api/v1/network/tipping
func (h *NetworkHandler) Tipping(c *gin.Context) {
	var req models.TippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	points, err := network.TippingAnalysis(req.Strengths, req.Quality1, req.Quality2)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}

// AdoptionChart handles POST /api/v1/network/adoption-chart
func (h *NetworkHandler) AdoptionChart(c *gin.Context) {
	var req models.AdoptionChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	res, err := network.AdoptionDynamics(network.AdoptionParams{
		AdoptionThreshold: req.AdoptionThreshold,
		NetworkValue:      req.NetworkValue,
		Population:        req.Population,
		Periods:           req.Periods,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"final_adoption":     res.FinalAdoption,
		"critical_mass_time": res.CriticalMassTime,
		"series":             chart.AdoptionTrajectory(res),
	})
}
