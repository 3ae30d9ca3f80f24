package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"econlab/internal/api/models"
	"econlab/internal/differentiation"
)

// DifferentiationHandler serves the welfare-analysis endpoint.
type DifferentiationHandler struct{}

func NewDifferentiationHandler() *DifferentiationHandler {
	return &DifferentiationHandler{}
}

// Welfare handles POST /api/v1/differentiation/welfare
func (h *DifferentiationHandler) Welfare(c *gin.Context) {
	var req models.WelfareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	switch req.Model {
	case "hotelling":
		res, err := differentiation.HotellingLinearCity(differentiation.HotellingParams{
			TransportCost: req.TransportCost,
			MarginalCost:  req.MarginalCost,
			CityLength:    req.CityLength,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"result":  res,
			"welfare": differentiation.HotellingWelfare(res),
		})
	case "vertical":
		res, err := differentiation.Vertical(differentiation.VerticalParams{
			QualityHigh: req.QualityHigh,
			QualityLow:  req.QualityLow,
			CostHigh:    req.CostHigh,
			CostLow:     req.CostLow,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"result":  res,
			"welfare": differentiation.VerticalWelfare(res),
		})
	}
}
