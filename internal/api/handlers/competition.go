package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"econlab/internal/api/models"
	"econlab/internal/competition"
)

// CompetitionHandler serves the duopoly comparison endpoint.
type CompetitionHandler struct{}

func NewCompetitionHandler() *CompetitionHandler {
	return &CompetitionHandler{}
}

// Compare handles POST /api/v1/competition/compare
func (h *CompetitionHandler) Compare(c *gin.Context) {
	var req models.CompetitionCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	results, err := competition.Compare(competition.DuopolyParams{
		Intercept:     req.Intercept,
		Slope:         req.Slope,
		MarginalCost1: req.MarginalCost1,
		MarginalCost2: req.MarginalCost2,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
