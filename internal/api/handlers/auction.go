package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"econlab/internal/api/models"
	"econlab/internal/auction"
	"econlab/internal/chart"
)

// AuctionHandler serves mechanism comparison and the Monte Carlo
// experiments.
type AuctionHandler struct{}

func NewAuctionHandler() *AuctionHandler {
	return &AuctionHandler{}
}

// Compare handles POST /api/v1/auction/compare
func (h *AuctionHandler) Compare(c *gin.Context) {
	var req models.AuctionCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	results, err := auction.CompareMechanisms(auction.Valuations(req.Valuations), req.Reserve)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// RevenueEquivalence handles POST /api/v1/auction/revenue-equivalence
func (h *AuctionHandler) RevenueEquivalence(c *gin.Context) {
	var req models.RevenueEquivalenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	if req.Distribution == "" {
		req.Distribution = string(auction.Uniform)
	}
	if req.Trials == 0 {
		req.Trials = 1000
	}
	if req.Bidders == 0 {
		req.Bidders = 5
	}

	res, err := auction.RevenueEquivalence(
		auction.Distribution(req.Distribution),
		req.Trials,
		req.Bidders,
		newRNG(req.Seed),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	// The raw per-trial revenues are large and chart-irrelevant.
	res.RevenuesFirstPrice = nil
	res.RevenuesSecondPrice = nil
	c.JSON(http.StatusOK, res)
}

// OptimalReserve handles POST /api/v1/auction/optimal-reserve
func (h *AuctionHandler) OptimalReserve(c *gin.Context) {
	var req models.OptimalReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	res, err := auction.OptimalReserve(auction.Valuations(req.Valuations), req.SellerCost, newRNG(req.Seed))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"theoretical_optimal":  res.TheoreticalOptimal,
		"empirical_optimal":    res.EmpiricalOptimal,
		"max_expected_revenue": res.MaxExpectedRevenue,
		"series":               chart.ReserveCurve(res),
	})
}
