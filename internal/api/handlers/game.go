package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"econlab/internal/api/models"
	"econlab/internal/game"
)

// GameHandler serves the repeated-game endpoint.
type GameHandler struct{}

func NewGameHandler() *GameHandler {
	return &GameHandler{}
}

// Nash handles POST /api/v1/game/nash
func (h *GameHandler) Nash(c *gin.Context) {
	var req models.NashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	p1 := game.PayoffMatrix(req.Payoffs1)
	p2 := p1
	if req.Payoffs2 != nil {
		p2 = game.PayoffMatrix(req.Payoffs2)
	}

	eq, err := game.FindNashEquilibria(p1, p2)
	if err != nil {
		respondError(c, err)
		return
	}
	dom1, err := game.FindDominantStrategy(p1, game.RowPlayer)
	if err != nil {
		respondError(c, err)
		return
	}
	dom2, err := game.FindDominantStrategy(p2, game.RowPlayer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"equilibria": eq,
		"dominant_1": dom1.Dominant,
		"dominant_2": dom2.Dominant,
	})
}

// Repeated handles POST /api/v1/game/repeated
func (h *GameHandler) Repeated(c *gin.Context) {
	var req models.RepeatedGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	res, err := game.Repeated(
		game.PayoffMatrix(req.Payoffs),
		req.Rounds,
		game.Strategy(req.Strategy1),
		game.Strategy(req.Strategy2),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rounds":             res.Rounds,
		"history_player_1":   res.HistoryPlayer1,
		"history_player_2":   res.HistoryPlayer2,
		"total_payoff_1":     res.TotalPayoff1,
		"total_payoff_2":     res.TotalPayoff2,
		"cooperation_rate_1": res.CooperationRate1,
		"cooperation_rate_2": res.CooperationRate2,
	})
}
