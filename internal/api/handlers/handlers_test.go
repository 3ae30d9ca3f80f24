package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econlab/internal/api/models"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	solve := NewSolveHandler()
	r.POST("/api/v1/solve", solve.Solve)
	r.POST("/api/v1/sweep", solve.Sweep)
	r.GET("/api/v1/catalog", NewCatalogHandler().ListModules)
	r.POST("/api/v1/market/compare", NewMarketHandler().Compare)
	r.POST("/api/v1/differentiation/welfare", NewDifferentiationHandler().Welfare)
	r.POST("/api/v1/auction/compare", NewAuctionHandler().Compare)
	gameHandler := NewGameHandler()
	r.POST("/api/v1/game/nash", gameHandler.Nash)
	r.POST("/api/v1/game/repeated", gameHandler.Repeated)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSolveMonopoly(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodPost, "/api/v1/solve", gin.H{
		"module":    "market",
		"operation": "monopoly",
		"params":    gin.H{"intercept": 100, "slope": 1, "marginal_cost": 20},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "monopoly", resp.Operation)
	require.NotEmpty(t, resp.Metrics)
	assert.Equal(t, "price", resp.Metrics[0].Name)
	assert.InDelta(t, 60.0, resp.Metrics[0].Value, 1e-9)
}

func TestSolveRejectsInvalidDomain(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodPost, "/api/v1/solve", gin.H{
		"module":    "market",
		"operation": "monopoly",
		"params":    gin.H{"slope": -1},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_DOMAIN", resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}

func TestSolveRejectsMissingFields(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodPost, "/api/v1/solve", gin.H{"module": "market"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestSweepReturnsRowsAndSeries(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodPost, "/api/v1/sweep", gin.H{
		"module":    "market",
		"operation": "monopoly",
		"params":    gin.H{"intercept": 100, "slope": 1},
		"parameter": "marginal_cost",
		"from":      0,
		"to":        40,
		"steps":     5,
		"metrics":   []string{"price"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SweepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "marginal_cost", resp.Parameter)
	require.Len(t, resp.Rows, 5)
	assert.Len(t, resp.Rows[0].Metrics, len(resp.MetricNames))
	require.Len(t, resp.Series, 1)
	assert.Equal(t, "price", resp.Series[0].Name)
	assert.Len(t, resp.Series[0].Points, 5)
}

func TestCatalogListsAllModules(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodGet, "/api/v1/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Modules []struct {
			Name       string `json:"name"`
			Operations []struct {
				Name string `json:"name"`
			} `json:"operations"`
		} `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Modules, 6)
	for _, m := range resp.Modules {
		assert.NotEmpty(t, m.Operations, m.Name)
	}
}

func TestMarketCompare(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodPost, "/api/v1/market/compare", gin.H{
		"intercept":     100,
		"slope":         1,
		"marginal_cost": 20,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []struct {
			Structure string  `json:"structure"`
			Price     float64 `json:"price"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 4)
	assert.InDelta(t, 20.0, resp.Results[0].Price, 1e-9) // perfect competition prices at cost
}

func TestDifferentiationWelfareHotelling(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodPost, "/api/v1/differentiation/welfare", gin.H{
		"model":          "hotelling",
		"transport_cost": 2,
		"marginal_cost":  5,
		"city_length":    1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result struct {
			Price1 float64 `json:"Price1"`
		} `json:"result"`
		Welfare struct {
			ProducerSurplus float64 `json:"ProducerSurplus"`
		} `json:"welfare"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 7.0, resp.Result.Price1, 1e-9) // mc + t*L
	assert.InDelta(t, 2.0, resp.Welfare.ProducerSurplus, 1e-9)
}

func TestDifferentiationWelfareRejectsUnknownModel(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodPost, "/api/v1/differentiation/welfare", gin.H{
		"model": "horizontal",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGameNashSymmetric(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodPost, "/api/v1/game/nash", gin.H{
		"payoffs_1": [][]float64{{3, 0}, {5, 1}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Equilibria []struct {
			Row int `json:"row"`
			Col int `json:"col"`
		} `json:"equilibria"`
		Dominant1 int `json:"dominant_1"`
		Dominant2 int `json:"dominant_2"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Equilibria, 1)
	assert.Equal(t, 1, resp.Equilibria[0].Row)
	assert.Equal(t, 1, resp.Equilibria[0].Col)
	assert.Equal(t, 1, resp.Dominant1)
	assert.Equal(t, 1, resp.Dominant2)
}

func TestGameNashRejectsMismatchedMatrices(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodPost, "/api/v1/game/nash", gin.H{
		"payoffs_1": [][]float64{{3, 0}, {5, 1}},
		"payoffs_2": [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MALFORMED_MATRIX", resp.Error.Code)
}

func TestGameRepeated(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodPost, "/api/v1/game/repeated", gin.H{
		"payoffs":    [][]float64{{3, 0}, {5, 1}},
		"rounds":     10,
		"strategy_1": "tit_for_tat",
		"strategy_2": "always_defect",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rounds         int     `json:"rounds"`
		History1       []int   `json:"history_player_1"`
		TotalPayoff1   float64 `json:"total_payoff_1"`
		TotalPayoff2   float64 `json:"total_payoff_2"`
		CoopRate1      float64 `json:"cooperation_rate_1"`
		CoopRate2      float64 `json:"cooperation_rate_2"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Rounds)
	require.Len(t, resp.History1, 10)
	// Tit for tat cooperates once, then mirrors defection forever.
	assert.InDelta(t, 0.1, resp.CoopRate1, 1e-9)
	assert.InDelta(t, 0.0, resp.CoopRate2, 1e-9)
	assert.InDelta(t, 9.0, resp.TotalPayoff1, 1e-9)  // 0 + 9*1
	assert.InDelta(t, 14.0, resp.TotalPayoff2, 1e-9) // 5 + 9*1
}

func TestGameRepeatedRejectsRaggedMatrix(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodPost, "/api/v1/game/repeated", gin.H{
		"payoffs":    [][]float64{{3, 0, 2}, {5, 1}},
		"rounds":     5,
		"strategy_1": "tit_for_tat",
		"strategy_2": "tit_for_tat",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MALFORMED_MATRIX", resp.Error.Code)
}

func TestAuctionCompareRejectsEmptyBidders(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodPost, "/api/v1/auction/compare", gin.H{
		"valuations": []float64{},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
