package handlers

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"econlab/internal/api/models"
	"econlab/internal/econ"
)

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	})
}

// respondError maps model errors onto the error envelope. All domain
// errors are client mistakes; anything else is unexpected.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, econ.ErrNoBidders):
		badRequest(c, "NO_BIDDERS", err)
	case errors.Is(err, econ.ErrMalformedMatrix):
		badRequest(c, "MALFORMED_MATRIX", err)
	case errors.Is(err, econ.ErrInvalidDomain):
		badRequest(c, "INVALID_DOMAIN", err)
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "EVALUATION_ERROR", Message: err.Error()},
		})
	}
}

// newRNG builds the random source for one request. Zero means
// non-reproducible.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
