package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealmax/mealmax/internal/battle"
	"github.com/mealmax/mealmax/internal/kitchen"
	"github.com/mealmax/mealmax/internal/random"
)

// writeError maps a domain error to an HTTP status and JSON body.
//
// Catalog codes map straight onto statuses (invalid argument 400, conflict
// 409, not found 404, gone 410, unavailable 503). Pool errors are state
// conflicts (409) and a dead randomness source is 503.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL"

	var ce *kitchen.Error
	switch {
	case errors.As(err, &ce):
		code = string(ce.Code)
		switch ce.Code {
		case kitchen.CodeInvalidArgument:
			status = http.StatusBadRequest
		case kitchen.CodeConflict:
			status = http.StatusConflict
		case kitchen.CodeNotFound:
			status = http.StatusNotFound
		case kitchen.CodeGone:
			status = http.StatusGone
		case kitchen.CodeUnavailable:
			status = http.StatusServiceUnavailable
		}
	case errors.Is(err, battle.ErrCombatantsFull):
		status, code = http.StatusConflict, "FULL"
	case errors.Is(err, battle.ErrNotEnoughCombatants):
		status, code = http.StatusConflict, "INVALID_STATE"
	case errors.Is(err, battle.ErrUnknownDifficulty):
		status, code = http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, random.ErrUnavailable):
		status, code = http.StatusServiceUnavailable, "UNAVAILABLE"
	}

	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": err.Error(),
		},
	})
}
