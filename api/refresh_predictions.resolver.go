package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type refreshPredictionsRequest struct {
	Symbols []string `json:"symbols"`
}

// refreshPredictions is the hook the prediction pipeline calls when new
// model output lands. Active optimizations recommending any of the
// refreshed symbols are now stale and get canceled.
func (m ApiHandler) refreshPredictions(c *gin.Context) {
	ctx := c.Request.Context()

	var requestBody refreshPredictionsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if len(requestBody.Symbols) == 0 {
		returnErrorJsonCode(fmt.Errorf("symbols must not be empty"), c, 400)
		return
	}

	canceled, err := m.OptimizationService.InvalidateForSymbols(ctx, requestBody.Symbols)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"canceledOptimizations": canceled,
	})
}
