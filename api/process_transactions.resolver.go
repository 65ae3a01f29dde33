package api

import (
	"github.com/gin-gonic/gin"
)

type processTransactionsResponse struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// processTransactions runs one processor pass on demand, outside the
// worker's schedule. Useful when an operator wants pending transactions
// settled now instead of on the next tick.
func (m ApiHandler) processTransactions(c *gin.Context) {
	result, err := m.ProcessorService.RunPass(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, processTransactionsResponse{
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		Skipped:   result.Skipped,
	})
}
