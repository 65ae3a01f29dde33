package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type optimizationDetailResponse struct {
	Optimization    optimizationResponse     `json:"optimization"`
	Recommendations []recommendationResponse `json:"recommendations"`
	Transactions    []transactionResponse    `json:"transactions"`
}

func (m ApiHandler) getOptimization(c *gin.Context) {
	ctx := c.Request.Context()

	optimizationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	detail, err := m.OptimizationService.Get(ctx, optimizationID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := optimizationDetailResponse{
		Optimization:    optimizationToResponse(detail.Optimization),
		Recommendations: []recommendationResponse{},
		Transactions:    []transactionResponse{},
	}
	for _, rec := range detail.Recommendations {
		out.Recommendations = append(out.Recommendations, recommendationToResponse(rec))
	}
	for _, t := range detail.Transactions {
		out.Transactions = append(out.Transactions, transactionToResponse(*t))
	}

	c.JSON(200, out)
}
