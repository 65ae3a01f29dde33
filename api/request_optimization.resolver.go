package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type requestOptimizationRequest struct {
	PortfolioID string `json:"portfolioID"`
}

type optimizationResponse struct {
	OptimizationID string  `json:"optimizationID"`
	PortfolioID    string  `json:"portfolioID"`
	Status         string  `json:"status"`
	Confidence     float64 `json:"confidence"`
	ModelVersion   string  `json:"modelVersion"`
	Explanation    *string `json:"explanation,omitempty"`
	PreMetrics     *string `json:"preMetrics,omitempty"`
	PostMetrics    *string `json:"postMetrics,omitempty"`
	AppliedAt      *string `json:"appliedAt,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

func (m ApiHandler) requestOptimization(c *gin.Context) {
	ctx := c.Request.Context()

	var requestBody requestOptimizationRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	portfolioID, err := uuid.Parse(requestBody.PortfolioID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	optimization, err := m.OptimizationService.RequestOptimization(ctx, userAccountID, portfolioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, optimizationToResponse(*optimization))
}
