package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) explainOptimization(c *gin.Context) {
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

	explanation, err := m.GptRepository.ExplainRecommendations(ctx, detail.Recommendations)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"explanation": explanation,
	})
}
