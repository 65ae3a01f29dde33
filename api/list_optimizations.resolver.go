package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) listOptimizations(c *gin.Context) {
	ctx := c.Request.Context()

	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	optimizations, err := m.OptimizationService.GetHistory(ctx, portfolioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []optimizationResponse{}
	for _, o := range optimizations {
		out = append(out, optimizationToResponse(o))
	}

	c.JSON(200, out)
}
