package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) applyOptimization(c *gin.Context) {
	ctx := c.Request.Context()

	optimizationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	optimization, err := m.OptimizationService.Apply(ctx, optimizationID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, optimizationToResponse(*optimization))
}
