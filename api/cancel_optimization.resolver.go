package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) cancelOptimization(c *gin.Context) {
	ctx := c.Request.Context()

	optimizationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	optimization, err := m.OptimizationService.Cancel(ctx, optimizationID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, optimizationToResponse(*optimization))
}
