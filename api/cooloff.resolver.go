package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) getCoolOff(c *gin.Context) {
	ctx := c.Request.Context()

	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	remaining, err := m.OptimizationService.GetRemainingCoolOff(ctx, portfolioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"coolingOff":       remaining > 0,
		"remainingSeconds": int(remaining.Seconds()),
	})
}
