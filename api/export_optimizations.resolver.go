package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

type optimizationCsvRow struct {
	OptimizationID string  `csv:"optimization_id"`
	Status         string  `csv:"status"`
	Confidence     float64 `csv:"confidence"`
	ModelVersion   string  `csv:"model_version"`
	AppliedAt      string  `csv:"applied_at"`
	CreatedAt      string  `csv:"created_at"`
}

func (m ApiHandler) exportOptimizations(c *gin.Context) {
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

	rows := []optimizationCsvRow{}
	for _, o := range optimizations {
		row := optimizationCsvRow{
			OptimizationID: o.OptimizationID.String(),
			Status:         o.Status.String(),
			Confidence:     o.Confidence,
			ModelVersion:   o.ModelVersion,
			CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339),
		}
		if o.AppliedAt != nil {
			row.AppliedAt = o.AppliedAt.UTC().Format(time.RFC3339)
		}
		rows = append(rows, row)
	}

	csvOut, err := gocsv.MarshalString(&rows)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=optimizations-%s.csv", portfolioID))
	c.Data(200, "text/csv", []byte(csvOut))
}
