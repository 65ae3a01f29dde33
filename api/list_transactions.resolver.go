package api

import (
	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) listTransactions(c *gin.Context) {
	filter := repository.TransactionListFilter{}

	if portfolioIDStr := c.Query("portfolioID"); portfolioIDStr != "" {
		portfolioID, err := uuid.Parse(portfolioIDStr)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		filter.PortfolioID = &portfolioID
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := model.TransactionStatus(statusStr)
		filter.Status = &status
	}

	transactions, err := m.TransactionRepository.List(filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []transactionResponse{}
	for _, t := range transactions {
		out = append(out, transactionToResponse(*t))
	}

	c.JSON(200, out)
}
