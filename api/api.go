package api

import (
	"database/sql"
	"errors"
	"fmt"

	"roboadvisor/internal/domain"
	"roboadvisor/internal/logger"
	"roboadvisor/internal/repository"
	"roboadvisor/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                    *sql.DB
	OptimizationService   service.OptimizationService
	ProcessorService      service.TransactionProcessorService
	TransactionRepository repository.TransactionRepository
	GptRepository         repository.GptRepository
	JwtSecret             string
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "roboadvisor optimization engine"})
	})

	authed := router.Group("/", m.authMiddleware)
	authed.POST("/optimizations", m.requestOptimization)
	authed.POST("/optimizations/:id/apply", m.applyOptimization)
	authed.POST("/optimizations/:id/cancel", m.cancelOptimization)
	authed.POST("/optimizations/:id/explain", m.explainOptimization)
	authed.GET("/optimizations/:id", m.getOptimization)
	authed.GET("/portfolios/:id/optimizations", m.listOptimizations)
	authed.GET("/portfolios/:id/optimizations/export", m.exportOptimizations)
	authed.GET("/portfolios/:id/coolOff", m.getCoolOff)
	authed.GET("/transactions", m.listTransactions)

	admin := router.Group("/admin", m.authMiddleware, m.adminMiddleware)
	admin.POST("/predictions/refresh", m.refreshPredictions)
	admin.POST("/transactions/process", m.processTransactions)

	return router
}

// returnErrorJson translates lifecycle errors into the http vocabulary.
// Everything unrecognized is a 500.
func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c.Request.Context()).Warnf("request failed: %v", err)

	var coolingOff domain.CoolingOffError
	if errors.As(err, &coolingOff) {
		c.AbortWithStatusJSON(429, gin.H{
			"error":             coolingOff.Error(),
			"retryAfterSeconds": int(coolingOff.Remaining.Seconds()),
		})
		return
	}

	code := 500
	switch {
	case errors.Is(err, domain.ErrAlreadyActive):
		code = 409
	case errors.Is(err, domain.ErrInvalidTransition):
		code = 409
	case errors.Is(err, domain.ErrNotFound):
		code = 404
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		code = 503
	}

	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Warnf("request failed: %v", err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
