package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"roboadvisor/api"
	"roboadvisor/internal/calculator"
	"roboadvisor/internal/repository"
	"roboadvisor/internal/service"
	"roboadvisor/internal/util"

	_ "github.com/lib/pq"
)

// Dependencies is everything a binary might need: the api handler for the
// http surfaces and the background services for the worker.
type Dependencies struct {
	Db                    *sql.DB
	ApiHandler            *api.ApiHandler
	ProcessorService      service.TransactionProcessorService
	ReconciliationService service.ReconciliationService
	Engine                util.EngineConfig
}

func CloseDependencies(deps *Dependencies) {
	err := deps.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTKey)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	clock := util.NewClock()

	optimizationRepository := repository.NewOptimizationRepository(dbConn)
	recommendationRepository := repository.NewRecommendationRepository(dbConn)
	transactionRepository := repository.NewTransactionRepository(dbConn)
	holdingsRepository := repository.NewHoldingsRepository(dbConn)
	predictionRepository := repository.NewPredictionRepository(
		secrets.Prediction.Endpoint,
		secrets.Prediction.ApiKey,
		secrets.Engine.PredictionTimeout(),
	)
	priceRepository := repository.NewPriceRepository(
		secrets.Alpaca.ApiKey,
		secrets.Alpaca.ApiSecret,
		secrets.Alpaca.Endpoint,
		secrets.Engine.PriceLookupTimeout(),
	)

	metricsService := calculator.NewMetricsService(priceRepository)

	optimizationService := service.NewOptimizationService(
		dbConn,
		optimizationRepository,
		recommendationRepository,
		transactionRepository,
		holdingsRepository,
		predictionRepository,
		metricsService,
		clock,
		secrets.Engine.CoolOff(),
		secrets.Engine.AutoApplyRule,
	)
	processorService := service.NewTransactionProcessorService(
		dbConn,
		transactionRepository,
		holdingsRepository,
		priceRepository,
		clock,
	)
	reconciliationService := service.NewReconciliationService(
		dbConn,
		optimizationRepository,
		transactionRepository,
		clock,
	)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		OptimizationService:   optimizationService,
		ProcessorService:      processorService,
		TransactionRepository: transactionRepository,
		GptRepository:         gptRepository,
		JwtSecret:             secrets.JwtSecret,
	}

	return &Dependencies{
		Db:                    dbConn,
		ApiHandler:            apiHandler,
		ProcessorService:      processorService,
		ReconciliationService: reconciliationService,
		Engine:                secrets.Engine,
	}, nil
}
