package main

import (
	"fmt"
	"os"

	"github.com/nurpe/jobmarket/internal/auth"
	"github.com/nurpe/jobmarket/internal/config"
	"github.com/nurpe/jobmarket/internal/db"
	"github.com/nurpe/jobmarket/internal/excel"
	httphandler "github.com/nurpe/jobmarket/internal/http"
	"github.com/nurpe/jobmarket/internal/http/middleware"
	"github.com/nurpe/jobmarket/internal/logger"
	"github.com/nurpe/jobmarket/internal/pdf"
	"github.com/nurpe/jobmarket/internal/repository"
	"github.com/nurpe/jobmarket/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	profileRepo := repository.NewProfileRepository(database)
	contractRepo := repository.NewContractRepository(database)
	jobRepo := repository.NewJobRepository(database)
	billingRepo := repository.NewBillingRepository(database)
	reportRepo := repository.NewReportRepository(database)

	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}
	excelGenerator := excel.NewGenerator()

	contractService := service.NewContractService(contractRepo, jobRepo)
	billingService := service.NewBillingService(jobRepo, contractRepo, profileRepo, billingRepo, pdfGenerator, cfg)
	reportService := service.NewReportService(reportRepo, excelGenerator)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(contractService, billingService, reportService, log)
	profileMiddleware := middleware.Profile(tokenParser, profileRepo)
	router := httphandler.NewRouter(handler, profileMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting market service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
