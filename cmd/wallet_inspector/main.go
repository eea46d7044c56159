package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet_inspector/internal/app/service"
	"wallet_inspector/internal/infrastructure/configloader"
	providerclient "wallet_inspector/internal/infrastructure/network/client"
	"wallet_inspector/internal/infrastructure/restapi"
	"wallet_inspector/internal/pkg/logger"
	"wallet_inspector/internal/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// logrus covers config loading, before the level is known
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	cfgPath := utils.GetEnv("CONFIG_PATH", "config/config.yml")
	cfg, err := configloader.Load(cfgPath)
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.Init(cfg.Logging.Level)
	if err != nil {
		logrus.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	zapLogger.Info("Configuration loaded", zap.String("path", cfgPath), zap.String("log_level", cfg.Logging.Level))

	endpoints := cfg.Endpoints()
	provider := providerclient.NewClient(endpoints, providerclient.Options{
		RequestTimeout:  cfg.Provider.RequestTimeout(),
		RateLimit:       cfg.Provider.RateLimit,
		BurstLimit:      cfg.Provider.BurstLimit,
		MaxConnsPerHost: cfg.Provider.MaxConnsPerHost,
	}, zapLogger)
	networks := make([]string, 0)
	for _, id := range endpoints.Networks() {
		networks = append(networks, string(id))
	}
	zapLogger.Info("Provider client initialized",
		zap.Strings("networks", networks),
		zap.Duration("request_timeout", cfg.Provider.RequestTimeout()))

	balanceSvc := service.NewBalanceService(provider, logger.NewSlogAdapter("BalanceService"), cfg.BalanceService.MaxConcurrentLookups)
	nftSvc := service.NewNFTService(provider, logger.NewSlogAdapter("NFTService"))
	transactionSvc := service.NewTransactionService(provider, logger.NewSlogAdapter("TransactionService"), service.TransferQuery{
		FromBlock: cfg.TransferService.FromBlock,
		MaxCount:  cfg.TransferService.MaxCount,
	})

	var limiter *restapi.ClientRateLimiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = restapi.NewClientRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.ClientTTL())
		zapLogger.Info("Per-client rate limiting enabled",
			zap.Float64("requests_per_second", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst))
	}

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	walletHandler := restapi.NewWalletHandler(balanceSvc, nftSvc, transactionSvc, zapLogger)
	router := restapi.SetupRouter(walletHandler, limiter, zapLogger)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info("Server starting", zap.String("addr", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}
