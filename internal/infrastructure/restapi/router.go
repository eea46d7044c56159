package restapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter wires the wallet endpoints, liveness and metrics into a gin engine.
// limiter may be nil, in which case wallet endpoints are not rate limited.
func SetupRouter(walletHandler *WalletHandler, limiter *ClientRateLimiter, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(cors.New(corsConfig()))
	router.Use(ZapLogger(logger))
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	wallets := router.Group("/")
	if limiter != nil {
		wallets.Use(limiter.Middleware())
	}
	{
		wallets.GET("/tokens/:walletAddress", walletHandler.GetTokens)
		wallets.GET("/nfts/:walletAddress", walletHandler.GetNFTs)
		wallets.GET("/transactions/:walletAddress", walletHandler.GetTransactions)
	}

	return router
}

// corsConfig is fully permissive: any origin, credentials allowed, any request header.
func corsConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{http.MethodPost, http.MethodGet, http.MethodPatch, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.AllowCredentials = true
	return corsConfig
}
