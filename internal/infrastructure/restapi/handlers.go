package restapi

import (
	"context"
	"errors"
	"net/http"

	"wallet_inspector/internal/app/port"
	"wallet_inspector/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WalletHandler serves the per-wallet read endpoints.
type WalletHandler struct {
	balances  port.BalanceService
	nfts      port.NFTService
	transfers port.TransactionService
	logger    *zap.Logger
}

// NewWalletHandler creates a new instance of WalletHandler.
func NewWalletHandler(
	balances port.BalanceService,
	nfts port.NFTService,
	transfers port.TransactionService,
	logger *zap.Logger,
) *WalletHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WalletHandler{
		balances:  balances,
		nfts:      nfts,
		transfers: transfers,
		logger:    logger.Named("WalletHandler"),
	}
}

// GetTokens handles GET /tokens/:walletAddress.
func (h *WalletHandler) GetTokens(c *gin.Context) {
	serveWalletQuery(h, c, "tokens", h.balances.GetWalletBalances)
}

// GetNFTs handles GET /nfts/:walletAddress.
func (h *WalletHandler) GetNFTs(c *gin.Context) {
	serveWalletQuery(h, c, "nfts", h.nfts.GetWalletNFTs)
}

// GetTransactions handles GET /transactions/:walletAddress.
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	serveWalletQuery(h, c, "transactions", h.transfers.GetWalletTransfers)
}

func serveWalletQuery[T any](h *WalletHandler, c *gin.Context, endpoint string, query func(context.Context, entity.NetworkID, string) ([]T, error)) {
	walletAddress := c.Param("walletAddress")
	if !common.IsHexAddress(walletAddress) {
		writeJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid wallet address"})
		return
	}

	network, recognised := entity.ParseNetworkID(c.Query("network"))
	if !recognised && c.Query("network") != "" {
		h.logger.Debug("Unknown network requested, using primary",
			zap.String("requested", c.Query("network")), zap.String("network", string(network)))
	}

	result, err := query(c.Request.Context(), network, walletAddress)
	if err != nil {
		status, message := errorStatus(err)
		h.logger.Error("Wallet query failed",
			zap.String("endpoint", endpoint),
			zap.String("wallet", walletAddress),
			zap.String("network", string(network)),
			zap.Int("status", status),
			zap.Error(err))
		_ = c.Error(err)
		writeJSON(c, status, ErrorResponse{Error: message})
		return
	}
	if result == nil {
		result = []T{}
	}
	writeJSON(c, http.StatusOK, result)
}

// errorStatus maps a query failure to an HTTP status and a message safe to return to callers.
func errorStatus(err error) (int, string) {
	if entity.IsTimeout(err) {
		return http.StatusGatewayTimeout, "upstream provider timed out"
	}
	var transportErr *entity.TransportError
	if errors.As(err, &transportErr) {
		return http.StatusBadGateway, "upstream provider unavailable"
	}
	return http.StatusInternalServerError, "internal server error"
}

func writeJSON(c *gin.Context, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", body)
}
