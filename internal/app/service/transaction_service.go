package service

import (
	"context"

	"wallet_inspector/internal/app/port"
	"wallet_inspector/internal/domain/entity"
	"wallet_inspector/internal/pkg/metrics"
)

// Defaults of the transfer history request.
const (
	DefaultTransfersFromBlock = "0xF1EB1D"
	DefaultTransfersMaxCount  = "0x3e8"
)

// TransferQuery holds the tunable parts of the transfer history request.
type TransferQuery struct {
	FromBlock string
	MaxCount  string
}

// TransactionServiceImpl implements port.TransactionService.
type TransactionServiceImpl struct {
	provider port.ProviderClient
	logger   port.Logger
	query    TransferQuery
}

// NewTransactionService creates a new instance of TransactionServiceImpl.
// Empty query fields take the package defaults.
func NewTransactionService(provider port.ProviderClient, l port.Logger, query TransferQuery) *TransactionServiceImpl {
	if query.FromBlock == "" {
		query.FromBlock = DefaultTransfersFromBlock
	}
	if query.MaxCount == "" {
		query.MaxCount = DefaultTransfersMaxCount
	}
	return &TransactionServiceImpl{provider: provider, logger: l, query: query}
}

// BuildTransferRequest returns the history request sent for walletAddress: every transfer
// category, zero-value transfers excluded, newest first, a single page.
func (s *TransactionServiceImpl) BuildTransferRequest(walletAddress string) entity.TransferRequest {
	categories := make([]string, len(entity.AllTransferCategories))
	copy(categories, entity.AllTransferCategories)

	return entity.TransferRequest{
		FromAddress:      walletAddress,
		FromBlock:        s.query.FromBlock,
		ToBlock:          "latest",
		Category:         categories,
		WithMetadata:     false,
		ExcludeZeroValue: true,
		MaxCount:         s.query.MaxCount,
		Order:            "desc",
	}
}

// GetWalletTransfers returns the wallet's transfers as the provider reports them.
func (s *TransactionServiceImpl) GetWalletTransfers(ctx context.Context, network entity.NetworkID, walletAddress string) ([]entity.Transfer, error) {
	s.logger.Debug("Fetching transfers", "wallet", walletAddress, "network", network, "from_block", s.query.FromBlock)

	list, err := s.provider.GetAssetTransfers(ctx, network, s.BuildTransferRequest(walletAddress))
	if err != nil {
		s.logger.Error("Failed to fetch transfers", "wallet", walletAddress, "network", network, "error", err)
		metrics.AggregationFailures.WithLabelValues("transfers").Inc()
		return nil, err
	}

	transfers := make([]entity.Transfer, 0, len(list.Transfers))
	transfers = append(transfers, list.Transfers...)

	s.logger.Info("Transfers fetched", "wallet", walletAddress, "network", network, "count", len(transfers))
	return transfers, nil
}
