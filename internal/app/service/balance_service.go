package service

import (
	"context"
	"errors"
	"fmt"

	"wallet_inspector/internal/app/port"
	"wallet_inspector/internal/domain/entity"
	"wallet_inspector/internal/pkg/metrics"
	"wallet_inspector/internal/pkg/utils"

	"golang.org/x/sync/errgroup"
)

const defaultMaxConcurrentLookups = 8

// BalanceServiceImpl implements port.BalanceService.
type BalanceServiceImpl struct {
	provider             port.ProviderClient
	logger               port.Logger
	maxConcurrentLookups int
}

// NewBalanceService creates a new instance of BalanceServiceImpl.
// maxConcurrentLookups bounds the metadata fan-out; values below 1 mean the default.
func NewBalanceService(provider port.ProviderClient, l port.Logger, maxConcurrentLookups int) *BalanceServiceImpl {
	if maxConcurrentLookups <= 0 {
		maxConcurrentLookups = defaultMaxConcurrentLookups
	}
	return &BalanceServiceImpl{
		provider:             provider,
		logger:               l,
		maxConcurrentLookups: maxConcurrentLookups,
	}
}

// GetWalletBalances lists the wallet's token holdings, fetches the metadata of every held
// token and converts each raw balance into a decimal amount. The output keeps the order
// of the provider listing. Any failed lookup aborts the whole query.
func (s *BalanceServiceImpl) GetWalletBalances(
	ctx context.Context,
	network entity.NetworkID,
	walletAddress string,
) ([]entity.NormalizedBalance, error) {
	s.logger.Debug("Fetching token balances", "wallet", walletAddress, "network", network)

	listing, err := s.provider.GetTokenBalances(ctx, network, walletAddress)
	if err != nil {
		s.logger.Error("Failed to list token balances", "wallet", walletAddress, "network", network, "error", err)
		metrics.AggregationFailures.WithLabelValues("balances").Inc()
		return nil, err
	}

	raw := listing.TokenBalances
	normalized := make([]entity.NormalizedBalance, len(raw))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrentLookups)

	for i, rb := range raw {
		g.Go(func() error {
			metrics.MetadataLookups.Inc()
			metadata, err := s.provider.GetTokenMetadata(gctx, network, rb.ContractAddress)
			if err != nil {
				return err
			}
			nb, err := NormalizeBalance(rb, metadata)
			if err != nil {
				return err
			}
			// slot i is written by this goroutine only
			normalized[i] = nb
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("Token balance aggregation aborted", "wallet", walletAddress, "network", network,
			"token_count", len(raw), "error", err)
		metrics.AggregationFailures.WithLabelValues("balances").Inc()
		return nil, err
	}

	s.logger.Info("Token balances aggregated", "wallet", walletAddress, "network", network, "token_count", len(normalized))
	return normalized, nil
}

// NormalizeBalance merges one raw balance with its token metadata.
// The amount is balance / 10^decimals rounded half-to-even to two places; a missing or
// empty logo becomes entity.MissingLogo.
func NormalizeBalance(rb entity.RawBalance, metadata *entity.AssetMetadata) (entity.NormalizedBalance, error) {
	if metadata == nil || metadata.Decimals == nil {
		return entity.NormalizedBalance{}, &entity.DecodeError{
			Endpoint: "tokenMetadata",
			Params:   rb.ContractAddress,
			Err:      errors.New("token metadata has no decimals"),
		}
	}

	amount, err := utils.ParseHexQuantity(rb.TokenBalance)
	if err != nil {
		return entity.NormalizedBalance{}, &entity.DecodeError{
			Endpoint: "tokenBalances",
			Params:   rb.ContractAddress,
			Body:     rb.TokenBalance,
			Err:      err,
		}
	}

	value, err := utils.ToDecimalAmount(amount, *metadata.Decimals)
	if err != nil {
		return entity.NormalizedBalance{}, &entity.DecodeError{
			Endpoint: "tokenMetadata",
			Params:   rb.ContractAddress,
			Err:      fmt.Errorf("invalid decimals: %w", err),
		}
	}

	logo := entity.MissingLogo
	if metadata.Logo != nil && *metadata.Logo != "" {
		logo = *metadata.Logo
	}

	return entity.NormalizedBalance{
		Balance: value.InexactFloat64(),
		Name:    metadata.Name,
		Symbol:  metadata.Symbol,
		Logo:    logo,
	}, nil
}
