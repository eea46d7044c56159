package service

import (
	"context"

	"wallet_inspector/internal/app/port"
	"wallet_inspector/internal/domain/entity"
	"wallet_inspector/internal/pkg/metrics"
)

// NFTServiceImpl implements port.NFTService.
type NFTServiceImpl struct {
	provider port.ProviderClient
	logger   port.Logger
}

// NewNFTService creates a new instance of NFTServiceImpl.
func NewNFTService(provider port.ProviderClient, l port.Logger) *NFTServiceImpl {
	return &NFTServiceImpl{provider: provider, logger: l}
}

// GetWalletNFTs lists the collectibles owned by the wallet in provider order.
// A collectible without media fails the query with *entity.MissingMediaError.
func (s *NFTServiceImpl) GetWalletNFTs(ctx context.Context, network entity.NetworkID, walletAddress string) ([]entity.OwnedAsset, error) {
	s.logger.Debug("Fetching NFTs", "wallet", walletAddress, "network", network)

	list, err := s.provider.GetNFTs(ctx, network, walletAddress)
	if err != nil {
		s.logger.Error("Failed to list NFTs", "wallet", walletAddress, "network", network, "error", err)
		metrics.AggregationFailures.WithLabelValues("nfts").Inc()
		return nil, err
	}

	assets := make([]entity.OwnedAsset, 0, len(list.OwnedNFTs))
	for i, nft := range list.OwnedNFTs {
		asset, err := ToOwnedAsset(i, nft)
		if err != nil {
			s.logger.Warn("NFT has no media", "wallet", walletAddress, "network", network, "index", i, "title", nft.Title)
			metrics.AggregationFailures.WithLabelValues("nfts").Inc()
			return nil, err
		}
		assets = append(assets, asset)
	}

	s.logger.Info("NFTs listed", "wallet", walletAddress, "network", network, "count", len(assets))
	return assets, nil
}

// ToOwnedAsset reshapes the provider object at position index.
func ToOwnedAsset(index int, nft entity.NFTObject) (entity.OwnedAsset, error) {
	if len(nft.Media) == 0 {
		return entity.OwnedAsset{}, &entity.MissingMediaError{Index: index, Title: nft.Title}
	}
	return entity.OwnedAsset{
		Title:          nft.Title,
		Description:    nft.Description,
		ThumbnailImage: nft.Media[0].Thumbnail,
		EditionID:      nft.Metadata.Edition,
		MintDate:       nft.Metadata.Date,
	}, nil
}
