package port

import (
	"context"

	"wallet_inspector/internal/domain/entity"
)

// ProviderClient is the typed view of the blockchain-data provider.
// Every method fails with *entity.TransportError, *entity.ProtocolError or *entity.DecodeError.
type ProviderClient interface {
	// GetTokenBalances lists the raw fungible token holdings of a wallet.
	GetTokenBalances(ctx context.Context, network entity.NetworkID, walletAddress string) (*entity.TokenBalances, error)

	// GetTokenMetadata fetches decimals, name, symbol and logo of one token contract.
	GetTokenMetadata(ctx context.Context, network entity.NetworkID, contractAddress string) (*entity.AssetMetadata, error)

	// GetNFTs lists the collectibles owned by a wallet.
	GetNFTs(ctx context.Context, network entity.NetworkID, ownerAddress string) (*entity.OwnedNFTList, error)

	// GetAssetTransfers returns the first page of transfer history matching req.
	GetAssetTransfers(ctx context.Context, network entity.NetworkID, req entity.TransferRequest) (*entity.TransferList, error)
}
