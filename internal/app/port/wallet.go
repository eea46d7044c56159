package port

import (
	"context"

	"wallet_inspector/internal/domain/entity"
)

// BalanceService produces the normalized token balances of a wallet.
type BalanceService interface {
	GetWalletBalances(ctx context.Context, network entity.NetworkID, walletAddress string) ([]entity.NormalizedBalance, error)
}

// NFTService produces the collectibles owned by a wallet.
type NFTService interface {
	GetWalletNFTs(ctx context.Context, network entity.NetworkID, walletAddress string) ([]entity.OwnedAsset, error)
}

// TransactionService produces the transfer history of a wallet.
type TransactionService interface {
	GetWalletTransfers(ctx context.Context, network entity.NetworkID, walletAddress string) ([]entity.Transfer, error)
}
