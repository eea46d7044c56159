package client

import (
	"context"

	"wallet_inspector/internal/app/port"
	"wallet_inspector/internal/domain/entity"
)

// Provider methods and REST paths.
const (
	MethodGetTokenBalances  = "alchemy_getTokenBalances"
	MethodGetTokenMetadata  = "alchemy_getTokenMetadata"
	MethodGetAssetTransfers = "alchemy_getAssetTransfers"
	PathGetNFTs             = "getNFTs"

	ownerQueryKey = "owner"
)

var _ port.ProviderClient = (*Client)(nil)

// GetTokenBalances implements port.ProviderClient.
func (c *Client) GetTokenBalances(ctx context.Context, network entity.NetworkID, walletAddress string) (*entity.TokenBalances, error) {
	url := c.endpoints.URL(network, entity.FungibleToken)
	balances, err := CallRPC[entity.TokenBalances](ctx, c, url, MethodGetTokenBalances, []string{walletAddress})
	if err != nil {
		return nil, err
	}
	return &balances, nil
}

// GetTokenMetadata implements port.ProviderClient.
func (c *Client) GetTokenMetadata(ctx context.Context, network entity.NetworkID, contractAddress string) (*entity.AssetMetadata, error) {
	url := c.endpoints.URL(network, entity.FungibleToken)
	metadata, err := CallRPC[entity.AssetMetadata](ctx, c, url, MethodGetTokenMetadata, []string{contractAddress})
	if err != nil {
		return nil, err
	}
	return &metadata, nil
}

// GetNFTs implements port.ProviderClient.
func (c *Client) GetNFTs(ctx context.Context, network entity.NetworkID, ownerAddress string) (*entity.OwnedNFTList, error) {
	url := c.endpoints.URL(network, entity.NonFungibleToken)
	nfts, err := CallQuery[entity.OwnedNFTList](ctx, c, url, PathGetNFTs, QueryParam{Key: ownerQueryKey, Value: ownerAddress})
	if err != nil {
		return nil, err
	}
	return &nfts, nil
}

// GetAssetTransfers implements port.ProviderClient.
func (c *Client) GetAssetTransfers(ctx context.Context, network entity.NetworkID, req entity.TransferRequest) (*entity.TransferList, error) {
	url := c.endpoints.URL(network, entity.FungibleToken)
	transfers, err := CallRPC[entity.TransferList](ctx, c, url, MethodGetAssetTransfers, []entity.TransferRequest{req})
	if err != nil {
		return nil, err
	}
	return &transfers, nil
}
