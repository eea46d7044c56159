package entity

import "strings"

// NetworkID identifies the chain a wallet query targets.
// It selects the provider URL path segment and the API key.
type NetworkID string

const (
	Ethereum NetworkID = "Ethereum"
	Polygon  NetworkID = "Polygon"

	// PrimaryNetwork is used whenever a network value is not recognised.
	PrimaryNetwork = Ethereum
)

// AssetClass selects the provider endpoint family.
type AssetClass string

const (
	FungibleToken    AssetClass = "token"
	NonFungibleToken AssetClass = "nft"

	// DefaultAssetClass is used whenever an asset class value is not recognised.
	DefaultAssetClass = FungibleToken
)

// KnownNetworks lists every network the service can address, primary first.
var KnownNetworks = []NetworkID{Ethereum, Polygon}

// ParseNetworkID maps a user supplied identifier ("ethereum", "Polygon", ...) to a NetworkID.
// Empty or unknown identifiers resolve to PrimaryNetwork; the second return value reports
// whether the identifier was recognised.
func ParseNetworkID(identifier string) (NetworkID, bool) {
	for _, id := range KnownNetworks {
		if strings.EqualFold(string(id), strings.TrimSpace(identifier)) {
			return id, true
		}
	}
	return PrimaryNetwork, false
}
