package networkdefinition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wallet_inspector/internal/domain/entity"
)

func testEndpoints() Endpoints {
	return NewEndpoints(
		"https://",
		map[entity.NetworkID]NetworkEndpoint{
			entity.Ethereum: {PathSegment: "eth-mainnet", APIKey: "eth-key"},
			entity.Polygon:  {PathSegment: "polygon-mainnet", APIKey: "polygon-key"},
		},
		map[entity.AssetClass]string{
			entity.FungibleToken:    ".g.alchemy.com/v2",
			entity.NonFungibleToken: ".g.alchemy.com/nft/v2",
		},
	)
}

func TestEndpointsURL(t *testing.T) {
	e := testEndpoints()

	testCases := []struct {
		name    string
		network entity.NetworkID
		asset   entity.AssetClass
		want    string
	}{
		{"ethereum tokens", entity.Ethereum, entity.FungibleToken, "https://eth-mainnet.g.alchemy.com/v2/eth-key"},
		{"ethereum nfts", entity.Ethereum, entity.NonFungibleToken, "https://eth-mainnet.g.alchemy.com/nft/v2/eth-key"},
		{"polygon tokens", entity.Polygon, entity.FungibleToken, "https://polygon-mainnet.g.alchemy.com/v2/polygon-key"},
		{"polygon nfts", entity.Polygon, entity.NonFungibleToken, "https://polygon-mainnet.g.alchemy.com/nft/v2/polygon-key"},
		{"unknown network defaults to primary", entity.NetworkID("Solana"), entity.NonFungibleToken, "https://eth-mainnet.g.alchemy.com/nft/v2/eth-key"},
		{"empty network defaults to primary", "", entity.FungibleToken, "https://eth-mainnet.g.alchemy.com/v2/eth-key"},
		{"unknown asset defaults to token", entity.Polygon, entity.AssetClass("erc4626"), "https://polygon-mainnet.g.alchemy.com/v2/polygon-key"},
		{"both unknown", entity.NetworkID("x"), entity.AssetClass("y"), "https://eth-mainnet.g.alchemy.com/v2/eth-key"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.URL(tt.network, tt.asset))
		})
	}
}

func TestEndpointsURL_UnconfiguredNetworkFallsBack(t *testing.T) {
	e := NewEndpoints(
		"http://provider.test/",
		map[entity.NetworkID]NetworkEndpoint{entity.Ethereum: {PathSegment: "eth", APIKey: "k"}},
		map[entity.AssetClass]string{entity.FungibleToken: "/v2"},
	)

	assert.Equal(t, "http://provider.test/eth/v2/k", e.URL(entity.Polygon, entity.FungibleToken))

	network, asset := e.Resolve(entity.Polygon, entity.NonFungibleToken)
	assert.Equal(t, entity.Ethereum, network)
	assert.Equal(t, entity.NonFungibleToken, asset)
}

func TestNewEndpointsCopiesInput(t *testing.T) {
	networks := map[entity.NetworkID]NetworkEndpoint{entity.Ethereum: {PathSegment: "eth", APIKey: "k"}}
	suffixes := map[entity.AssetClass]string{entity.FungibleToken: "/v2"}
	e := NewEndpoints("p/", networks, suffixes)

	networks[entity.Ethereum] = NetworkEndpoint{PathSegment: "changed", APIKey: "changed"}
	suffixes[entity.FungibleToken] = "/changed"

	assert.Equal(t, "p/eth/v2/k", e.URL(entity.Ethereum, entity.FungibleToken))
}

func TestEndpointsNetworks(t *testing.T) {
	assert.Equal(t, []entity.NetworkID{entity.Ethereum, entity.Polygon}, testEndpoints().Networks())
}
