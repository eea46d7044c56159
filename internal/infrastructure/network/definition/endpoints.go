package networkdefinition

import (
	"strings"

	"wallet_inspector/internal/domain/entity"
)

// NetworkEndpoint holds the provider URL path segment and the API key of one network.
type NetworkEndpoint struct {
	PathSegment string
	APIKey      string
}

// Endpoints composes provider URLs. It is immutable once built; the maps passed to
// NewEndpoints are copied.
type Endpoints struct {
	baseURLPrefix string
	networks      map[entity.NetworkID]NetworkEndpoint
	assetSuffixes map[entity.AssetClass]string
}

// NewEndpoints builds an Endpoints table from configuration values.
func NewEndpoints(
	baseURLPrefix string,
	networks map[entity.NetworkID]NetworkEndpoint,
	assetSuffixes map[entity.AssetClass]string,
) Endpoints {
	e := Endpoints{
		baseURLPrefix: baseURLPrefix,
		networks:      make(map[entity.NetworkID]NetworkEndpoint, len(networks)),
		assetSuffixes: make(map[entity.AssetClass]string, len(assetSuffixes)),
	}
	for id, ne := range networks {
		e.networks[id] = ne
	}
	for class, suffix := range assetSuffixes {
		e.assetSuffixes[class] = suffix
	}
	return e
}

// Resolve applies the fallback rules: a network without a configured endpoint resolves to
// entity.PrimaryNetwork, an asset class other than token/nft resolves to entity.DefaultAssetClass.
func (e Endpoints) Resolve(network entity.NetworkID, asset entity.AssetClass) (entity.NetworkID, entity.AssetClass) {
	if _, ok := e.networks[network]; !ok {
		network = entity.PrimaryNetwork
	}
	if asset != entity.FungibleToken && asset != entity.NonFungibleToken {
		asset = entity.DefaultAssetClass
	}
	return network, asset
}

// URL returns prefix + network path segment + asset suffix + "/" + API key.
// It is total: unknown inputs fall back as described on Resolve.
func (e Endpoints) URL(network entity.NetworkID, asset entity.AssetClass) string {
	network, asset = e.Resolve(network, asset)
	ne := e.networks[network]

	var b strings.Builder
	b.WriteString(e.baseURLPrefix)
	b.WriteString(ne.PathSegment)
	b.WriteString(e.assetSuffixes[asset])
	b.WriteByte('/')
	b.WriteString(ne.APIKey)
	return b.String()
}

// Networks returns the configured network identifiers.
func (e Endpoints) Networks() []entity.NetworkID {
	ids := make([]entity.NetworkID, 0, len(e.networks))
	for _, id := range entity.KnownNetworks {
		if _, ok := e.networks[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
