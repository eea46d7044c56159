package entity

// OwnedNFTList is the provider response of the NFT listing endpoint.
type OwnedNFTList struct {
	BlockHash  string      `json:"blockHash"`
	TotalCount uint32      `json:"totalCount"`
	OwnedNFTs  []NFTObject `json:"ownedNfts"`
}

// NFTObject is a single collectible as described by the provider.
type NFTObject struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Media       []NFTMedia  `json:"media"`
	Metadata    NFTMetadata `json:"metadata"`
}

type NFTMedia struct {
	Raw       string `json:"raw"`
	Gateway   string `json:"gateway"`
	Thumbnail string `json:"thumbnail"`
}

type NFTMetadata struct {
	Date        uint64 `json:"date"`
	Image       string `json:"image"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Edition     uint32 `json:"edition"`
}

// OwnedAsset is the caller-facing view of one collectible.
// JSON keys follow the shape existing front-ends already consume.
type OwnedAsset struct {
	Title          string `json:"name"`
	Description    string `json:"description"`
	ThumbnailImage string `json:"image"`
	EditionID      uint32 `json:"id"`
	MintDate       uint64 `json:"date"`
}
