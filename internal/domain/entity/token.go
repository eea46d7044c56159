package entity

// AssetMetadata holds the details of a token contract as reported by the provider.
// Decimals is a pointer so that an absent value can be told apart from zero.
type AssetMetadata struct {
	Decimals *int32  `json:"decimals"`
	Logo     *string `json:"logo"`
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
}
