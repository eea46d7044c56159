package entity

// TokenBalances is the provider result of a balance listing for one wallet.
type TokenBalances struct {
	Address       string       `json:"address"`
	TokenBalances []RawBalance `json:"tokenBalances"`
}

// RawBalance is a provider-native holding record. TokenBalance is a 0x-prefixed
// big-endian hex integer without fixed width.
type RawBalance struct {
	ContractAddress string `json:"contractAddress"`
	TokenBalance    string `json:"tokenBalance"`
}

// NormalizedBalance is the caller-facing balance of one token.
type NormalizedBalance struct {
	Balance float64 `json:"balance"`
	Name    string  `json:"name"`
	Symbol  string  `json:"symbol"`
	Logo    string  `json:"logo"`
}

// MissingLogo is substituted when the provider has no logo for a token.
const MissingLogo = "null"
