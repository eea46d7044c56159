package entity

// Transfer categories understood by the provider.
const (
	CategoryExternal = "external"
	CategoryInternal = "internal"
	CategoryERC20    = "erc20"
	CategoryERC721   = "erc721"
	CategoryERC1155  = "erc1155"
)

// AllTransferCategories is the full category set requested for a history query.
var AllTransferCategories = []string{
	CategoryExternal,
	CategoryInternal,
	CategoryERC20,
	CategoryERC721,
	CategoryERC1155,
}

// TransferRequest is the parameter object of the transfer history call.
type TransferRequest struct {
	FromAddress      string   `json:"fromAddress"`
	FromBlock        string   `json:"fromBlock"`
	ToBlock          string   `json:"toBlock"`
	Category         []string `json:"category"`
	WithMetadata     bool     `json:"withMetadata"`
	ExcludeZeroValue bool     `json:"excludeZeroValue"`
	MaxCount         string   `json:"maxCount"`
	Order            string   `json:"order"`
}

// TransferList is the provider result of the transfer history call.
type TransferList struct {
	Transfers []Transfer `json:"transfers"`
}

// Transfer is passed to callers as the provider reports it. BlockNum stays a hex string.
type Transfer struct {
	Asset    string  `json:"asset"`
	BlockNum string  `json:"blockNum"`
	Category string  `json:"category"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Hash     string  `json:"hash"`
	Value    float64 `json:"value"`
}
