package market

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrSymbolNotFound is returned when the upstream provider has no data for a
// symbol. The provider answers with an empty payload both for unknown symbols
// and for exhausted API quotas, so the two cases cannot be told apart here.
var ErrSymbolNotFound = errors.New("symbol not found or API rate limit reached")

// Quote is a point-in-time price snapshot for a ticker symbol.
type Quote struct {
	Symbol           string
	Price            decimal.Decimal
	Change           decimal.Decimal
	ChangePercent    string
	Volume           string
	LatestTradingDay string
}

// CompanyInfo carries the provider's company overview fields as-is.
type CompanyInfo struct {
	Symbol        string
	Name          string
	Description   string
	Sector        string
	Industry      string
	MarketCap     string
	PERatio       string
	DividendYield string
	Week52High    string
	Week52Low     string
	Address       string
	Exchange      string
}

type Service interface {
	GetQuote(ctx context.Context, symbol string) (Quote, error)
	GetCompanyInfo(ctx context.Context, symbol string) (CompanyInfo, error)
}
