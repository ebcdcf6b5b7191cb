package alphavantage

import (
	"context"
	"fmt"
	"strings"

	"github.com/market-lens/market-lens/internal/service/market"
	"github.com/market-lens/market-lens/pkg/decimalx"
)

var _ market.Service = (*Service)(nil)

// Service implements market.Service on top of the Alpha Vantage API.
type Service struct {
	cli *Client
}

func NewService(cli *Client) *Service {
	return &Service{
		cli: cli,
	}
}

// globalQuoteResponse mirrors the GLOBAL_QUOTE payload. The provider prefixes
// every field key with an ordinal, e.g. "05. price".
type globalQuoteResponse struct {
	GlobalQuote map[string]string `json:"Global Quote"`
}

func (s *Service) GetQuote(ctx context.Context, symbol string) (market.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	var resp globalQuoteResponse
	if err := s.cli.query(ctx, "GLOBAL_QUOTE", symbol, &resp); err != nil {
		return market.Quote{}, fmt.Errorf("alphavantage: global quote for %s: %w", symbol, err)
	}

	// An empty quote object means unknown symbol or exhausted quota.
	if len(resp.GlobalQuote) == 0 {
		return market.Quote{}, market.ErrSymbolNotFound
	}

	quote := resp.GlobalQuote
	q := market.Quote{
		Symbol:           quote["01. symbol"],
		Price:            decimalx.ParseOrZero(quote["05. price"]),
		Change:           decimalx.ParseOrZero(quote["09. change"]),
		ChangePercent:    quote["10. change percent"],
		Volume:           quote["06. volume"],
		LatestTradingDay: quote["07. latest trading day"],
	}
	if q.Symbol == "" {
		q.Symbol = symbol
	}
	if q.ChangePercent == "" {
		q.ChangePercent = "0%"
	}
	if q.Volume == "" {
		q.Volume = "0"
	}
	return q, nil
}

func (s *Service) GetCompanyInfo(ctx context.Context, symbol string) (market.CompanyInfo, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	var resp map[string]string
	if err := s.cli.query(ctx, "OVERVIEW", symbol, &resp); err != nil {
		return market.CompanyInfo{}, fmt.Errorf("alphavantage: overview for %s: %w", symbol, err)
	}

	// The overview payload has no wrapper object; a present Symbol key is the
	// success discriminator.
	if resp["Symbol"] == "" {
		return market.CompanyInfo{}, market.ErrSymbolNotFound
	}

	return market.CompanyInfo{
		Symbol:        resp["Symbol"],
		Name:          resp["Name"],
		Description:   resp["Description"],
		Sector:        resp["Sector"],
		Industry:      resp["Industry"],
		MarketCap:     resp["MarketCapitalization"],
		PERatio:       resp["PERatio"],
		DividendYield: resp["DividendYield"],
		Week52High:    resp["52WeekHigh"],
		Week52Low:     resp["52WeekLow"],
		Address:       resp["Address"],
		Exchange:      resp["Exchange"],
	}, nil
}
