package alert

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/market-lens/market-lens/internal/repo"
	"github.com/market-lens/market-lens/internal/service/market"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) GetQuote(ctx context.Context, symbol string) (market.Quote, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.Quote), args.Error(1)
}

func (m *MockMarketService) GetCompanyInfo(ctx context.Context, symbol string) (market.CompanyInfo, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.CompanyInfo), args.Error(1)
}

func newTestService(t *testing.T, marketSvc market.Service) (Service, repo.AlertRepo) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "alerts.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repo.InitTables(db))
	alertRepo := repo.NewAlertRepo(db)
	return NewService(alertRepo, marketSvc), alertRepo
}

func quoteWithPrice(symbol string, price float64) market.Quote {
	return market.Quote{
		Symbol: symbol,
		Price:  decimal.NewFromFloat(price),
	}
}

func TestCreate_Validation(t *testing.T) {
	svc, alertRepo := newTestService(t, &MockMarketService{})
	ctx := context.Background()

	cases := []struct {
		name        string
		symbol      string
		condition   string
		targetPrice float64
	}{
		{"empty symbol", "", "above", 100},
		{"blank symbol", "   ", "above", 100},
		{"empty condition", "AAPL", "", 100},
		{"unknown condition", "AAPL", "sideways", 100},
		{"zero target price", "AAPL", "above", 0},
		{"negative target price", "AAPL", "below", -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.symbol, tc.condition, tc.targetPrice)
			assert.ErrorIs(t, err, ErrInvalidAlert)
		})
	}

	// nothing persisted
	alerts, err := alertRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestCreate_UppercasesSymbol(t *testing.T) {
	svc, _ := newTestService(t, &MockMarketService{})
	ctx := context.Background()

	id, err := svc.Create(ctx, "aapl", "above", 100)
	require.NoError(t, err)
	assert.NotZero(t, id)

	alerts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "AAPL", alerts[0].Symbol)
	assert.False(t, alerts[0].Triggered)
}

func TestCheckAlerts_BoundaryEqualityTriggers(t *testing.T) {
	marketSvc := &MockMarketService{}
	svc, _ := newTestService(t, marketSvc)
	ctx := context.Background()

	_, err := svc.Create(ctx, "UP", "above", 100)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "DOWN", "below", 100)
	require.NoError(t, err)

	marketSvc.On("GetQuote", mock.Anything, "UP").Return(quoteWithPrice("UP", 100), nil)
	marketSvc.On("GetQuote", mock.Anything, "DOWN").Return(quoteWithPrice("DOWN", 100), nil)

	triggered, err := svc.CheckAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, triggered, 2)

	symbols := []string{triggered[0].Symbol, triggered[1].Symbol}
	assert.ElementsMatch(t, []string{"UP", "DOWN"}, symbols)
	for _, ta := range triggered {
		assert.InDelta(t, 100, ta.CurrentPrice, 1e-9)
		assert.InDelta(t, 100, ta.TargetPrice, 1e-9)
	}
}

func TestCheckAlerts_NoTriggerWhenConditionUnmet(t *testing.T) {
	marketSvc := &MockMarketService{}
	svc, _ := newTestService(t, marketSvc)
	ctx := context.Background()

	_, err := svc.Create(ctx, "AAPL", "above", 100)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "MSFT", "below", 100)
	require.NoError(t, err)

	marketSvc.On("GetQuote", mock.Anything, "AAPL").Return(quoteWithPrice("AAPL", 99.99), nil)
	marketSvc.On("GetQuote", mock.Anything, "MSFT").Return(quoteWithPrice("MSFT", 100.01), nil)

	triggered, err := svc.CheckAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, triggered)
}

func TestCheckAlerts_TriggeredExactlyOnce(t *testing.T) {
	marketSvc := &MockMarketService{}
	svc, _ := newTestService(t, marketSvc)
	ctx := context.Background()

	id, err := svc.Create(ctx, "AAPL", "above", 100)
	require.NoError(t, err)

	marketSvc.On("GetQuote", mock.Anything, "AAPL").Return(quoteWithPrice("AAPL", 150), nil)

	triggered, err := svc.CheckAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, triggered, 1)
	assert.Equal(t, id, triggered[0].Id)
	assert.InDelta(t, 150, triggered[0].CurrentPrice, 1e-9)

	// alert is now out of the evaluation set for good
	triggered, err = svc.CheckAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, triggered)

	alerts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.True(t, alerts[0].Triggered)
}

func TestCheckAlerts_SkipsAlertOnQuoteFailure(t *testing.T) {
	marketSvc := &MockMarketService{}
	svc, _ := newTestService(t, marketSvc)
	ctx := context.Background()

	_, err := svc.Create(ctx, "GONE", "above", 100)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "AAPL", "above", 100)
	require.NoError(t, err)

	marketSvc.On("GetQuote", mock.Anything, "GONE").Return(market.Quote{}, market.ErrSymbolNotFound)
	marketSvc.On("GetQuote", mock.Anything, "AAPL").Return(quoteWithPrice("AAPL", 150), nil)

	triggered, err := svc.CheckAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, triggered, 1)
	assert.Equal(t, "AAPL", triggered[0].Symbol)

	// the skipped alert stays pending and can trigger on a later pass
	marketSvc.ExpectedCalls = nil
	marketSvc.On("GetQuote", mock.Anything, "GONE").Return(quoteWithPrice("GONE", 200), nil)

	triggered, err = svc.CheckAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, triggered, 1)
	assert.Equal(t, "GONE", triggered[0].Symbol)
}

func TestCheckAlerts_UpstreamErrorDoesNotFailPass(t *testing.T) {
	marketSvc := &MockMarketService{}
	svc, _ := newTestService(t, marketSvc)
	ctx := context.Background()

	_, err := svc.Create(ctx, "AAPL", "above", 100)
	require.NoError(t, err)

	marketSvc.On("GetQuote", mock.Anything, "AAPL").Return(market.Quote{}, fmt.Errorf("connection refused"))

	triggered, err := svc.CheckAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, triggered)
}
