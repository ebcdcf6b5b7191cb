package alert

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/market-lens/market-lens/internal/entity"
	"github.com/market-lens/market-lens/internal/repo"
	"github.com/market-lens/market-lens/internal/service/market"
	"github.com/shopspring/decimal"
)

type alertService struct {
	repo      repo.AlertRepo
	marketSvc market.Service
}

func NewService(repo repo.AlertRepo, marketSvc market.Service) Service {
	return &alertService{
		repo:      repo,
		marketSvc: marketSvc,
	}
}

func (s *alertService) List(ctx context.Context) ([]entity.Alert, error) {
	return s.repo.FindAll(ctx)
}

func (s *alertService) Create(ctx context.Context, symbol, condition string, targetPrice float64) (int64, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return 0, fmt.Errorf("%w: symbol is required", ErrInvalidAlert)
	}
	if condition != entity.ConditionAbove && condition != entity.ConditionBelow {
		return 0, fmt.Errorf("%w: condition must be %q or %q", ErrInvalidAlert, entity.ConditionAbove, entity.ConditionBelow)
	}
	if targetPrice <= 0 {
		return 0, fmt.Errorf("%w: target price must be positive", ErrInvalidAlert)
	}

	return s.repo.Create(ctx, entity.Alert{
		Symbol:      symbol,
		Condition:   condition,
		TargetPrice: targetPrice,
		CreatedAt:   time.Now(),
		Triggered:   false,
	})
}

func (s *alertService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// CheckAlerts evaluates every untriggered alert against a fresh quote,
// sequentially. An alert whose symbol cannot be quoted this pass is skipped
// and stays untriggered; it will be evaluated again next time.
func (s *alertService) CheckAlerts(ctx context.Context) ([]TriggeredAlert, error) {
	alerts, err := s.repo.FindUntriggered(ctx)
	if err != nil {
		return nil, err
	}

	triggered := make([]TriggeredAlert, 0)
	for _, a := range alerts {
		quote, err := s.marketSvc.GetQuote(ctx, a.Symbol)
		if err != nil {
			slog.Error("failed to get quote for alert", "alert_id", a.Id, "symbol", a.Symbol, "error", err)
			continue
		}

		target := decimal.NewFromFloat(a.TargetPrice)
		var hit bool
		switch a.Condition {
		case entity.ConditionAbove:
			hit = quote.Price.GreaterThanOrEqual(target)
		case entity.ConditionBelow:
			hit = quote.Price.LessThanOrEqual(target)
		}
		if !hit {
			continue
		}

		ok, err := s.repo.MarkTriggered(ctx, a.Id)
		if err != nil {
			slog.Error("failed to mark alert triggered", "alert_id", a.Id, "error", err)
			continue
		}
		if !ok {
			// claimed by an overlapping check pass
			continue
		}

		triggered = append(triggered, TriggeredAlert{
			Id:           a.Id,
			Symbol:       a.Symbol,
			Condition:    a.Condition,
			TargetPrice:  a.TargetPrice,
			CurrentPrice: quote.Price.InexactFloat64(),
		})
	}
	return triggered, nil
}
