package alert

import (
	"context"
	"errors"

	"github.com/market-lens/market-lens/internal/entity"
)

// ErrInvalidAlert marks client input that fails validation at creation.
var ErrInvalidAlert = errors.New("invalid alert parameters")

// TriggeredAlert describes an alert whose condition was observed satisfied
// during a check pass.
type TriggeredAlert struct {
	Id           int64   `json:"id"`
	Symbol       string  `json:"symbol"`
	Condition    string  `json:"condition"`
	TargetPrice  float64 `json:"target_price"`
	CurrentPrice float64 `json:"current_price"`
}

type Service interface {
	List(ctx context.Context) ([]entity.Alert, error)
	Create(ctx context.Context, symbol, condition string, targetPrice float64) (int64, error)
	Delete(ctx context.Context, id int64) error
	CheckAlerts(ctx context.Context) ([]TriggeredAlert, error)
}
