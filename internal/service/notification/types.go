package notification

import (
	"context"

	"github.com/market-lens/market-lens/internal/service/alert"
)

// Notifier delivers a newly triggered alert to some channel.
type Notifier interface {
	Notify(ctx context.Context, triggered alert.TriggeredAlert) error
}
