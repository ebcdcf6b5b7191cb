package notification

import (
	"context"
	"fmt"

	"github.com/market-lens/market-lens/internal/service/alert"
)

type consoleNotifier struct {
}

func NewConsoleNotifier() Notifier {
	return consoleNotifier{}
}

func (c consoleNotifier) Notify(ctx context.Context, triggered alert.TriggeredAlert) error {
	fmt.Printf("alert triggered: %s %s %.2f (current %.2f)\n",
		triggered.Symbol, triggered.Condition, triggered.TargetPrice, triggered.CurrentPrice)
	return nil
}
