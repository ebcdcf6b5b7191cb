package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/market-lens/market-lens/internal/schedule"
	"github.com/market-lens/market-lens/internal/service/alert"
	"github.com/market-lens/market-lens/internal/service/notification"
)

// CheckTask periodically runs an alert check pass and notifies on every
// newly triggered alert. It is the in-process counterpart of a client
// polling the check endpoint.
type CheckTask struct {
	alertSvc alert.Service
	notifier notification.Notifier
	interval time.Duration
}

type Option func(t *CheckTask)

func WithNotifier(notifier notification.Notifier) Option {
	return func(t *CheckTask) {
		t.notifier = notifier
	}
}

func NewCheckTask(alertSvc alert.Service, interval time.Duration, opts ...Option) schedule.Task {
	task := &CheckTask{
		alertSvc: alertSvc,
		notifier: notification.NewConsoleNotifier(),
		interval: interval,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

func (t *CheckTask) Name() string {
	return "alert-check"
}

// Run blocks until ctx is cancelled, running one check pass per interval.
func (t *CheckTask) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			t.runOnce(ctx)
		}
	}
}

func (t *CheckTask) runOnce(ctx context.Context) {
	triggered, err := t.alertSvc.CheckAlerts(ctx)
	if err != nil {
		slog.Error("alert check pass failed", "task", t.Name(), "error", err)
		return
	}
	for _, ta := range triggered {
		if err = t.notifier.Notify(ctx, ta); err != nil {
			slog.Error("failed to notify triggered alert", "alert_id", ta.Id, "error", err)
		}
	}
}
