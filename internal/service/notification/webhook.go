package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/market-lens/market-lens/internal/service/alert"
)

// webhookNotifier POSTs each triggered alert as JSON to a fixed URL.
type webhookNotifier struct {
	url        string
	httpClient *http.Client
}

func NewWebhookNotifier(url string) Notifier {
	return &webhookNotifier{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *webhookNotifier) Notify(ctx context.Context, triggered alert.TriggeredAlert) error {
	body, err := json.Marshal(triggered)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}
