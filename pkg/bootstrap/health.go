package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// WaitReady polls the given URL under the instance context.
func (b *Bootstrap) WaitReady(url string, interval time.Duration) error {
	return WaitReady(b.Ctx, url, interval)
}

// WaitReady polls the given URL until it answers with a 2xx or 3xx status,
// the context is cancelled, or the deadline passes. Connection errors and
// error statuses are expected while the server is still coming up, so they
// only surface if the wait times out.
func WaitReady(ctx context.Context, url string, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}

	client := &http.Client{Timeout: interval}

	var lastErr error
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		lastErr = probe(ctx, client, url)
		if lastErr == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s not ready: %w (last probe: %v)", url, ctx.Err(), lastErr)
		case <-ticker.C:
		}
	}
}

func probe(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("status %s", resp.Status)
	}
	return nil
}
