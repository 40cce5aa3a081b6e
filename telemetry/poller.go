package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Xordas/ScreenX/logging"
)

var logCtx = logging.PackageCtx("telemetry")

const (
	TelemetryStatusPath = "/api/telemetry/status"
	HeartbeatStatusPath = "/api/heartbeat/status"

	DefaultPollInterval = time.Second
)

// Poller periodically reads the companion backend and feeds the results to an Updater.
type Poller struct {
	baseURL  string
	client   *http.Client
	sink     Updater
	interval time.Duration
}

func NewPoller(baseURL string, sink Updater, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Poller{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: interval},
		sink:     sink,
		interval: interval,
	}
}

// Run polls until ctx is cancelled. Failed polls are logged and retried on the next tick.
func (p *Poller) Run(ctx context.Context) error {
	slog.InfoContext(logCtx, "Polling telemetry backend", "url", p.baseURL, "interval", p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.PollOnce(ctx)

		select {
		case <-ctx.Done():
			slog.InfoContext(logCtx, "Stopped polling telemetry backend", "url", p.baseURL)

			return nil
		case <-ticker.C:
		}
	}
}

// PollOnce reads both endpoints once.
func (p *Poller) PollOnce(ctx context.Context) {
	if err := p.PollTelemetry(ctx); err != nil {
		slog.WarnContext(logCtx, "Could not poll telemetry", "error", err)
	}

	if err := p.PollHeartbeat(ctx); err != nil {
		slog.WarnContext(logCtx, "Could not poll heartbeat", "error", err)
	}
}

func (p *Poller) PollTelemetry(ctx context.Context) error {
	var status TelemetryStatus

	if err := p.get(ctx, TelemetryStatusPath, &status); err != nil {
		return err
	}

	if patch, ok := status.Patch(); ok {
		p.sink.Update(patch)
	}

	return nil
}

func (p *Poller) PollHeartbeat(ctx context.Context) error {
	var status HeartbeatStatus

	if err := p.get(ctx, HeartbeatStatusPath, &status); err != nil {
		return err
	}

	p.sink.Update(status.Patch())

	return nil
}

func (p *Poller) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("could not build request for %s: %w", path, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("could not fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode %s: %w", path, err)
	}

	return nil
}
