package dispatch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/triggerkit/scheduled-webhooks/logger"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

const (
	defaultTimeout = 10 * time.Second
	minTimeout     = 1 * time.Second
	maxTimeout     = 30 * time.Second
)

// Result captures the outcome of a single webhook dispatch. Any HTTP status,
// including 4xx/5xx, counts as a delivered response; only network or timeout
// failures leave Delivered false with Err set.
type Result struct {
	Delivered bool
	Status    int
	Body      string
	Err       string
}

// Success reports whether the target acknowledged the call with a 2xx.
func (r *Result) Success() bool {
	return r.Delivered && r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}

//go:generate mockery --name Dispatcher --output=./mocks
type Dispatcher interface {
	Execute(ctx context.Context, trigger *domain.Trigger) *Result
}

// WebhookDispatcher issues the outbound HTTP call of a due trigger. It never
// returns an error past its boundary; every outcome is captured in the
// Result. State mutation is the caller's responsibility.
type WebhookDispatcher struct {
	c *http.Client
	l logger.Provider
}

func NewWebhookDispatcher(log logger.Provider) *WebhookDispatcher {
	return &WebhookDispatcher{
		// the per-trigger context deadline bounds each request; the client
		// timeout is the hard ceiling
		c: &http.Client{Timeout: maxTimeout},
		l: log,
	}
}

func (d *WebhookDispatcher) Execute(ctx context.Context, trigger *domain.Trigger) *Result {
	ctx, cancel := context.WithTimeout(ctx, triggerTimeout(trigger))
	defer cancel()

	method := trigger.HTTPMethod
	if method == "" {
		method = http.MethodPost
	}

	req, err := http.NewRequestWithContext(ctx, method, trigger.URL, strings.NewReader(trigger.Payload))
	if err != nil {
		return &Result{Err: err.Error()}
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := d.c.Do(req)
	if err != nil {
		d.l(ctx).Warningf("trigger %s: webhook request failed: %s", trigger.ID, err)
		return &Result{Err: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, domain.MaxResponseBodyLength))
	if err != nil {
		// The response status was delivered even when the body read failed.
		return &Result{Delivered: true, Status: resp.StatusCode}
	}

	return &Result{
		Delivered: true,
		Status:    resp.StatusCode,
		Body:      string(body),
	}
}

func triggerTimeout(trigger *domain.Trigger) time.Duration {
	if trigger.TimeoutMs <= 0 {
		return defaultTimeout
	}

	timeout := time.Duration(trigger.TimeoutMs) * time.Millisecond

	switch {
	case timeout < minTimeout:
		return minTimeout
	case timeout > maxTimeout:
		return maxTimeout
	default:
		return timeout
	}
}
