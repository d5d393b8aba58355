package http

import (
	"context"
	"time"
)

const (
	StatusOk       = "ok"
	StatusDown     = "down"
	healthTimeout  = 2 * time.Second
	healthEndpoint = "/health"
)

type HealthReport struct {
	BaseURL string        `json:"base_url" yaml:"base_url"`
	Status  string        `json:"status" yaml:"status"`
	Latency time.Duration `json:"latency" yaml:"latency"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// CheckHealth pings the API with a short timeout so a stalled server does
// not hang the caller.
func (c *Client) CheckHealth(ctx context.Context) HealthReport {
	timeoutCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	start := time.Now()
	err := c.Get(timeoutCtx, healthEndpoint, nil)
	report := HealthReport{
		BaseURL: c.baseURL,
		Status:  StatusOk,
		Latency: time.Since(start),
	}
	if err != nil {
		report.Status = StatusDown
		report.Error = err.Error()
	}
	return report
}
