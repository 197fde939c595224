package domain

import "time"

// UsageEvent records one upstream model call for cost monitoring.
type UsageEvent struct {
	AccountID     string
	RequestID     string
	Endpoint      string
	Success       bool
	InputTokens   int
	OutputTokens  int
	ImageCount    int
	EstimatedCost float64
	LatencyMS     int
	Properties    map[string]any
	CreatedAt     time.Time
}

// EndpointUsage aggregates usage events for one endpoint.
type EndpointUsage struct {
	Endpoint     string  `json:"endpoint"`
	Requests     int     `json:"requests"`
	Images       int     `json:"images"`
	InputTokens  int64   `json:"input_tokens"`
	OutputTokens int64   `json:"output_tokens"`
	Cost         float64 `json:"estimated_cost_usd"`
}
