package handlers

import (
	"net/http"
	"strconv"
	"time"

	"icona/internal/domain"
)

const (
	defaultSummaryWindow = 24 * time.Hour
	maxSummaryWindow     = 90 * 24 * time.Hour
)

type usageSummaryResponse struct {
	Since     time.Time              `json:"since"`
	Endpoints []domain.EndpointUsage `json:"endpoints"`
	TotalCost float64                `json:"estimated_cost_usd"`
}

// UsageSummary aggregates model spend per endpoint. Only accounts listed as
// admins may read it.
func (a *App) UsageSummary(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	if _, ok := a.admins[userID]; !ok {
		a.error(w, http.StatusForbidden, "forbidden", "admin only")
		return
	}
	if a.UsageStats == nil {
		a.error(w, http.StatusServiceUnavailable, "unavailable", "usage storage is not configured")
		return
	}
	window := defaultSummaryWindow
	if raw := r.URL.Query().Get("hours"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			a.error(w, http.StatusBadRequest, "bad_request", "hours must be a positive integer")
			return
		}
		window = min(time.Duration(hours)*time.Hour, maxSummaryWindow)
	}
	since := a.now().Add(-window).UTC()
	rows, err := a.UsageStats.Summary(r.Context(), since)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load usage")
		return
	}
	resp := usageSummaryResponse{Since: since, Endpoints: rows}
	if resp.Endpoints == nil {
		resp.Endpoints = []domain.EndpointUsage{}
	}
	for _, row := range rows {
		resp.TotalCost += row.Cost
	}
	a.json(w, http.StatusOK, resp)
}
