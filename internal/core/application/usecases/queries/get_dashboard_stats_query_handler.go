package queries

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"negoce/internal/core/ports"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes the dashboard headline figures.
// Results are cached for a short TTL; the cache is best effort and a broken
// cache never fails the query.
type GetDashboardStatsQueryHandler struct {
	db     *gorm.DB
	cache  ports.StatsCache
	appID  string
	logger *slog.Logger
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
func NewGetDashboardStatsQueryHandler(
	db *gorm.DB,
	cache ports.StatsCache,
	appID string,
	logger *slog.Logger,
) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{
		db:     db,
		cache:  cache,
		appID:  appID,
		logger: logger.With("component", "dashboard-stats"),
	}
}

// Handle executes the dashboard query, serving from cache when possible.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	if payload, err := h.cache.Get(ctx, ports.DashboardStatsCacheKey); err == nil {
		var cached GetDashboardStatsQueryResponse
		if err = json.Unmarshal(payload, &cached); err == nil {
			cached.ServedFromCache = true
			return cached, nil
		}
		h.logger.Warn("stats cache payload unreadable", "error", err)
	} else if !errors.Is(err, ports.ErrCacheMiss) {
		h.logger.Warn("stats cache unavailable", "error", err)
	}

	var resp GetDashboardStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM clients),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM cotations),
			(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE app_id = ? AND kind = 'revenu'),
			(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE app_id = ? AND kind = 'depense'),
			(SELECT COALESCE(SUM(total), 0) FROM orders)
	`, h.appID, h.appID).Row()

	err := row.Scan(
		&resp.ClientCount,
		&resp.OrderCount,
		&resp.CotationCount,
		&resp.Revenue,
		&resp.Expense,
		&resp.OrderBookValue,
	)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	resp.Balance = resp.Revenue - resp.Expense

	if payload, err := json.Marshal(resp); err == nil {
		if err = h.cache.Set(ctx, ports.DashboardStatsCacheKey, payload); err != nil {
			h.logger.Warn("stats cache not refreshed", "error", err)
		}
	}

	return resp, nil
}
