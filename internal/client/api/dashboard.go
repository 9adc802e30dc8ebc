package api

import (
	"context"

	"github.com/printdvor/storefront-cli/internal/client/models"
)

func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.getCached(ctx, tagDashboard, "dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
