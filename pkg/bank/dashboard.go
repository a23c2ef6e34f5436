package bank

import (
	"context"

	"banking-console/models"
)

// DashboardStats fetches the backend's aggregate snapshot.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.get(ctx, "/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
