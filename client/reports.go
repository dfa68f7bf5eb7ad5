package client

import (
	"context"
	"net/url"
	"strconv"

	"hoteladmin/models"
)

// MonthlyReport regresa el agregado mensual precalculado por el backend.
func (c *Client) MonthlyReport(ctx context.Context, year, month int) (*models.MonthlyReport, error) {
	query := url.Values{}
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}
	if month > 0 {
		query.Set("month", strconv.Itoa(month))
	}

	var report models.MonthlyReport
	if err := c.get(ctx, "/api/reports/monthly", query, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
