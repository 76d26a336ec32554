package api

import (
	"context"
	"net/http"
	"net/url"
)

type SummaryCounters struct {
	ActiveUsers int64 `json:"active_users"`
	Clicks      int64 `json:"clicks"`
	Appearance  int64 `json:"appearance"`
}

type DashboardSummary struct {
	Current  SummaryCounters `json:"current"`
	Previous SummaryCounters `json:"previous"`
}

type WebsiteVisit struct {
	Desktop int `json:"desktop"`
	Mobile  int `json:"mobile"`
}

type DashboardStat struct {
	WebsiteVisits map[string]WebsiteVisit `json:"website_visits"`
	OffersSent    map[string]int          `json:"offers_sent"`
}

func (c *Client) GetDashboardSummary(ctx context.Context, filter string) (*DashboardSummary, error) {
	query := url.Values{}
	query.Set("filter", filter)

	var out DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/summary", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDashboardStat(ctx context.Context, filter string) (*DashboardStat, error) {
	query := url.Values{}
	query.Set("filter", filter)

	var out DashboardStat
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/stat", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
