package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type Offer struct {
	ID       int64   `json:"id"`
	UserName string  `json:"user_name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Company  string  `json:"company"`
	JobTitle string  `json:"jobTitle"`
	Status   string  `json:"status"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
}

type PageMeta struct {
	Total int `json:"total"`
}

type OfferPage struct {
	Data []Offer  `json:"data"`
	Meta PageMeta `json:"meta"`
}

// ListOffers fetches one server page. page is 1-based upstream.
func (c *Client) ListOffers(ctx context.Context, page, perPage int) (*OfferPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var out OfferPage
	if err := c.do(ctx, http.MethodGet, "/api/offers", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type CreateOfferRequest struct {
	PlanType  string   `json:"plan_type"`
	Additions []string `json:"additions"`
	UserID    int64    `json:"user_id"`
	Expired   string   `json:"expired"`
	Price     float64  `json:"price"`
}

type CreateOfferResponse struct {
	ID      int64  `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

func (c *Client) CreateOffer(ctx context.Context, req CreateOfferRequest) (*CreateOfferResponse, error) {
	var out CreateOfferResponse
	if err := c.do(ctx, http.MethodPost, "/api/offers", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
