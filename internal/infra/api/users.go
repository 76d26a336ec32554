package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userPage struct {
	Data []User `json:"data"`
}

// SearchUsers fetches autocomplete candidates by substring match.
func (c *Client) SearchUsers(ctx context.Context, search string, page, perPage int) ([]User, error) {
	query := url.Values{}
	query.Set("search", search)
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var out userPage
	if err := c.do(ctx, http.MethodGet, "/api/users", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
