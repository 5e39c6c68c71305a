package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cinevo/cinevo-cli/pkg/model"
)

// CreateMovie adds a catalog entry. Admin only.
func (c *Client) CreateMovie(ctx context.Context, movie model.Movie) (model.Movie, error) {
	env, err := c.do(ctx, http.MethodPost, "/admin/movies", nil, movie)
	if err != nil {
		return model.Movie{}, fmt.Errorf("create movie: %w", err)
	}

	var created model.Movie
	if err := results(env, &created); err != nil {
		return model.Movie{}, fmt.Errorf("create movie: %w", err)
	}
	return created, nil
}

// DeleteMovie removes a catalog entry. Admin only.
func (c *Client) DeleteMovie(ctx context.Context, id int) error {
	if _, err := c.do(ctx, http.MethodDelete, "/admin/movies/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("delete movie %d: %w", id, err)
	}
	return nil
}

// TicketSales reads the sales aggregation, bucketed by the given dimension
// ("movie", "genre", or "location"). Admin only.
func (c *Client) TicketSales(ctx context.Context, filter string) ([]model.SalesPoint, error) {
	query := url.Values{}
	query.Set("filter", filter)

	env, err := c.do(ctx, http.MethodGet, "/admin/ticket-sales", query, nil)
	if err != nil {
		return nil, fmt.Errorf("ticket sales: %w", err)
	}

	var points []model.SalesPoint
	if err := results(env, &points); err != nil {
		return nil, fmt.Errorf("ticket sales: %w", err)
	}
	return points, nil
}
