package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cinevo/cinevo-cli/pkg/model"
)

// Movies lists the catalog with pagination and optional search/genre filters.
func (c *Client) Movies(ctx context.Context, filter model.MovieFilter) ([]model.Movie, *model.PageInfo, error) {
	filter.Clamp()

	query := url.Values{}
	query.Set("page", strconv.Itoa(filter.Page))
	query.Set("limit", strconv.Itoa(filter.Limit))
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Genre != "" {
		query.Set("genres", filter.Genre)
	}

	env, err := c.do(ctx, http.MethodGet, "/movies", query, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("list movies: %w", err)
	}

	var movies []model.Movie
	if err := results(env, &movies); err != nil {
		return nil, nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, env.PageInfo, nil
}

// Movie fetches one catalog entry by id.
func (c *Client) Movie(ctx context.Context, id int) (model.Movie, error) {
	env, err := c.do(ctx, http.MethodGet, "/movies/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return model.Movie{}, fmt.Errorf("get movie %d: %w", id, err)
	}

	var movie model.Movie
	if err := results(env, &movie); err != nil {
		return model.Movie{}, fmt.Errorf("get movie %d: %w", id, err)
	}
	return movie, nil
}
