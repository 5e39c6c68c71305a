package model

// PageInfo holds pagination metadata returned by list endpoints.
type PageInfo struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}

// HasMore reports whether pages remain after the current one.
func (p *PageInfo) HasMore() bool {
	return p.Page < p.TotalPages
}
