package model

// Movie is a catalog entry as returned by the Cinevo API. Genres, directors,
// and casts come back as plain name lists.
type Movie struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Overview     string   `json:"overview,omitempty"`
	Genres       []string `json:"genres,omitempty"`
	Directors    []string `json:"directors,omitempty"`
	Casts        []string `json:"casts,omitempty"`
	PosterPath   string   `json:"poster_path,omitempty"`
	BackdropPath string   `json:"backdrop_path,omitempty"`
	ReleaseDate  string   `json:"release_date,omitempty"`
	Runtime      int      `json:"runtime,omitempty"`
	VoteAverage  float64  `json:"vote_average,omitempty"`
}

// MovieFilter configures catalog list queries with pagination and filtering.
type MovieFilter struct {
	Page   int
	Limit  int
	Search string
	Genre  string
}

// Clamp enforces limits (max 50, default 8 to match one screen of posters).
func (f *MovieFilter) Clamp() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 8
	}
	if f.Limit > 50 {
		f.Limit = 50
	}
}
