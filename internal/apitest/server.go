// Package apitest is an in-process fake of the Cinevo REST API. It speaks
// the same envelope as the real service and enforces bearer-token and role
// checks, so client, command, and end-to-end tests run against realistic
// responses without a network.
package apitest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/cinevo/cinevo-cli/pkg/model"
)

// Seeded fixtures. Tests log in with these.
const (
	UserEmail     = "a@b.com"
	UserPassword  = "secret1"
	UserFullname  = "Izuna"
	AdminEmail    = "admin@cinevo.id"
	AdminPassword = "admin123"

	// ResetOTP is the one-time code "sent" by the forgot-password endpoint.
	ResetOTP = "135790"
)

// tokenSecret signs the fake server's JWTs. The client never verifies
// signatures, only the server does.
const tokenSecret = "apitest-secret"

type account struct {
	profile  model.UserProfile
	password string
	otp      string
}

type storedTxn struct {
	email string
	txn   model.Transaction
}

// Server is the fake Cinevo API.
type Server struct {
	mu          sync.Mutex
	accounts    map[string]*account
	movies      []model.Movie
	txns        []storedTxn
	nextMovieID int
	nextTxnID   int
	router      chi.Router
}

// New creates a fake server seeded with two accounts and a small catalog
// (movie id 42 included).
func New() *Server {
	s := &Server{
		accounts: map[string]*account{
			UserEmail: {
				profile:  model.UserProfile{Email: UserEmail, Fullname: UserFullname, Phone: "081234567890", Role: model.RoleUser},
				password: UserPassword,
			},
			AdminEmail: {
				profile:  model.UserProfile{Email: AdminEmail, Fullname: "Catalog Admin", Role: model.RoleAdmin},
				password: AdminPassword,
			},
		},
		movies: []model.Movie{
			{ID: 41, Title: "Dune: Part Two", Genres: []string{"Sci-Fi", "Adventure"}, Directors: []string{"Denis Villeneuve"}, Casts: []string{"Timothee Chalamet"}, Runtime: 166, ReleaseDate: "2024-03-01", VoteAverage: 8.3},
			{ID: 42, Title: "Interstellar", Genres: []string{"Sci-Fi", "Drama"}, Directors: []string{"Christopher Nolan"}, Casts: []string{"Matthew McConaughey", "Anne Hathaway"}, Runtime: 169, ReleaseDate: "2014-11-07", VoteAverage: 8.7},
			{ID: 43, Title: "Heat", Genres: []string{"Crime", "Drama"}, Directors: []string{"Michael Mann"}, Casts: []string{"Al Pacino", "Robert De Niro"}, Runtime: 170, ReleaseDate: "1995-12-15", VoteAverage: 8.3},
		},
		nextMovieID: 44,
		nextTxnID:   1,
	}
	s.routes()
	return s
}

// Handler returns the HTTP handler, for use with httptest.NewServer.
func (s *Server) Handler() http.Handler {
	return s.router
}

// MintToken signs a token the way the fake server's login does. Exposed so
// tests can fabricate expired or odd-role tokens.
func MintToken(email string, role model.UserRole, exp time.Time) string {
	tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"role":  string(role),
		"exp":   exp.Unix(),
	}).SignedString([]byte(tokenSecret))
	return tok
}

func (s *Server) routes() {
	r := chi.NewRouter()

	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/forgot-password", s.handleForgotPassword)
	r.Post("/auth/reset-password", s.handleResetPassword)
	r.Get("/movies", s.handleListMovies)
	r.Get("/movies/{id}", s.handleGetMovie)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/user", s.handleGetProfile)
		r.Patch("/user", s.handleUpdateProfile)
		r.Post("/transactions", s.handleCreateTransaction)
		r.Get("/transactions", s.handleListTransactions)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth, s.requireAdmin)
		r.Get("/admin/ticket-sales", s.handleTicketSales)
		r.Post("/admin/movies", s.handleCreateMovie)
		r.Delete("/admin/movies/{id}", s.handleDeleteMovie)
	})

	s.router = r
}

// --- auth middleware ---

type ctxKey string

const ctxKeyAccount ctxKey = "account"

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			respondError(w, http.StatusUnauthorized, "authorization token required")
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return []byte(tokenSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		email, _ := claims["email"].(string)
		s.mu.Lock()
		acct, found := s.accounts[email]
		s.mu.Unlock()
		if !found {
			respondError(w, http.StatusUnauthorized, "unknown account")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyAccount, acct)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acct := accountFrom(r)
		if acct == nil || !acct.profile.IsAdmin() {
			respondError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func accountFrom(r *http.Request) *account {
	acct, _ := r.Context().Value(ctxKeyAccount).(*account)
	return acct
}

// --- auth endpoints ---

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	acct, found := s.accounts[req.Email]
	s.mu.Unlock()
	if !found || acct.password != req.Password {
		respondError(w, http.StatusUnauthorized, "wrong email or password")
		return
	}

	token := MintToken(acct.profile.Email, acct.profile.Role, time.Now().Add(24*time.Hour))
	respondOK(w, token)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[req.Email]; exists {
		respondError(w, http.StatusConflict, "email already registered")
		return
	}
	s.accounts[req.Email] = &account{
		profile:  model.UserProfile{Email: req.Email, Role: model.RoleUser},
		password: req.Password,
	}
	respondOK(w, "account created")
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	if acct, found := s.accounts[req.Email]; found {
		acct.otp = ResetOTP
	}
	s.mu.Unlock()

	// Same answer whether or not the account exists.
	respondOK(w, "OTP sent")
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		OTP      string `json:"otp"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct, found := s.accounts[req.Email]
	if !found || acct.otp == "" || acct.otp != req.OTP {
		respondError(w, http.StatusBadRequest, "invalid OTP")
		return
	}
	acct.password = req.Password
	acct.otp = ""
	respondOK(w, "password reset")
}

// --- user endpoints ---

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	profile := accountFrom(r).profile
	s.mu.Unlock()
	respondOK(w, profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Fullname string `json:"fullname"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	acct := accountFrom(r)
	if req.Fullname != "" {
		acct.profile.Fullname = req.Fullname
	}
	if req.Phone != "" {
		acct.profile.Phone = req.Phone
	}
	if req.Password != "" {
		acct.password = req.Password
	}
	profile := acct.profile
	s.mu.Unlock()

	respondOK(w, profile)
}

// --- movie endpoints ---

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 8
	}
	search := strings.ToLower(r.URL.Query().Get("search"))
	genre := r.URL.Query().Get("genres")

	s.mu.Lock()
	var filtered []model.Movie
	for _, m := range s.movies {
		if search != "" && !strings.Contains(strings.ToLower(m.Title), search) {
			continue
		}
		if genre != "" && !containsFold(m.Genres, genre) {
			continue
		}
		filtered = append(filtered, m)
	}
	s.mu.Unlock()

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	respondList(w, filtered[start:end], &model.PageInfo{Page: page, TotalPages: totalPages, Total: total})
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movies {
		if m.ID == id {
			respondOK(w, m)
			return
		}
	}
	respondError(w, http.StatusNotFound, "movie not found")
}

// --- transaction endpoints ---

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req model.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Seats) == 0 {
		respondError(w, http.StatusBadRequest, "at least one seat is required")
		return
	}
	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	if req.PaymentMethodID <= 0 {
		respondError(w, http.StatusBadRequest, "payment method is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var movie *model.Movie
	for i := range s.movies {
		if s.movies[i].ID == req.MovieID {
			movie = &s.movies[i]
			break
		}
	}
	if movie == nil {
		respondError(w, http.StatusNotFound, "movie not found")
		return
	}

	var method string
	for name, id := range model.PaymentMethods {
		if id == req.PaymentMethodID {
			method = name
			break
		}
	}

	id := fmt.Sprintf("trx-%d", s.nextTxnID)
	s.nextTxnID++
	s.txns = append(s.txns, storedTxn{
		email: accountFrom(r).profile.Email,
		txn: model.Transaction{
			ID:            id,
			MovieID:       movie.ID,
			MovieTitle:    movie.Title,
			Cinema:        req.Cinema,
			Location:      req.Location,
			ShowDate:      req.ShowDate,
			ShowTime:      req.ShowTime,
			Seats:         req.Seats,
			Amount:        req.Amount,
			PaymentMethod: method,
			CreatedAt:     time.Now().UTC(),
		},
	})

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":       true,
		"transactionId": id,
	})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	email := accountFrom(r).profile.Email

	s.mu.Lock()
	txns := []model.Transaction{}
	for _, t := range s.txns {
		if t.email == email {
			txns = append(txns, t.txn)
		}
	}
	s.mu.Unlock()

	respondOK(w, txns)
}

// --- admin endpoints ---

func (s *Server) handleTicketSales(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = "movie"
	}

	s.mu.Lock()
	buckets := map[string]int{}
	for _, t := range s.txns {
		switch filter {
		case "movie":
			buckets[t.txn.MovieTitle] += t.txn.Amount
		case "location":
			buckets[t.txn.Location] += t.txn.Amount
		case "genre":
			for _, m := range s.movies {
				if m.ID == t.txn.MovieID {
					for _, g := range m.Genres {
						buckets[g] += t.txn.Amount
					}
				}
			}
		default:
			s.mu.Unlock()
			respondError(w, http.StatusBadRequest, "unknown filter")
			return
		}
	}
	s.mu.Unlock()

	points := []model.SalesPoint{}
	for name, total := range buckets {
		points = append(points, model.SalesPoint{Name: name, Total: total})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Name < points[j].Name })
	respondOK(w, points)
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var movie model.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil || movie.Title == "" {
		respondError(w, http.StatusBadRequest, "movie title is required")
		return
	}

	s.mu.Lock()
	movie.ID = s.nextMovieID
	s.nextMovieID++
	s.movies = append(s.movies, movie)
	s.mu.Unlock()

	respondOK(w, movie)
}

func (s *Server) handleDeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.movies {
		if m.ID == id {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			respondOK(w, "movie deleted")
			return
		}
	}
	respondError(w, http.StatusNotFound, "movie not found")
}

func containsFold(list []string, want string) bool {
	for _, v := range list {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
