package api

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/cinevo/cinevo-cli/internal/apitest"
	"github.com/cinevo/cinevo-cli/internal/logging"
	"github.com/cinevo/cinevo-cli/pkg/model"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	ts := httptest.NewServer(apitest.New().Handler())
	t.Cleanup(ts.Close)
	return New(ts.URL, logging.Discard())
}

func login(t *testing.T, c *Client, email, password string) *Client {
	t.Helper()
	token, err := c.Login(context.Background(), email, password)
	if err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
	return c.WithToken(token)
}

func TestLogin(t *testing.T) {
	c := testClient(t)

	token, err := c.Login(context.Background(), apitest.UserEmail, apitest.UserPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	c := testClient(t)

	_, err := c.Login(context.Background(), apitest.UserEmail, "nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsBusiness(err) {
		t.Errorf("expected business error, got %v", err)
	}
}

func TestLogin_TransportFailure(t *testing.T) {
	c := New("http://127.0.0.1:1", logging.Discard())

	_, err := c.Login(context.Background(), apitest.UserEmail, apitest.UserPassword)
	if err == nil {
		t.Fatal("expected error")
	}
	if IsBusiness(err) {
		t.Errorf("transport failure should not look like a business error: %v", err)
	}
}

func TestMovies_Pagination(t *testing.T) {
	c := testClient(t)

	movies, pageInfo, err := c.Movies(context.Background(), model.MovieFilter{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("movies: %v", err)
	}
	if len(movies) != 2 {
		t.Errorf("got %d movies, want 2", len(movies))
	}
	if pageInfo == nil || pageInfo.Total != 3 || pageInfo.TotalPages != 2 {
		t.Errorf("pageInfo = %+v, want total 3 over 2 pages", pageInfo)
	}
	if !pageInfo.HasMore() {
		t.Error("first of two pages should have more")
	}
}

func TestMovies_Search(t *testing.T) {
	c := testClient(t)

	movies, _, err := c.Movies(context.Background(), model.MovieFilter{Search: "inter"})
	if err != nil {
		t.Fatalf("movies: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Interstellar" {
		t.Errorf("search result = %+v", movies)
	}
}

func TestMovie_Detail(t *testing.T) {
	c := testClient(t)

	movie, err := c.Movie(context.Background(), 42)
	if err != nil {
		t.Fatalf("movie: %v", err)
	}
	if movie.Title != "Interstellar" || len(movie.Genres) == 0 {
		t.Errorf("movie = %+v", movie)
	}

	if _, err := c.Movie(context.Background(), 999); !IsBusiness(err) {
		t.Errorf("unknown movie should be a business error, got %v", err)
	}
}

func TestProfile_RequiresToken(t *testing.T) {
	c := testClient(t)

	if _, err := c.Profile(context.Background()); !IsBusiness(err) {
		t.Errorf("expected business error without token, got %v", err)
	}

	authed := login(t, c, apitest.UserEmail, apitest.UserPassword)
	profile, err := authed.Profile(context.Background())
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Email != apitest.UserEmail || profile.Role != model.RoleUser {
		t.Errorf("profile = %+v", profile)
	}
}

func TestCreateAndListTransactions(t *testing.T) {
	c := testClient(t)
	authed := login(t, c, apitest.UserEmail, apitest.UserPassword)
	ctx := context.Background()

	id, err := authed.CreateTransaction(ctx, model.TransactionRequest{
		Amount:           50000,
		Cinema:           "hiflix",
		CustomerEmail:    apitest.UserEmail,
		CustomerFullname: apitest.UserFullname,
		CustomerPhone:    "081234567890",
		Location:         "Jakarta",
		MovieID:          42,
		PaymentMethodID:  model.PaymentMethods["gopay"],
		Seats:            []string{"A1", "A2"},
		ShowDate:         "2025-06-01",
		ShowTime:         "18:00",
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	if id == "" {
		t.Fatal("empty transaction id")
	}

	txns, err := authed.Transactions(ctx)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txns) != 1 || txns[0].ID != id || txns[0].MovieTitle != "Interstellar" {
		t.Errorf("transactions = %+v", txns)
	}
}

func TestAdminEndpoints_RoleGated(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()

	user := login(t, c, apitest.UserEmail, apitest.UserPassword)
	if _, err := user.TicketSales(ctx, "movie"); !IsBusiness(err) {
		t.Errorf("user hitting admin endpoint should fail, got %v", err)
	}

	admin := login(t, c, apitest.AdminEmail, apitest.AdminPassword)
	if _, err := admin.TicketSales(ctx, "movie"); err != nil {
		t.Errorf("admin ticket sales: %v", err)
	}

	created, err := admin.CreateMovie(ctx, model.Movie{Title: "New Release", Genres: []string{"Action"}})
	if err != nil {
		t.Fatalf("create movie: %v", err)
	}
	if created.ID == 0 {
		t.Error("created movie has no id")
	}
	if err := admin.DeleteMovie(ctx, created.ID); err != nil {
		t.Errorf("delete movie: %v", err)
	}
	if err := admin.DeleteMovie(ctx, created.ID); !IsBusiness(err) {
		t.Errorf("double delete should be a business error, got %v", err)
	}
}
