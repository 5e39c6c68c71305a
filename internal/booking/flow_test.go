package booking

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/cinevo/cinevo-cli/internal/api"
	"github.com/cinevo/cinevo-cli/internal/apitest"
	"github.com/cinevo/cinevo-cli/internal/logging"
	"github.com/cinevo/cinevo-cli/internal/state"
	"github.com/cinevo/cinevo-cli/pkg/model"
)

func testFlow(t *testing.T) (*Flow, *state.Store) {
	t.Helper()
	ts := httptest.NewServer(apitest.New().Handler())
	t.Cleanup(ts.Close)

	client := api.New(ts.URL, logging.Discard())
	token, err := client.Login(context.Background(), apitest.UserEmail, apitest.UserPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	store := state.New()
	return NewFlow(store, client.WithToken(token), logging.Discard()), store
}

func show() ShowDetails {
	return ShowDetails{Date: "2025-06-01", Time: "18:00", Location: "Jakarta", Cinema: "hiflix"}
}

func TestStartDraft(t *testing.T) {
	flow, store := testFlow(t)

	draft, err := flow.StartDraft(context.Background(), 42, show())
	if err != nil {
		t.Fatalf("start draft: %v", err)
	}
	if draft.TransactionID == "" {
		t.Error("draft has no transaction id")
	}
	if draft.Title != "Interstellar" {
		t.Errorf("title = %q", draft.Title)
	}
	if draft.Status != model.DraftStatusPending {
		t.Errorf("status = %q, want pending", draft.Status)
	}

	stored, ok := store.FindBooking(draft.TransactionID)
	if !ok {
		t.Fatal("draft not in store")
	}
	if stored.MovieID != 42 {
		t.Errorf("stored movie id = %d", stored.MovieID)
	}
}

func TestStartDraft_FreshIDs(t *testing.T) {
	flow, store := testFlow(t)
	ctx := context.Background()

	a, err := flow.StartDraft(ctx, 42, show())
	if err != nil {
		t.Fatal(err)
	}
	b, err := flow.StartDraft(ctx, 42, show())
	if err != nil {
		t.Fatal(err)
	}
	if a.TransactionID == b.TransactionID {
		t.Error("two drafts share a transaction id")
	}
	if len(store.Bookings()) != 2 {
		t.Errorf("store has %d drafts, want 2", len(store.Bookings()))
	}
}

func TestStartDraft_Validation(t *testing.T) {
	flow, store := testFlow(t)

	tests := []ShowDetails{
		{Time: "18:00", Location: "Jakarta", Cinema: "hiflix"},
		{Date: "2025-06-01", Location: "Jakarta", Cinema: "hiflix"},
		{Date: "2025-06-01", Time: "18:00", Cinema: "hiflix"},
		{Date: "2025-06-01", Time: "18:00", Location: "Jakarta"},
	}
	for _, tt := range tests {
		if _, err := flow.StartDraft(context.Background(), 42, tt); err == nil {
			t.Errorf("StartDraft(%+v) succeeded, want validation error", tt)
		}
	}
	if len(store.Bookings()) != 0 {
		t.Error("rejected drafts reached the store")
	}
}

func TestSelectSeats(t *testing.T) {
	flow, _ := testFlow(t)

	draft, err := flow.StartDraft(context.Background(), 42, show())
	if err != nil {
		t.Fatal(err)
	}

	updated, err := flow.SelectSeats(draft.TransactionID, []string{"A1", "A2"})
	if err != nil {
		t.Fatalf("select seats: %v", err)
	}
	if updated.Amount != 2*SeatPrice {
		t.Errorf("amount = %d, want %d", updated.Amount, 2*SeatPrice)
	}
	if updated.Status != model.DraftStatusPending {
		t.Errorf("status = %q, seats should not pay the draft", updated.Status)
	}
}

func TestSelectSeats_UnknownDraft(t *testing.T) {
	flow, store := testFlow(t)

	if _, err := flow.SelectSeats("missing", []string{"A1"}); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("err = %v, want ErrDraftNotFound", err)
	}
	if len(store.Bookings()) != 0 {
		t.Error("store mutated by failed lookup")
	}
}

func TestPay(t *testing.T) {
	flow, store := testFlow(t)
	ctx := context.Background()

	draft, err := flow.StartDraft(ctx, 42, show())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := flow.SelectSeats(draft.TransactionID, []string{"C4", "C5"}); err != nil {
		t.Fatal(err)
	}

	paid, err := flow.Pay(ctx, draft.TransactionID, Payment{Method: "gopay", Phone: "081234567890"})
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if paid.Status != model.DraftStatusPaid {
		t.Errorf("status = %q, want paid", paid.Status)
	}
	if paid.PaymentMethod != "gopay" {
		t.Errorf("payment method = %q", paid.PaymentMethod)
	}
	if paid.ServerTxnID == "" {
		t.Error("no server transaction id recorded")
	}
	if paid.TransactionID != draft.TransactionID {
		t.Error("client transaction id changed on payment")
	}

	// Still exactly one entry for the id, now paid.
	if got := store.Bookings(); len(got) != 1 || !got[0].IsPaid() {
		t.Errorf("store = %+v, want single paid draft", got)
	}
}

func TestPay_UnknownDraft(t *testing.T) {
	flow, store := testFlow(t)

	_, err := flow.Pay(context.Background(), "missing", Payment{Method: "gopay", Phone: "081"})
	if !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("err = %v, want ErrDraftNotFound", err)
	}
	if len(store.Bookings()) != 0 {
		t.Error("store mutated on failed payment lookup")
	}
}

func TestPay_Twice(t *testing.T) {
	flow, _ := testFlow(t)
	ctx := context.Background()

	draft, err := flow.StartDraft(ctx, 42, show())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := flow.SelectSeats(draft.TransactionID, []string{"A1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := flow.Pay(ctx, draft.TransactionID, Payment{Method: "ovo", Phone: "081"}); err != nil {
		t.Fatal(err)
	}

	if _, err := flow.Pay(ctx, draft.TransactionID, Payment{Method: "ovo", Phone: "081"}); !errors.Is(err, ErrAlreadyPaid) {
		t.Errorf("second pay = %v, want ErrAlreadyPaid", err)
	}
}

func TestPay_WithoutSeats(t *testing.T) {
	flow, _ := testFlow(t)
	ctx := context.Background()

	draft, err := flow.StartDraft(ctx, 42, show())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := flow.Pay(ctx, draft.TransactionID, Payment{Method: "gopay", Phone: "081"}); !errors.Is(err, ErrNoSeats) {
		t.Errorf("err = %v, want ErrNoSeats", err)
	}
}

func TestTicket(t *testing.T) {
	flow, _ := testFlow(t)
	ctx := context.Background()

	draft, err := flow.StartDraft(ctx, 42, show())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := flow.Ticket(draft.TransactionID); !errors.Is(err, ErrNotPaid) {
		t.Errorf("unpaid ticket = %v, want ErrNotPaid", err)
	}
	if _, err := flow.Ticket("missing"); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("missing ticket = %v, want ErrDraftNotFound", err)
	}

	if _, err := flow.SelectSeats(draft.TransactionID, []string{"A1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := flow.Pay(ctx, draft.TransactionID, Payment{Method: "dana", Phone: "081"}); err != nil {
		t.Fatal(err)
	}

	ticket, err := flow.Ticket(draft.TransactionID)
	if err != nil {
		t.Fatalf("ticket: %v", err)
	}
	if ticket.Title != "Interstellar" || !ticket.IsPaid() {
		t.Errorf("ticket = %+v", ticket)
	}
}
