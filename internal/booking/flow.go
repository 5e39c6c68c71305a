// Package booking drives the multi-step ticket purchase: draft a booking
// from a movie detail, pick seats, then confirm payment. Drafts live in the
// state store keyed by a client-generated transaction id and survive
// restarts via the persistence layer.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cinevo/cinevo-cli/internal/api"
	"github.com/cinevo/cinevo-cli/internal/state"
	"github.com/cinevo/cinevo-cli/pkg/model"
)

var (
	// ErrDraftNotFound means no draft with the given transaction id exists.
	// The caller should send the user back to the start of the flow.
	ErrDraftNotFound = errors.New("booking not found")
	// ErrAlreadyPaid means the draft reached its terminal state.
	ErrAlreadyPaid = errors.New("booking already paid")
	// ErrNotPaid means the draft has no ticket to show yet.
	ErrNotPaid = errors.New("booking not paid yet")
	// ErrNoSeats means payment was attempted before seat selection.
	ErrNoSeats = errors.New("no seats selected")
)

// SeatPrice is the per-seat ticket price in rupiah.
const SeatPrice = 25000

// ShowDetails is the user's choice on the movie detail page.
type ShowDetails struct {
	Date     string
	Time     string
	Location string
	Cinema   string
}

// Validate checks the form fields before anything touches the network.
func (s ShowDetails) Validate() error {
	switch {
	case s.Date == "":
		return errors.New("you must choose a date")
	case s.Time == "":
		return errors.New("you must choose a time")
	case s.Location == "":
		return errors.New("you must choose a location")
	case s.Cinema == "":
		return errors.New("you must choose a cinema")
	}
	return nil
}

// Payment is the user's choice on the payment page.
type Payment struct {
	Method string
	Phone  string
}

// Validate checks the payment form fields.
func (p Payment) Validate() error {
	if p.Method == "" {
		return errors.New("you must choose a payment method")
	}
	if _, ok := model.PaymentMethods[p.Method]; !ok {
		return fmt.Errorf("unknown payment method %q", p.Method)
	}
	if p.Phone == "" {
		return errors.New("you must enter a phone number")
	}
	return nil
}

// Flow orchestrates the booking steps against the store and the API.
type Flow struct {
	store  *state.Store
	client *api.Client
	logger *slog.Logger
}

// NewFlow creates a booking flow.
func NewFlow(store *state.Store, client *api.Client, logger *slog.Logger) *Flow {
	return &Flow{
		store:  store,
		client: client,
		logger: logger.With("component", "booking"),
	}
}

// StartDraft fetches the movie detail and stores a new pending draft with a
// fresh transaction id.
func (f *Flow) StartDraft(ctx context.Context, movieID int, show ShowDetails) (model.BookingDraft, error) {
	if err := show.Validate(); err != nil {
		return model.BookingDraft{}, err
	}

	movie, err := f.client.Movie(ctx, movieID)
	if err != nil {
		return model.BookingDraft{}, err
	}

	draft := model.BookingDraft{
		TransactionID: uuid.NewString(),
		MovieID:       movie.ID,
		Title:         movie.Title,
		Genres:        movie.Genres,
		Poster:        movie.PosterPath,
		Cinema:        show.Cinema,
		Date:          show.Date,
		Time:          show.Time,
		Location:      show.Location,
		Status:        model.DraftStatusPending,
	}
	if err := f.store.UpsertBooking(draft); err != nil {
		return model.BookingDraft{}, err
	}

	f.logger.Debug("draft created", "transaction_id", draft.TransactionID, "movie", movie.Title)
	return draft, nil
}

// SelectSeats records the chosen seats on an existing pending draft and
// computes the amount.
func (f *Flow) SelectSeats(transactionID string, seats []string) (model.BookingDraft, error) {
	if len(seats) == 0 {
		return model.BookingDraft{}, ErrNoSeats
	}

	draft, ok := f.store.FindBooking(transactionID)
	if !ok {
		return model.BookingDraft{}, ErrDraftNotFound
	}
	if draft.IsPaid() {
		return model.BookingDraft{}, ErrAlreadyPaid
	}

	draft.Seats = seats
	draft.Amount = len(seats) * SeatPrice
	if err := f.store.UpsertBooking(draft); err != nil {
		return model.BookingDraft{}, err
	}
	return draft, nil
}

// Pay confirms an existing draft: it posts the transaction to the API, then
// marks the draft paid with the chosen method and the server-assigned id.
// The store is only mutated after the API accepts the payment.
func (f *Flow) Pay(ctx context.Context, transactionID string, p Payment) (model.BookingDraft, error) {
	if err := p.Validate(); err != nil {
		return model.BookingDraft{}, err
	}

	draft, ok := f.store.FindBooking(transactionID)
	if !ok {
		return model.BookingDraft{}, ErrDraftNotFound
	}
	if draft.IsPaid() {
		return model.BookingDraft{}, ErrAlreadyPaid
	}
	if len(draft.Seats) == 0 {
		return model.BookingDraft{}, ErrNoSeats
	}

	profile, err := f.client.Profile(ctx)
	if err != nil {
		return model.BookingDraft{}, err
	}

	serverID, err := f.client.CreateTransaction(ctx, model.TransactionRequest{
		Amount:           draft.Amount,
		Cinema:           draft.Cinema,
		CustomerEmail:    profile.Email,
		CustomerFullname: profile.Fullname,
		CustomerPhone:    p.Phone,
		Location:         draft.Location,
		MovieID:          draft.MovieID,
		PaymentMethodID:  model.PaymentMethods[p.Method],
		Seats:            draft.Seats,
		ShowDate:         draft.Date,
		ShowTime:         draft.Time,
	})
	if err != nil {
		return model.BookingDraft{}, err
	}

	draft.Status = model.DraftStatusPaid
	draft.PaymentMethod = p.Method
	draft.ServerTxnID = serverID
	if err := f.store.UpsertBooking(draft); err != nil {
		return model.BookingDraft{}, err
	}

	f.logger.Debug("draft paid", "transaction_id", draft.TransactionID, "server_id", serverID)
	return draft, nil
}

// Ticket returns the paid draft for display on the ticket-result page.
func (f *Flow) Ticket(transactionID string) (model.BookingDraft, error) {
	draft, ok := f.store.FindBooking(transactionID)
	if !ok {
		return model.BookingDraft{}, ErrDraftNotFound
	}
	if !draft.IsPaid() {
		return model.BookingDraft{}, ErrNotPaid
	}
	return draft, nil
}
