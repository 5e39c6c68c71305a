package state

import (
	"errors"
	"slices"
	"sync"

	"github.com/cinevo/cinevo-cli/pkg/model"
)

// Slice keys for persisted state. They match the keys the Cinevo web client
// persists under, so locally stored state stays recognizable across clients.
const (
	SliceAuth   = "auth"
	SliceUser   = "user"
	SliceTicket = "ticket"
)

// ErrMissingTransactionID is returned when a draft without an id is upserted.
var ErrMissingTransactionID = errors.New("booking draft has no transaction id")

// Subscriber observes slice mutations. It receives the slice key and a
// snapshot of the slice's new value after every mutation.
type Subscriber func(slice string, value any)

// Store holds the three client state slices: the session, the loaded user
// profile, and the booking drafts. Construct one per process (or per test);
// there are no package-level instances.
//
// Mutations replace whole slice values; there is no merge. Subscribers are
// notified synchronously after each mutation, outside the store lock.
type Store struct {
	mu      sync.RWMutex
	session model.Session
	user    model.UserProfile
	drafts  []model.BookingDraft
	subs    []Subscriber
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Subscribe registers fn to be called after every mutation. Subscribers
// registered after a mutation do not see it.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) notify(slice string, value any) {
	s.mu.RLock()
	subs := slices.Clone(s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(slice, value)
	}
}

// SetSession replaces the session slice.
func (s *Store) SetSession(sess model.Session) {
	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()
	s.notify(SliceAuth, sess)
}

// ClearSession resets the session slice to its empty default.
func (s *Store) ClearSession() {
	s.SetSession(model.Session{})
}

// SetUser replaces the user profile slice.
func (s *Store) SetUser(u model.UserProfile) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	s.notify(SliceUser, u)
}

// ClearUser resets the user profile slice to its empty default.
func (s *Store) ClearUser() {
	s.SetUser(model.UserProfile{})
}

// UpsertBooking inserts or replaces the draft with the same transaction id.
// A match is replaced in place, preserving the relative order of the other
// entries; otherwise the draft is appended. After the call exactly one draft
// with that id exists, equal to the input. Idempotent for identical payloads.
func (s *Store) UpsertBooking(d model.BookingDraft) error {
	if d.TransactionID == "" {
		return ErrMissingTransactionID
	}

	s.mu.Lock()
	idx := slices.IndexFunc(s.drafts, func(e model.BookingDraft) bool {
		return e.TransactionID == d.TransactionID
	})
	if idx >= 0 {
		s.drafts[idx] = d
	} else {
		s.drafts = append(s.drafts, d)
	}
	snapshot := slices.Clone(s.drafts)
	s.mu.Unlock()

	s.notify(SliceTicket, snapshot)
	return nil
}

// Session returns the current session slice.
func (s *Store) Session() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// User returns the current user profile slice.
func (s *Store) User() model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Bookings returns a copy of the booking draft list in insertion order.
func (s *Store) Bookings() []model.BookingDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.drafts)
}

// FindBooking looks up a draft by transaction id.
func (s *Store) FindBooking(transactionID string) (model.BookingDraft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.drafts {
		if d.TransactionID == transactionID {
			return d, true
		}
	}
	return model.BookingDraft{}, false
}
