package persist

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/cinevo/cinevo-cli/internal/state"
	"github.com/cinevo/cinevo-cli/pkg/model"
)

// Persistor connects a Storage to a state.Store: it rehydrates the store
// from storage at startup and then mirrors every mutation back. The store
// itself knows nothing about persistence; the persistor is an ordinary
// subscriber.
type Persistor struct {
	storage Storage
	logger  *slog.Logger
}

// New creates a persistor over the given storage.
func New(storage Storage, logger *slog.Logger) *Persistor {
	return &Persistor{
		storage: storage,
		logger:  logger.With("component", "persist"),
	}
}

// Bind rehydrates the store and then attaches the write-through subscriber.
// Rehydration happens before the subscription so restored values are not
// written straight back out. Call Bind before running any command so nothing
// observes pre-rehydration state.
func (p *Persistor) Bind(ctx context.Context, st *state.Store) {
	p.Rehydrate(ctx, st)
	p.Attach(st)
}

// Rehydrate loads each slice from storage into the store. Absent or
// malformed data leaves the slice at its default; rehydration never fails,
// it only logs what it had to skip.
func (p *Persistor) Rehydrate(ctx context.Context, st *state.Store) {
	if data, ok := p.load(ctx, state.SliceAuth); ok {
		var sess model.Session
		if err := json.Unmarshal(data, &sess); err != nil {
			p.logger.Warn("discarding malformed persisted slice", "slice", state.SliceAuth, "error", err)
		} else {
			st.SetSession(sess)
		}
	}

	if data, ok := p.load(ctx, state.SliceUser); ok {
		var user model.UserProfile
		if err := json.Unmarshal(data, &user); err != nil {
			p.logger.Warn("discarding malformed persisted slice", "slice", state.SliceUser, "error", err)
		} else {
			st.SetUser(user)
		}
	}

	if data, ok := p.load(ctx, state.SliceTicket); ok {
		var drafts []model.BookingDraft
		if err := json.Unmarshal(data, &drafts); err != nil {
			p.logger.Warn("discarding malformed persisted slice", "slice", state.SliceTicket, "error", err)
			return
		}
		for _, d := range drafts {
			if err := st.UpsertBooking(d); err != nil {
				p.logger.Warn("skipping persisted draft", "error", err)
			}
		}
	}
}

// Attach subscribes the write-through mirror. Every mutation is serialized
// and written under its slice key; a failed write is logged, not surfaced,
// since in-memory state stays authoritative for the session.
func (p *Persistor) Attach(st *state.Store) {
	st.Subscribe(func(slice string, value any) {
		data, err := json.Marshal(value)
		if err != nil {
			p.logger.Warn("marshal slice failed", "slice", slice, "error", err)
			return
		}
		if err := p.storage.Put(context.Background(), slice, data); err != nil {
			p.logger.Warn("persist write failed", "slice", slice, "error", err)
		}
	})
}

func (p *Persistor) load(ctx context.Context, slice string) ([]byte, bool) {
	data, err := p.storage.Get(ctx, slice)
	if err != nil {
		p.logger.Warn("read persisted slice failed", "slice", slice, "error", err)
		return nil, false
	}
	return data, data != nil
}
