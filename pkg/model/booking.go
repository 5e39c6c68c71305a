package model

// DraftStatus represents the lifecycle state of a BookingDraft.
type DraftStatus string

const (
	// DraftStatusPending is a booking that has not been paid yet.
	DraftStatusPending DraftStatus = "pending"
	// DraftStatusPaid is a confirmed, paid booking. Terminal.
	DraftStatusPaid DraftStatus = "paid"
)

// String returns the string representation of the draft status.
func (s DraftStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the draft is in a final state.
func (s DraftStatus) IsTerminal() bool {
	return s == DraftStatusPaid
}

// ValidDraftTransitions defines the allowed status transitions for drafts.
// An empty status counts as pending; drafts created before the status field
// existed rehydrate without one.
var ValidDraftTransitions = map[DraftStatus][]DraftStatus{
	"":                 {DraftStatusPending, DraftStatusPaid},
	DraftStatusPending: {DraftStatusPaid},
}

// CanTransitionTo returns true if moving from the current status to next is valid.
func (s DraftStatus) CanTransitionTo(next DraftStatus) bool {
	for _, allowed := range ValidDraftTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BookingDraft is a client-side record of an in-progress or completed ticket
// purchase. TransactionID is generated on the client when the draft is
// created and stays stable through payment; the server assigns its own id
// on confirmation, kept separately in ServerTxnID.
type BookingDraft struct {
	TransactionID string      `json:"transactionId"`
	MovieID       int         `json:"movieId,omitempty"`
	Title         string      `json:"title"`
	Genres        []string    `json:"genres,omitempty"`
	Cinema        string      `json:"cinema"`
	Date          string      `json:"date"`
	Time          string      `json:"time"`
	Location      string      `json:"location"`
	Poster        string      `json:"poster,omitempty"`
	Seats         []string    `json:"seats,omitempty"`
	Amount        int         `json:"amount,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	ServerTxnID   string      `json:"serverTransactionId,omitempty"`
	Status        DraftStatus `json:"status,omitempty"`
}

// IsPaid reports whether the draft has been paid.
func (d *BookingDraft) IsPaid() bool {
	return d.Status == DraftStatusPaid
}
