package model

import "testing"

func TestDraftStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   DraftStatus
		terminal bool
	}{
		{DraftStatus(""), false},
		{DraftStatusPending, false},
		{DraftStatusPaid, true},
	}
	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Errorf("DraftStatus(%q).IsTerminal() = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}

func TestDraftStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from  DraftStatus
		to    DraftStatus
		valid bool
	}{
		{DraftStatus(""), DraftStatusPending, true},
		{DraftStatus(""), DraftStatusPaid, true},
		{DraftStatusPending, DraftStatusPaid, true},

		{DraftStatusPaid, DraftStatusPending, false},
		{DraftStatusPaid, DraftStatusPaid, false},
		{DraftStatusPending, DraftStatusPending, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.valid {
			t.Errorf("DraftStatus(%q).CanTransitionTo(%q) = %v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestSession_IsExpired(t *testing.T) {
	s := Session{Token: "x"}
	if s.IsExpired() {
		t.Error("session without exp claim should not be expired")
	}
}
