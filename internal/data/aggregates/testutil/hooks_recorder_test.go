package testutil

import (
	"testing"
	"time"
)

func TestHooksRecorder_CapturesSignals(t *testing.T) {
	h := &HooksRecorder{}
	h.ObserveOperation("Professional.SaveAddress", "success", 10*time.Millisecond)
	h.IncConflict("Professional.AddAssociation")
	h.IncLimitExceeded("Professional.AddAssociation")

	if len(h.Operations) != 1 {
		t.Fatalf("expected 1 op event, got %d", len(h.Operations))
	}
	if h.Operations[0].Name != "Professional.SaveAddress" || h.Operations[0].Status != "success" {
		t.Fatalf("unexpected op event: %+v", h.Operations[0])
	}
	if len(h.Conflicts) != 1 || h.Conflicts[0] != "Professional.AddAssociation" {
		t.Fatalf("unexpected conflicts: %+v", h.Conflicts)
	}
	if len(h.Limits) != 1 || h.Limits[0] != "Professional.AddAssociation" {
		t.Fatalf("unexpected limits: %+v", h.Limits)
	}
	if got := h.Statuses(); len(got) != 1 || got[0] != "success" {
		t.Fatalf("unexpected statuses: %+v", got)
	}
}
