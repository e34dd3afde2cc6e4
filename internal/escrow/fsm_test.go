package escrow

import "testing"

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusCreated, StatusFunded) {
		t.Fatal("expected created -> funded to be allowed")
	}
	if CanTransition(StatusCreated, StatusReleased) {
		t.Fatal("unexpected transition allowed")
	}
	if !CanTransition(StatusFunded, StatusReleased) {
		t.Fatal("expected funded -> released to be allowed")
	}
	if !CanTransition(StatusFunded, StatusRefunded) {
		t.Fatal("expected funded -> refunded to be allowed")
	}
	if !CanTransition(StatusDisputed, StatusRefunded) {
		t.Fatal("expected disputed -> refunded to be allowed")
	}
	if CanTransition(StatusReleased, StatusRefunded) {
		t.Fatal("released is terminal")
	}
	if CanTransition("unknown", StatusFunded) {
		t.Fatal("unknown status must not transition")
	}
}

func TestTerminal(t *testing.T) {
	for _, status := range []string{StatusReleased, StatusRefunded, StatusCanceled} {
		if !Terminal(status) {
			t.Fatalf("expected %s to be terminal", status)
		}
	}
	if Terminal(StatusCreated) {
		t.Fatal("created is not terminal")
	}
}
