package models

import "testing"

func TestCanTransitionReservation(t *testing.T) {
	if !CanTransitionReservation(ReservationPending, ReservationConfirmed) {
		t.Fatal("expected pending -> confirmed to be allowed")
	}
	if !CanTransitionReservation(ReservationPending, ReservationCancelled) {
		t.Fatal("expected pending -> cancelled to be allowed")
	}
	if !CanTransitionReservation(ReservationConfirmed, ReservationCancelled) {
		t.Fatal("expected confirmed -> cancelled to be allowed")
	}
	if CanTransitionReservation(ReservationConfirmed, ReservationPending) {
		t.Fatal("unexpected confirmed -> pending allowed")
	}
	if CanTransitionReservation(ReservationCancelled, ReservationPending) {
		t.Fatal("unexpected cancelled -> pending allowed")
	}
	if CanTransitionReservation(ReservationCancelled, ReservationConfirmed) {
		t.Fatal("unexpected cancelled -> confirmed allowed")
	}
	if CanTransitionReservation(ReservationPending, "unknown") {
		t.Fatal("unexpected transition to unknown status allowed")
	}
}

func TestIsValidReservationStatus(t *testing.T) {
	for _, s := range []string{ReservationPending, ReservationConfirmed, ReservationCancelled} {
		if !IsValidReservationStatus(s) {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if IsValidReservationStatus("archived") {
		t.Fatal("unexpected status accepted")
	}
}
