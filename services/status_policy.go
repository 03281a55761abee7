package services

import "github.com/cleanease/cleanease-api/models"

// transitions describes the booking lifecycle:
// pending -> confirmed -> completed, with cancellation possible from
// pending or confirmed. Completed and cancelled are terminal.
var transitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted, models.BookingStatusCancelled},
	models.BookingStatusCompleted: {},
	models.BookingStatusCancelled: {},
}

// CanTransition reports whether a booking may move from one status to
// another. Setting the same status again is allowed so that full-record
// updates stay idempotent.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further status change is possible.
func IsTerminal(status string) bool {
	return len(transitions[status]) == 0
}
