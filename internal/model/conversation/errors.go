package conversation

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound signals an unknown session identifier.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidState signals an event that the current state cannot accept,
	// e.g. confirming a booking while idle.
	ErrInvalidState = errors.New("event not valid in current conversation state")
	// ErrNoSlotSelected signals a booking confirmation without a chosen slot.
	ErrNoSlotSelected = errors.New("no time slot selected")
	// ErrSlotNotOffered signals a slot selection outside the offered batch.
	ErrSlotNotOffered = errors.New("slot is not part of the offered batch")
)

// ValidationError reports an incomplete or invalid form field. It is surfaced
// inline to the client and never changes the conversation state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
