// Package delivery is the form-submission capability boundary. The portfolio
// has no real scheduling or mail backend, so the default implementation
// simulates one: it succeeds at a configurable rate and reports a
// user-facing message either way. The secretary consumes the Result as an
// event and renders it; it never talks to a network itself.
package delivery

import (
	"context"
	"math/rand"
	"sync"

	"github.com/Herve02/portfolio-secretary/internal/model/conversation"
)

// BookingPayload is the snapshot submitted when a meeting is confirmed.
type BookingPayload struct {
	Form conversation.SchedulingForm `json:"form"`
	Slot conversation.TimeSlot       `json:"slot"`
}

// MessagePayload is the snapshot submitted when a message is sent.
type MessagePayload struct {
	Form conversation.MessageForm `json:"form"`
}

// Result reports the outcome of a submission together with a user-facing
// message.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submitter delivers form payloads to the outside world.
type Submitter interface {
	SubmitBooking(ctx context.Context, payload BookingPayload) Result
	SubmitMessage(ctx context.Context, payload MessagePayload) Result
}

// Simulated implements Submitter with a success-rate coin flip in place of
// real delivery. Rate 1.0 always succeeds, 0.0 always fails.
type Simulated struct {
	mu   sync.Mutex
	rate float64
	rng  *rand.Rand
}

// NewSimulated returns a simulated submitter with the given success rate,
// clamped to [0, 1]. The seed makes test runs reproducible.
func NewSimulated(rate float64, seed int64) *Simulated {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return &Simulated{rate: rate, rng: rand.New(rand.NewSource(seed))}
}

// SubmitBooking simulates delivering a booking to the calendar backend.
func (s *Simulated) SubmitBooking(_ context.Context, _ BookingPayload) Result {
	if s.roll() {
		return Result{Success: true, Message: "Your booking has been recorded."}
	}
	return Result{Success: false, Message: "the calendar service did not respond"}
}

// SubmitMessage simulates delivering a message via the mail backend.
func (s *Simulated) SubmitMessage(_ context.Context, _ MessagePayload) Result {
	if s.roll() {
		return Result{
			Success: true,
			Message: "Your message has been sent successfully! I'll get back to you within 24 hours.",
		}
	}
	return Result{
		Success: false,
		Message: "there was an error sending your message. Please try again or contact me directly via email",
	}
}

func (s *Simulated) roll() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < s.rate
}
