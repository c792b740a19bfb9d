// Package secretary drives the scripted conversation behind the portfolio
// chat widget: intent classification, the scheduling and messaging flows, and
// the simulated latency around availability checks and submissions.
package secretary

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Herve02/portfolio-secretary/internal/model/conversation"
	"github.com/Herve02/portfolio-secretary/internal/schedule"
	"github.com/Herve02/portfolio-secretary/internal/service/delivery"
)

// Delays configures the simulated latency for each capability call.
type Delays struct {
	Typing       time.Duration
	Availability time.Duration
	Booking      time.Duration
	Message      time.Duration
}

// DefaultDelays mirrors the latency the widget simulates in production.
func DefaultDelays() Delays {
	return Delays{
		Typing:       1 * time.Second,
		Availability: 1500 * time.Millisecond,
		Booking:      2 * time.Second,
		Message:      1500 * time.Millisecond,
	}
}

type sessionEntry struct {
	session conversation.Session
	// epoch invalidates pending delayed callbacks: Cancel bumps it, and a
	// callback created under an older epoch becomes a no-op.
	epoch int
}

// Service owns the conversation sessions. Each user action is processed
// atomically under the mutex; delayed completions re-acquire it and apply to
// whatever session state exists at fire time.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry

	machine   *Machine
	slots     *SlotGenerator
	submitter delivery.Submitter
	scheduler schedule.Scheduler
	delays    Delays
}

// NewService assembles the conversation engine.
func NewService(machine *Machine, slots *SlotGenerator, submitter delivery.Submitter, scheduler schedule.Scheduler, delays Delays) *Service {
	return &Service{
		sessions:  make(map[string]*sessionEntry),
		machine:   machine,
		slots:     slots,
		submitter: submitter,
		scheduler: scheduler,
		delays:    delays,
	}
}

// CreateSession provisions a session with the opening greeting turn.
func (s *Service) CreateSession(_ context.Context) conversation.Session {
	greeting := s.machine.AgentTurn(s.machine.renderer.Greeting())
	session := conversation.Session{
		ID:         uuid.NewString(),
		State:      conversation.StateIdle,
		Mood:       conversation.MoodProfessional,
		Transcript: []conversation.Turn{greeting},
		Scheduling: conversation.NewSchedulingForm(),
		CreatedAt:  s.machine.now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = &sessionEntry{session: session}
	s.mu.Unlock()

	return cloneSession(session)
}

// Session returns a snapshot of the session.
func (s *Service) Session(_ context.Context, sessionID string) (conversation.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return conversation.Session{}, conversation.ErrSessionNotFound
	}
	return cloneSession(entry.session), nil
}

// Transcript returns a copy of the session's turns.
func (s *Service) Transcript(_ context.Context, sessionID string) ([]conversation.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, conversation.ErrSessionNotFound
	}
	turns := make([]conversation.Turn, len(entry.session.Transcript))
	copy(turns, entry.session.Transcript)
	return turns, nil
}

// ProcessMessage appends the user turn immediately and schedules the agent
// reply behind the typing delay. The reply applies to the session state at
// fire time, not at submission time.
func (s *Service) ProcessMessage(_ context.Context, sessionID, text string) (conversation.Turn, error) {
	if text == "" {
		return conversation.Turn{}, &conversation.ValidationError{Field: "content", Reason: "message is empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return conversation.Turn{}, conversation.ErrSessionNotFound
	}

	turn := s.machine.UserTurn(text)
	entry.session.Transcript = append(entry.session.Transcript, turn)
	entry.session.Typing = true

	epoch := entry.epoch
	s.scheduler.After(s.delays.Typing, func() {
		s.applyDelayed(sessionID, epoch, UtteranceEvent{Text: text})
	})

	return turn, nil
}

// QuickAction translates a quick-action button into its canned utterance and
// runs it through the normal message path.
func (s *Service) QuickAction(ctx context.Context, sessionID, action string) (conversation.Turn, error) {
	text, ok := UtteranceForAction(action)
	if !ok {
		return conversation.Turn{}, &conversation.ValidationError{Field: "action", Reason: "unknown quick action"}
	}
	return s.ProcessMessage(ctx, sessionID, text)
}

// SetMood switches the response tone and acknowledges immediately.
func (s *Service) SetMood(_ context.Context, sessionID string, mood conversation.Mood) error {
	return s.applyNow(sessionID, MoodEvent{Mood: mood})
}

// Cancel leaves the current flow, discards its form, and invalidates every
// pending delayed completion for the session.
func (s *Service) Cancel(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return conversation.ErrSessionNotFound
	}

	updated, _, err := s.machine.Transition(entry.session, CancelEvent{})
	if err != nil {
		return err
	}
	entry.session = updated
	entry.session.Typing = false
	entry.epoch++
	return nil
}

// UpdateSchedulingField applies one pure form update while scheduling.
func (s *Service) UpdateSchedulingField(_ context.Context, sessionID, field, value string) (conversation.SchedulingForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return conversation.SchedulingForm{}, conversation.ErrSessionNotFound
	}
	if entry.session.State != conversation.StateScheduling {
		return conversation.SchedulingForm{}, conversation.ErrInvalidState
	}
	updated, err := conversation.UpdateSchedulingField(entry.session.Scheduling, field, value)
	if err != nil {
		return entry.session.Scheduling, err
	}
	entry.session.Scheduling = updated
	return updated, nil
}

// UpdateMessageField applies one pure form update while messaging.
func (s *Service) UpdateMessageField(_ context.Context, sessionID, field, value string) (conversation.MessageForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return conversation.MessageForm{}, conversation.ErrSessionNotFound
	}
	if entry.session.State != conversation.StateMessaging {
		return conversation.MessageForm{}, conversation.ErrInvalidState
	}
	updated, err := conversation.UpdateMessageField(entry.session.Messaging, field, value)
	if err != nil {
		return entry.session.Messaging, err
	}
	entry.session.Messaging = updated
	return updated, nil
}

// CheckAvailability validates the scheduling form and schedules slot
// generation behind the simulated availability delay.
func (s *Service) CheckAvailability(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return conversation.ErrSessionNotFound
	}
	if entry.session.State != conversation.StateScheduling {
		return conversation.ErrInvalidState
	}
	if err := entry.session.Scheduling.Validate(s.slots.clock.Now().In(s.slots.timezone)); err != nil {
		return err
	}

	preferred := entry.session.Scheduling.PreferredDate
	entry.session.Typing = true
	epoch := entry.epoch
	s.scheduler.After(s.delays.Availability, func() {
		slots := s.slots.Generate(preferred)
		s.applyDelayed(sessionID, epoch, SlotsOfferedEvent{Slots: slots})
	})
	return nil
}

// SelectSlot records the user's choice from the offered batch.
func (s *Service) SelectSlot(_ context.Context, sessionID, slotID string) error {
	return s.applyNow(sessionID, SlotSelectedEvent{SlotID: slotID})
}

// ConfirmBooking snapshots the form and selected slot, submits the payload,
// and renders the outcome when the simulated delivery completes.
func (s *Service) ConfirmBooking(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return conversation.ErrSessionNotFound
	}
	if entry.session.State != conversation.StateScheduling {
		return conversation.ErrInvalidState
	}
	slot, ok := entry.session.SelectedSlot()
	if !ok {
		return conversation.ErrNoSlotSelected
	}

	payload := delivery.BookingPayload{Form: entry.session.Scheduling, Slot: slot}
	entry.session.Typing = true
	epoch := entry.epoch
	s.scheduler.After(s.delays.Booking, func() {
		result := s.submitter.SubmitBooking(context.WithoutCancel(ctx), payload)
		s.applyDelayed(sessionID, epoch, BookingResultEvent{Payload: payload, Result: result})
	})
	return nil
}

// SubmitMessage validates, snapshots and submits the message form.
func (s *Service) SubmitMessage(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return conversation.ErrSessionNotFound
	}
	if entry.session.State != conversation.StateMessaging {
		return conversation.ErrInvalidState
	}
	if err := entry.session.Messaging.Validate(); err != nil {
		return err
	}

	payload := delivery.MessagePayload{Form: entry.session.Messaging}
	entry.session.Typing = true
	epoch := entry.epoch
	s.scheduler.After(s.delays.Message, func() {
		result := s.submitter.SubmitMessage(context.WithoutCancel(ctx), payload)
		s.applyDelayed(sessionID, epoch, MessageResultEvent{Payload: payload, Result: result})
	})
	return nil
}

// applyNow runs a transition synchronously under the lock.
func (s *Service) applyNow(sessionID string, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return conversation.ErrSessionNotFound
	}
	updated, _, err := s.machine.Transition(entry.session, ev)
	if err != nil {
		return err
	}
	entry.session = updated
	return nil
}

// applyDelayed runs a transition from a scheduled callback. A stale epoch
// means the flow was cancelled after the task was queued; the completion is
// then a no-op.
func (s *Service) applyDelayed(sessionID string, epoch int, ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	if entry.epoch != epoch {
		log.Printf("[secretary] dropping stale completion for session=%s", sessionID)
		return
	}

	entry.session.Typing = false
	updated, _, err := s.machine.Transition(entry.session, ev)
	if err != nil {
		log.Printf("[secretary] delayed transition failed for session=%s: %v", sessionID, err)
		return
	}
	entry.session = updated
}

func cloneSession(s conversation.Session) conversation.Session {
	clone := s
	clone.Transcript = make([]conversation.Turn, len(s.Transcript))
	copy(clone.Transcript, s.Transcript)
	if s.OfferedSlots != nil {
		clone.OfferedSlots = make([]conversation.TimeSlot, len(s.OfferedSlots))
		copy(clone.OfferedSlots, s.OfferedSlots)
	}
	return clone
}
