package secretary

import (
	"time"

	"github.com/google/uuid"

	"github.com/Herve02/portfolio-secretary/internal/analysis/intent"
	"github.com/Herve02/portfolio-secretary/internal/model/conversation"
	"github.com/Herve02/portfolio-secretary/internal/render"
	"github.com/Herve02/portfolio-secretary/internal/service/delivery"
)

// Event is one unit of input to the conversation state machine: either a
// user action or the completion of a simulated capability call.
type Event interface {
	event()
}

// UtteranceEvent carries free text typed (or transcribed) by the user.
type UtteranceEvent struct {
	Text string
}

// MoodEvent switches the response tone.
type MoodEvent struct {
	Mood conversation.Mood
}

// CancelEvent leaves the scheduling or messaging flow.
type CancelEvent struct{}

// SlotsOfferedEvent delivers the result of an availability check.
type SlotsOfferedEvent struct {
	Slots []conversation.TimeSlot
}

// SlotSelectedEvent records the user's pick from the offered batch.
type SlotSelectedEvent struct {
	SlotID string
}

// BookingResultEvent delivers the outcome of a booking submission together
// with the payload snapshot taken at confirmation time.
type BookingResultEvent struct {
	Payload delivery.BookingPayload
	Result  delivery.Result
}

// MessageResultEvent delivers the outcome of a message submission.
type MessageResultEvent struct {
	Payload delivery.MessagePayload
	Result  delivery.Result
}

func (UtteranceEvent) event()     {}
func (MoodEvent) event()          {}
func (CancelEvent) event()        {}
func (SlotsOfferedEvent) event()  {}
func (SlotSelectedEvent) event()  {}
func (BookingResultEvent) event() {}
func (MessageResultEvent) event() {}

// quickActionUtterances maps quick-action buttons onto the canned utterances
// they stand for; quick actions flow through the same classification path as
// typed text.
// The projects and services utterances contain the owner's name, which the
// classifier's about rule matches before the projects/services rules, so
// those two actions produce the about response.
var quickActionUtterances = map[string]string{
	"about":    "Tell me about Herve",
	"projects": "What projects has Herve worked on?",
	"services": "What services does Herve offer?",
	"schedule": "I'd like to schedule a meeting",
	"message":  "I'd like to leave a message",
}

// UtteranceForAction resolves a quick action to its canned utterance.
func UtteranceForAction(action string) (string, bool) {
	text, ok := quickActionUtterances[action]
	return text, ok
}

// Machine is the pure transition core: state × event → state × turns. It
// owns no session storage and performs no I/O; the service around it applies
// results and schedules capability calls.
type Machine struct {
	classifier *intent.Classifier
	renderer   *render.Renderer
	now        func() time.Time
}

// NewMachine wires the classifier and renderer into a transition core.
func NewMachine(classifier *intent.Classifier, renderer *render.Renderer, now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{classifier: classifier, renderer: renderer, now: now}
}

// AgentTurn builds an agent transcript entry with rendered HTML.
func (m *Machine) AgentTurn(content string) conversation.Turn {
	return conversation.Turn{
		ID:        uuid.NewString(),
		Sender:    conversation.SenderAgent,
		Content:   content,
		HTML:      render.ToHTML(content),
		CreatedAt: m.now(),
	}
}

// UserTurn builds a user transcript entry.
func (m *Machine) UserTurn(content string) conversation.Turn {
	return conversation.Turn{
		ID:        uuid.NewString(),
		Sender:    conversation.SenderUser,
		Content:   content,
		CreatedAt: m.now(),
	}
}

// Transition applies one event to a session snapshot and returns the updated
// session. Appended turns are also returned separately so callers can stream
// them. Errors leave the session unchanged.
func (m *Machine) Transition(s conversation.Session, ev Event) (conversation.Session, []conversation.Turn, error) {
	switch e := ev.(type) {
	case UtteranceEvent:
		return m.handleUtterance(s, e.Text)
	case MoodEvent:
		s.Mood = e.Mood
		return m.reply(s, m.renderer.MoodChanged(e.Mood))
	case CancelEvent:
		return m.handleCancel(s)
	case SlotsOfferedEvent:
		if s.State != conversation.StateScheduling {
			return s, nil, conversation.ErrInvalidState
		}
		s.OfferedSlots = e.Slots
		s.SelectedSlotID = ""
		return s, nil, nil
	case SlotSelectedEvent:
		if s.State != conversation.StateScheduling {
			return s, nil, conversation.ErrInvalidState
		}
		for _, slot := range s.OfferedSlots {
			if slot.ID == e.SlotID {
				s.SelectedSlotID = e.SlotID
				return s, nil, nil
			}
		}
		return s, nil, conversation.ErrSlotNotOffered
	case BookingResultEvent:
		return m.handleBookingResult(s, e)
	case MessageResultEvent:
		return m.handleMessageResult(s, e)
	}
	return s, nil, conversation.ErrInvalidState
}

// handleUtterance classifies free text only while idle. While a form is open,
// form collection takes priority: the utterance is answered with a reminder
// and the classifier is deliberately not re-run.
func (m *Machine) handleUtterance(s conversation.Session, text string) (conversation.Session, []conversation.Turn, error) {
	if s.State != conversation.StateIdle {
		return m.reply(s, m.renderer.FormReminder(s.State))
	}

	switch m.classifier.Classify(text) {
	case intent.ScheduleMeeting:
		s.State = conversation.StateScheduling
		s.Scheduling = conversation.NewSchedulingForm()
		s.OfferedSlots = nil
		s.SelectedSlotID = ""
		return m.reply(s, m.renderer.SchedulingPrompt())
	case intent.LeaveMessage:
		s.State = conversation.StateMessaging
		s.Messaging = conversation.MessageForm{}
		return m.reply(s, m.renderer.MessagingPrompt())
	case intent.AskAbout:
		return m.reply(s, m.renderer.About(s.Mood))
	case intent.AskProjects:
		return m.reply(s, m.renderer.Projects(s.Mood))
	case intent.AskServices:
		return m.reply(s, m.renderer.Services(s.Mood))
	case intent.AskItinerary:
		return m.reply(s, m.renderer.Itinerary(s.Mood, m.now()))
	default:
		text := m.renderer.Fallback(s.Mood, s.FallbackMisses)
		s.FallbackMisses++
		return m.reply(s, text)
	}
}

func (m *Machine) handleCancel(s conversation.Session) (conversation.Session, []conversation.Turn, error) {
	switch s.State {
	case conversation.StateScheduling:
		s.State = conversation.StateIdle
		s.Scheduling = conversation.SchedulingForm{}
		s.OfferedSlots = nil
		s.SelectedSlotID = ""
		return m.reply(s, m.renderer.SchedulingCancelled())
	case conversation.StateMessaging:
		s.State = conversation.StateIdle
		s.Messaging = conversation.MessageForm{}
		return m.reply(s, m.renderer.MessagingCancelled())
	}
	return s, nil, conversation.ErrInvalidState
}

// handleBookingResult renders from the payload snapshot, never from the live
// form: the form may have changed (or been cleared) since submission.
func (m *Machine) handleBookingResult(s conversation.Session, e BookingResultEvent) (conversation.Session, []conversation.Turn, error) {
	if s.State != conversation.StateScheduling {
		return s, nil, conversation.ErrInvalidState
	}
	if !e.Result.Success {
		// Stay in scheduling so the collected form survives the failure.
		return m.reply(s, m.renderer.BookingFailed(e.Result.Message))
	}
	s.State = conversation.StateIdle
	s.Scheduling = conversation.SchedulingForm{}
	s.OfferedSlots = nil
	s.SelectedSlotID = ""
	return m.reply(s, m.renderer.BookingConfirmed(e.Payload.Form, e.Payload.Slot))
}

func (m *Machine) handleMessageResult(s conversation.Session, e MessageResultEvent) (conversation.Session, []conversation.Turn, error) {
	if s.State != conversation.StateMessaging {
		return s, nil, conversation.ErrInvalidState
	}
	if !e.Result.Success {
		return m.reply(s, m.renderer.MessageFailed(e.Result.Message))
	}
	s.State = conversation.StateIdle
	s.Messaging = conversation.MessageForm{}
	return m.reply(s, m.renderer.MessageDelivered(e.Payload.Form, s.Mood))
}

func (m *Machine) reply(s conversation.Session, content string) (conversation.Session, []conversation.Turn, error) {
	turn := m.AgentTurn(content)
	s.Transcript = append(s.Transcript, turn)
	return s, []conversation.Turn{turn}, nil
}
