package conversation

import "time"

// State identifies which flow currently owns the conversation. Exactly one
// state is active at a time.
type State string

const (
	StateIdle       State = "idle"
	StateScheduling State = "scheduling"
	StateMessaging  State = "messaging"
)

// Mood selects the tone of the assistant's phrasing. It affects only which
// greeting/closing variant the renderer picks, never the conversation state.
type Mood string

const (
	MoodProfessional Mood = "professional"
	MoodFriendly     Mood = "friendly"
	MoodEnergetic    Mood = "energetic"
	MoodCalm         Mood = "calm"
)

// ParseMood validates a client-supplied mood value.
func ParseMood(raw string) (Mood, bool) {
	switch Mood(raw) {
	case MoodProfessional, MoodFriendly, MoodEnergetic, MoodCalm:
		return Mood(raw), true
	}
	return "", false
}

// Session is the root aggregate for one visitor interaction. The secretary
// service owns the canonical copy; handlers only ever see snapshots.
type Session struct {
	ID             string         `json:"id"`
	State          State          `json:"state"`
	Mood           Mood           `json:"mood"`
	Transcript     []Turn         `json:"transcript"`
	Scheduling     SchedulingForm `json:"scheduling"`
	Messaging      MessageForm    `json:"messaging"`
	OfferedSlots   []TimeSlot     `json:"offeredSlots,omitempty"`
	SelectedSlotID string         `json:"selectedSlotId,omitempty"`
	Typing         bool           `json:"typing"`
	// FallbackMisses counts unrecognized utterances so fallback responses
	// rotate instead of repeating.
	FallbackMisses int       `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

// SelectedSlot resolves the weak slot reference against the offered batch.
func (s Session) SelectedSlot() (TimeSlot, bool) {
	if s.SelectedSlotID == "" {
		return TimeSlot{}, false
	}
	for _, slot := range s.OfferedSlots {
		if slot.ID == s.SelectedSlotID {
			return slot, true
		}
	}
	return TimeSlot{}, false
}
