package conversation

import "time"

// Sender attributes a turn to one side of the conversation.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

// Turn is one immutable entry in the transcript. Turns are appended and never
// mutated, reordered or deleted.
type Turn struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	HTML      string    `json:"html,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
