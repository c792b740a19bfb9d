package conversation

import "time"

// TimeSlot is one candidate meeting time offered during scheduling. Slots are
// generated fresh for every availability check and never persisted; the ID is
// unique only within its generation batch.
type TimeSlot struct {
	ID           string    `json:"id"`
	StartsAt     time.Time `json:"startsAt"`
	DisplayLabel string    `json:"displayLabel"`
}
