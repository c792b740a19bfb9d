package secretary

import (
	"strconv"
	"time"

	"github.com/Herve02/portfolio-secretary/internal/model/conversation"
	"github.com/Herve02/portfolio-secretary/internal/schedule"
)

// SlotGenerator produces candidate meeting slots. It is deterministic given
// the clock: no calendar system is consulted.
type SlotGenerator struct {
	clock    schedule.Clock
	timezone *time.Location
}

// NewSlotGenerator builds a generator for the business timezone.
func NewSlotGenerator(clock schedule.Clock, timezone *time.Location) *SlotGenerator {
	if timezone == nil {
		timezone = time.UTC
	}
	return &SlotGenerator{clock: clock, timezone: timezone}
}

// Generate returns exactly three slots. The base day is the day after the
// preferred date (or after today when none is given); day offsets 0,1,2 that
// land on a weekend shift forward by two days, and each slot takes a distinct
// business hour (09:00, 11:00, 13:00). Offsets that collide on the same
// shifted weekday are kept as-is rather than de-duplicated.
func (g *SlotGenerator) Generate(preferredDate string) []conversation.TimeSlot {
	base := g.clock.Now().In(g.timezone)
	if preferredDate != "" {
		if parsed, err := time.ParseInLocation(conversation.PreferredDateLayout, preferredDate, g.timezone); err == nil {
			base = parsed
		}
	}
	base = base.AddDate(0, 0, 1)

	slots := make([]conversation.TimeSlot, 0, 3)
	for i := 0; i < 3; i++ {
		day := base.AddDate(0, 0, i)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			day = day.AddDate(0, 0, 2)
		}
		startsAt := time.Date(day.Year(), day.Month(), day.Day(), 9+2*i, 0, 0, 0, g.timezone)
		slots = append(slots, conversation.TimeSlot{
			ID:           "slot-" + strconv.Itoa(i),
			StartsAt:     startsAt,
			DisplayLabel: startsAt.Format("Monday, January 2, 2006 at 3:04 PM") + " (" + g.timezone.String() + ")",
		})
	}
	return slots
}
