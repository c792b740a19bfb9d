package secretary_test

import (
	"testing"
	"time"

	"github.com/Herve02/portfolio-secretary/internal/schedule"
	"github.com/Herve02/portfolio-secretary/internal/service/secretary"
)

func TestGenerateStartsTomorrow(t *testing.T) {
	// Wednesday; tomorrow and the day after are weekdays.
	clock := schedule.NewManualClock(time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC))
	gen := secretary.NewSlotGenerator(clock, time.UTC)

	slots := gen.Generate("")
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}

	want := []time.Time{
		time.Date(2025, time.March, 13, 9, 0, 0, 0, time.UTC),  // Thursday
		time.Date(2025, time.March, 14, 11, 0, 0, 0, time.UTC), // Friday
		time.Date(2025, time.March, 17, 13, 0, 0, 0, time.UTC), // Saturday shifted to Monday
	}
	for i, slot := range slots {
		if !slot.StartsAt.Equal(want[i]) {
			t.Fatalf("slot %d starts at %v, want %v", i, slot.StartsAt, want[i])
		}
		if slot.ID != "slot-"+string(rune('0'+i)) {
			t.Fatalf("slot %d id = %q", i, slot.ID)
		}
	}
}

func TestGenerateSkipsWeekends(t *testing.T) {
	// Friday afternoon: tomorrow is Saturday, so every offset lands on a
	// weekend or shifts past it.
	clock := schedule.NewManualClock(time.Date(2025, time.March, 14, 16, 0, 0, 0, time.UTC))
	gen := secretary.NewSlotGenerator(clock, time.UTC)

	for _, slot := range gen.Generate("") {
		if wd := slot.StartsAt.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("slot %s falls on %v", slot.ID, wd)
		}
	}
}

func TestGenerateSaturdayShiftsToMonday(t *testing.T) {
	// Friday: the first offset is Saturday and must shift to Monday 09:00.
	clock := schedule.NewManualClock(time.Date(2025, time.March, 14, 8, 0, 0, 0, time.UTC))
	gen := secretary.NewSlotGenerator(clock, time.UTC)

	slots := gen.Generate("")
	first := time.Date(2025, time.March, 17, 9, 0, 0, 0, time.UTC)
	if !slots[0].StartsAt.Equal(first) {
		t.Fatalf("first slot starts at %v, want %v", slots[0].StartsAt, first)
	}
}

func TestGenerateHonorsPreferredDate(t *testing.T) {
	clock := schedule.NewManualClock(time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC))
	gen := secretary.NewSlotGenerator(clock, time.UTC)

	// Slots begin the day after the preferred date, not the preferred date
	// itself.
	slots := gen.Generate("2025-03-24") // a Monday
	first := time.Date(2025, time.March, 25, 9, 0, 0, 0, time.UTC)
	if !slots[0].StartsAt.Equal(first) {
		t.Fatalf("first slot starts at %v, want %v", slots[0].StartsAt, first)
	}
}

func TestGenerateIgnoresMalformedPreferredDate(t *testing.T) {
	clock := schedule.NewManualClock(time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC))
	gen := secretary.NewSlotGenerator(clock, time.UTC)

	slots := gen.Generate("next tuesday")
	first := time.Date(2025, time.March, 13, 9, 0, 0, 0, time.UTC)
	if !slots[0].StartsAt.Equal(first) {
		t.Fatalf("first slot starts at %v, want %v", slots[0].StartsAt, first)
	}
}

func TestGenerateLabelsCarryTimezone(t *testing.T) {
	clock := schedule.NewManualClock(time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC))
	gen := secretary.NewSlotGenerator(clock, time.UTC)

	slot := gen.Generate("")[0]
	want := "Thursday, March 13, 2025 at 9:00 AM (UTC)"
	if slot.DisplayLabel != want {
		t.Fatalf("label = %q, want %q", slot.DisplayLabel, want)
	}
}
