package schedule_test

import (
	"testing"
	"time"

	"github.com/Herve02/portfolio-secretary/internal/schedule"
)

func TestManualSchedulerFiresOnAdvance(t *testing.T) {
	clock := schedule.NewManualClock(time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC))
	sched := schedule.NewManualScheduler(clock)

	fired := false
	sched.After(time.Second, func() { fired = true })

	sched.Advance(500 * time.Millisecond)
	if fired {
		t.Fatal("task fired before its due time")
	}

	sched.Advance(500 * time.Millisecond)
	if !fired {
		t.Fatal("task did not fire at its due time")
	}
	if sched.PendingCount() != 0 {
		t.Fatalf("pending count = %d, want 0", sched.PendingCount())
	}
}

func TestManualSchedulerFiresInDueOrder(t *testing.T) {
	clock := schedule.NewManualClock(time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC))
	sched := schedule.NewManualScheduler(clock)

	var order []string
	sched.After(2*time.Second, func() { order = append(order, "b") })
	sched.After(time.Second, func() { order = append(order, "a") })
	sched.After(2*time.Second, func() { order = append(order, "c") })

	sched.Advance(3 * time.Second)

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("fire order = %v, want [a b c]", order)
	}
}

func TestManualSchedulerCancel(t *testing.T) {
	clock := schedule.NewManualClock(time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC))
	sched := schedule.NewManualScheduler(clock)

	fired := false
	task := sched.After(time.Second, func() { fired = true })

	if !task.Cancel() {
		t.Fatal("first cancel should succeed")
	}
	if task.Cancel() {
		t.Fatal("second cancel should report false")
	}

	sched.Advance(2 * time.Second)
	if fired {
		t.Fatal("cancelled task fired")
	}
}

func TestManualSchedulerChainedTasks(t *testing.T) {
	clock := schedule.NewManualClock(time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC))
	sched := schedule.NewManualScheduler(clock)

	var order []string
	sched.After(time.Second, func() {
		order = append(order, "outer")
		sched.After(time.Second, func() { order = append(order, "inner") })
	})

	// A single wide advance runs the chained task too when it falls inside
	// the window.
	sched.Advance(5 * time.Second)

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Fatalf("fire order = %v, want [outer inner]", order)
	}
}

func TestManualClockAdvance(t *testing.T) {
	start := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)
	clock := schedule.NewManualClock(start)

	if !clock.Now().Equal(start) {
		t.Fatalf("Now = %v, want %v", clock.Now(), start)
	}

	clock.Advance(90 * time.Minute)
	want := start.Add(90 * time.Minute)
	if !clock.Now().Equal(want) {
		t.Fatalf("Now = %v, want %v", clock.Now(), want)
	}
}
