package quest

import (
	"testing"

	"github.com/nathoo/neonboroughs/engine/world"
	"github.com/nathoo/neonboroughs/types"
)

// scriptedPicker replays fixed pick outcomes.
type scriptedPicker struct {
	picks []int
}

func (p *scriptedPicker) Pick(length int) int {
	if len(p.picks) == 0 {
		return 0
	}
	v := p.picks[0]
	p.picks = p.picks[1:]
	return v % length
}

func TestNew_AssignsShift(t *testing.T) {
	w := world.New(nil)
	// taskCounts index 1 -> 3 tasks; first dropoff at spot index 0.
	d := New(w, &scriptedPicker{picks: []int{1, 0}}, "downtown", "courier office")

	if d.TotalTasks != 3 {
		t.Errorf("expected 3 tasks, got %d", d.TotalTasks)
	}
	if d.Completed != 0 || d.PickedUp {
		t.Error("fresh shift should be unstarted")
	}
	if !d.AtPickup("downtown", "courier office") {
		t.Error("pickup should be the courier office")
	}
	if d.AtDropoff("downtown", "courier office") {
		t.Error("dropoff must never be the pickup point")
	}
}

func TestDelivery_FullLifecycle(t *testing.T) {
	w := world.New(nil)
	d := New(w, &scriptedPicker{picks: []int{0, 0}}, "downtown", "courier office")
	if d.TotalTasks != 2 {
		t.Fatalf("expected 2 tasks, got %d", d.TotalTasks)
	}

	d.Pickup()
	if !d.PickedUp {
		t.Fatal("pickup should mark the package collected")
	}

	// First delivery: a task remains, so a new dropoff is rolled and the
	// courier stays in transit.
	done := d.CompleteTask(w, &scriptedPicker{picks: []int{2}})
	if done {
		t.Fatal("shift should not be over after 1 of 2 tasks")
	}
	if d.Completed != 1 || !d.PickedUp {
		t.Errorf("expected completed=1 in transit, got completed=%d pickedUp=%v",
			d.Completed, d.PickedUp)
	}

	// Final delivery ends the shift.
	done = d.CompleteTask(w, &scriptedPicker{})
	if !done {
		t.Fatal("shift should be over after the last task")
	}
	if d.Completed != d.TotalTasks {
		t.Errorf("expected completed=%d, got %d", d.TotalTasks, d.Completed)
	}
}

func TestRollDropoff_NeverPickup(t *testing.T) {
	w := world.New(nil)

	// Exhaust every possible pick index; none may land on the pickup.
	total := 0
	for _, dist := range w.Districts {
		total += len(dist.Places)
	}
	for i := 0; i < total; i++ {
		d := New(w, &scriptedPicker{picks: []int{0, i}}, "downtown", "courier office")
		if d.AtDropoff("downtown", "courier office") {
			t.Fatalf("pick %d produced a dropoff at the pickup point", i)
		}
	}
}

func TestRollDropoff_DegenerateCity(t *testing.T) {
	w := world.New(&types.WorldConfig{
		Districts:     []types.DistrictDef{{ID: "only", Places: []string{"office"}}},
		StartDistrict: "only",
		StartPlace:    "office",
	})
	d := New(w, &scriptedPicker{}, "only", "office")

	if !d.AtDropoff("only", "office") {
		t.Error("a one-place city has to deliver back to the office")
	}
}
