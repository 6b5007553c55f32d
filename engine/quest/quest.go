// Package quest implements the courier-job lifecycle: a shift of delivery
// tasks with one pickup point and a rolling dropoff.
package quest

import (
	"github.com/nathoo/neonboroughs/engine/world"
)

// taskCounts are the possible shift sizes, sampled uniformly.
var taskCounts = []int{2, 3, 4}

// Picker is the randomness a quest needs. *engine.RNG satisfies it.
type Picker interface {
	Pick(length int) int
}

// Delivery is an active courier shift. A nil *Delivery means no quest.
//
// Lifecycle: assigned (PickedUp=false) -> in transit (PickedUp=true) ->
// task complete -> new dropoff, back in transit -> ... -> destroyed when
// Completed reaches TotalTasks.
type Delivery struct {
	TotalTasks int
	Completed  int
	PickedUp   bool

	PickupDistrict  string
	PickupPlace     string
	DropoffDistrict string
	DropoffPlace    string
}

// New assigns a fresh shift: task count sampled from {2,3,4}, pickup at
// the given office, and a random first dropoff.
func New(w *world.World, rng Picker, pickupDistrict, pickupPlace string) *Delivery {
	d := &Delivery{
		TotalTasks:     taskCounts[rng.Pick(len(taskCounts))],
		PickupDistrict: pickupDistrict,
		PickupPlace:    pickupPlace,
	}
	d.rollDropoff(w, rng)
	return d
}

// AtPickup reports whether the location is the pickup point.
func (d *Delivery) AtPickup(district, place string) bool {
	return district == d.PickupDistrict && place == d.PickupPlace
}

// AtDropoff reports whether the location is the current dropoff.
func (d *Delivery) AtDropoff(district, place string) bool {
	return district == d.DropoffDistrict && place == d.DropoffPlace
}

// Pickup marks the current package as collected.
func (d *Delivery) Pickup() {
	d.PickedUp = true
}

// CompleteTask records a delivered package. If tasks remain, a new random
// dropoff is rolled and the courier stays in transit; otherwise the shift
// is over and the caller destroys the quest. Returns true when done.
func (d *Delivery) CompleteTask(w *world.World, rng Picker) bool {
	d.Completed++
	if d.Completed >= d.TotalTasks {
		return true
	}
	d.PickedUp = true
	d.rollDropoff(w, rng)
	return false
}

// rollDropoff picks a uniformly random place in the city that is not the
// pickup point.
func (d *Delivery) rollDropoff(w *world.World, rng Picker) {
	type spot struct{ district, place string }
	var spots []spot
	for _, dist := range w.Districts {
		for _, p := range dist.Places {
			if dist.ID == d.PickupDistrict && p == d.PickupPlace {
				continue
			}
			spots = append(spots, spot{dist.ID, p})
		}
	}
	if len(spots) == 0 {
		// Degenerate one-place city: deliver back to the office.
		d.DropoffDistrict = d.PickupDistrict
		d.DropoffPlace = d.PickupPlace
		return
	}
	chosen := spots[rng.Pick(len(spots))]
	d.DropoffDistrict = chosen.district
	d.DropoffPlace = chosen.place
}
