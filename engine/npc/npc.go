// Package npc holds the runtime roster: living copies of the static NPC
// definitions with a relationship scalar and a current location.
package npc

import (
	"github.com/nathoo/neonboroughs/engine/world"
	"github.com/nathoo/neonboroughs/types"
)

// RelocateChance is the per-turn probability (percent) that an NPC moves
// to a random place in a random district.
const RelocateChance = 40

// Mover is the randomness the roster needs. *engine.RNG satisfies it.
type Mover interface {
	Roll(chance int) bool
	Pick(length int) int
}

// NPC is one tracked actor. Created once at game start, never destroyed.
type NPC struct {
	ID           string
	Name         string
	Role         string
	Schedule     string
	Relationship int // [-100, 100]
	District     string
	Place        string
}

// AdjustRelationship applies a clamped delta.
func (n *NPC) AdjustRelationship(delta int) {
	v := n.Relationship + delta
	if v < -100 {
		v = -100
	}
	if v > 100 {
		v = 100
	}
	n.Relationship = v
}

// Roster is the full set of tracked NPCs in definition order.
type Roster struct {
	NPCs []*NPC
}

// NewRoster instantiates NPCs from the static definitions, scattering
// them across the city.
func NewRoster(defs []types.NPCDef, w *world.World, rng Mover) *Roster {
	r := &Roster{}
	for _, def := range defs {
		n := &NPC{
			ID:       def.ID,
			Name:     def.Name,
			Role:     def.Role,
			Schedule: def.Schedule,
		}
		placeRandomly(n, w, rng)
		r.NPCs = append(r.NPCs, n)
	}
	return r
}

// ByID returns the NPC with the given ID, or nil.
func (r *Roster) ByID(id string) *NPC {
	for _, n := range r.NPCs {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// At returns the NPCs currently at the given location, in roster order.
func (r *Roster) At(district, place string) []*NPC {
	var out []*NPC
	for _, n := range r.NPCs {
		if n.District == district && n.Place == place {
			out = append(out, n)
		}
	}
	return out
}

// Relocate gives each NPC an independent chance to wander: a uniformly
// random district, then a uniformly random place within it.
func (r *Roster) Relocate(w *world.World, rng Mover) {
	for _, n := range r.NPCs {
		if rng.Roll(RelocateChance) {
			placeRandomly(n, w, rng)
		}
	}
}

func placeRandomly(n *NPC, w *world.World, rng Mover) {
	if len(w.Districts) == 0 {
		return
	}
	d := w.Districts[rng.Pick(len(w.Districts))]
	n.District = d.ID
	if len(d.Places) > 0 {
		n.Place = d.Places[rng.Pick(len(d.Places))]
	}
}
