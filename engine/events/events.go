// Package events samples ambient narrative events for the current
// district and hour.
package events

import "github.com/nathoo/neonboroughs/types"

// Sampler is the randomness event picking needs. *engine.RNG satisfies it.
type Sampler interface {
	Pick(length int) int
	Shuffle(n int, swap func(i, j int))
}

// Context is the trigger-matching input for one turn.
type Context struct {
	District string
	Hour     int
}

// Manager filters and samples the static event catalog.
type Manager struct {
	Events []types.EventDef
}

// NewManager wraps a catalog. An empty catalog is valid and simply never
// produces events.
func NewManager(events []types.EventDef) *Manager {
	return &Manager{Events: events}
}

// countWeights: selecting 2 events happens at half the probability of 1.
var countWeights = []int{1, 1, 2}

// PickEvents returns 1 or 2 matching events in randomized order, without
// replacement. An event with no trigger always matches; a trigger matches
// when its district and hour (each optional) both agree with the context.
func (m *Manager) PickEvents(ctx Context, rng Sampler) []types.EventDef {
	var possible []types.EventDef
	for _, ev := range m.Events {
		if Matches(ev.Trigger, ctx) {
			possible = append(possible, ev)
		}
	}
	if len(possible) == 0 {
		return nil
	}

	amount := countWeights[rng.Pick(len(countWeights))]
	rng.Shuffle(len(possible), func(i, j int) {
		possible[i], possible[j] = possible[j], possible[i]
	})
	if amount > len(possible) {
		amount = len(possible)
	}
	return possible[:amount]
}

// Matches reports whether a trigger accepts the context. A nil trigger
// accepts everything.
func Matches(t *types.EventTrigger, ctx Context) bool {
	if t == nil {
		return true
	}
	if t.District != "" && t.District != ctx.District {
		return false
	}
	if t.Hour != nil && *t.Hour != ctx.Hour {
		return false
	}
	return true
}
