// Package engine provides the Session and the Step() orchestrator
// that turns classified intents and menu selections into validated state
// mutations, then advances the world exactly once per completed turn.
package engine

import (
	"strings"

	"github.com/nathoo/neonboroughs/engine/character"
	"github.com/nathoo/neonboroughs/engine/events"
	"github.com/nathoo/neonboroughs/engine/npc"
	"github.com/nathoo/neonboroughs/engine/parser"
	"github.com/nathoo/neonboroughs/engine/quest"
	"github.com/nathoo/neonboroughs/engine/world"
	"github.com/nathoo/neonboroughs/types"
)

// CourierOffice is the place where delivery shifts start and packages are
// picked up.
const CourierOffice = "courier office"

// Delivery pay, success check base, and the other handler tuning values.
const (
	DeliveryBaseChance = 50
	DeliverySuccessPay = 45
	DeliveryFailPay    = 20

	WorkShiftPay = 40
	HaircutPrice = 30
)

// Social check tuning per interaction kind.
const (
	TalkBaseChance     = 55
	FlirtBaseChance    = 45
	BefriendBaseChance = 50

	NakedTalkPenalty     = 20
	NakedFlirtPenalty    = 25
	NakedBefriendPenalty = 20
)

// Session owns all mutable game state: one character, one world, the NPC
// roster, the optional delivery quest, and the optional menu session.
// Handlers never run concurrently; a session is single-goroutine by
// construction.
type Session struct {
	Character *character.Character
	World     *world.World
	Roster    *npc.Roster
	Events    *events.Manager
	Quest     *quest.Delivery
	Menu      *MenuSession
	RNG       *RNG

	Items   []types.Item
	Phrases types.PhraseBook

	TurnCount int
}

// NewSession assembles a session from static data and a profile. Missing
// catalogs degrade to empty collections; a nil world config falls back to
// the built-in city.
func NewSession(data *types.GameData, profile character.Profile, seed int64) *Session {
	if data == nil {
		data = &types.GameData{}
	}
	rng := NewRNG(seed)

	var cfg *types.WorldConfig
	if data.World != nil {
		cfg = data.World
	} else {
		cfg = world.DefaultConfig()
	}
	// Street kids start in the slums; everyone else downtown (or wherever
	// the config says).
	if strings.Contains(strings.ToLower(profile.Background), "street") {
		for _, d := range cfg.Districts {
			if d.ID == "slums" {
				cfg = &types.WorldConfig{Districts: cfg.Districts, StartDistrict: "slums"}
				break
			}
		}
	}
	w := world.New(cfg)

	phrases := data.Phrases
	if phrases == nil {
		phrases = types.PhraseBook{}
	}

	s := &Session{
		Character: character.New(profile),
		World:     w,
		Events:    events.NewManager(data.Events),
		RNG:       rng,
		Items:     data.Items,
		Phrases:   phrases,
	}
	s.Roster = npc.NewRoster(data.NPCs, w, rng)
	return s
}

// Step processes one raw input line. An active menu session captures the
// input first — always consuming the session, valid selection or not —
// and menu resolution never advances the world. Everything else is
// classified, dispatched, and completed as a full turn.
func (s *Session) Step(raw string) types.Result {
	if s.Menu != nil {
		menu := s.Menu
		s.Menu = nil
		return s.resolveMenu(menu, raw)
	}
	return s.Resolve(parser.Parse(raw))
}

// Resolve dispatches an already-classified intent and runs the post-turn
// pipeline. External classifiers feed this directly.
func (s *Session) Resolve(intent types.Intent) types.Result {
	result := s.dispatch(intent)
	s.finishTurn(&result)
	return result
}

// finishTurn runs the fixed end-of-turn order: clock, passive decay,
// derived recompute, ambient events, NPC relocation.
func (s *Session) finishTurn(result *types.Result) {
	s.TurnCount++
	s.World.AdvanceTime(1)
	s.applyPassiveDecay()
	s.Character.UpdateDerived()

	picked := s.Events.PickEvents(events.Context{
		District: s.World.District,
		Hour:     s.World.Clock.Hour,
	}, s.RNG)
	for _, ev := range picked {
		result.Events = append(result.Events, types.EventOutcome{
			Narrative: ev.Narrative,
			System:    ev.System,
		})
		if ev.Change != nil {
			s.Character.ApplyChange(*ev.Change)
		}
	}

	s.Roster.Relocate(s.World, s.RNG)
}

// applyPassiveDecay depletes needs once per full turn. Hunger always
// drops; starving and exhaustion bleed into health and morale; being
// naked in public wears on morale too.
func (s *Session) applyPassiveDecay() {
	c := s.Character
	c.ApplyChange(types.Change{Hunger: -4})
	if c.Hunger <= 20 {
		c.ApplyChange(types.Change{HP: -2, Energy: -2, Morale: -2})
	}
	if c.Energy <= 20 {
		c.ApplyChange(types.Change{HP: -2, Morale: -2})
	}
	if c.IsNaked() {
		c.ApplyChange(types.Change{Morale: -3})
	}
}

// StatCheck converts a base chance and a stat into a success percentage:
// every point above 10 adds 3, every point below subtracts 3, bounded to
// [10, 90] so nothing is ever certain.
func (s *Session) StatCheck(stat string, base int) int {
	return Clamp(base+(s.Character.Stats[stat]-10)*3, 10, 90)
}

// phrase picks a random line from a phrase pool, or the fallback when the
// pool is missing or empty.
func (s *Session) phrase(key, fallback string) string {
	pool := s.Phrases[key]
	if len(pool) == 0 {
		return fallback
	}
	return pool[s.RNG.Pick(len(pool))]
}

// catalogItem finds a catalog item by name text.
func (s *Session) catalogItem(query string) (types.Item, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return types.Item{}, false
	}
	for _, item := range s.Items {
		if strings.ToLower(item.ID) == q || strings.ToLower(item.Name) == q {
			return item, true
		}
	}
	// Whole-word partials, so "buy noodles" finds "cup noodles".
	for _, item := range s.Items {
		for _, word := range strings.Fields(strings.ToLower(item.Name)) {
			if word == q {
				return item, true
			}
		}
	}
	return types.Item{}, false
}

// shopCategories maps a place to the item types on sale there. Places not
// listed sell nothing.
var shopCategories = map[string][]string{
	"mall":          {types.ItemClothing, types.ItemGadget, types.ItemMisc},
	"boutique":      {types.ItemClothing},
	"street market": {types.ItemFood, types.ItemMisc},
	"dive bar":      {types.ItemFood},
	"tea house":     {types.ItemFood},
}

// itemsForSale returns the catalog items sold at the active place.
func (s *Session) itemsForSale() []types.Item {
	categories, ok := shopCategories[s.World.Place]
	if !ok {
		return nil
	}
	var out []types.Item
	for _, item := range s.Items {
		for _, cat := range categories {
			if item.Type == cat {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
