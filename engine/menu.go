package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/neonboroughs/engine/character"
	"github.com/nathoo/neonboroughs/types"
)

// MenuKind tags a menu session with the resolver that consumes it.
type MenuKind string

const (
	MenuSocial MenuKind = "social"
	MenuPhone  MenuKind = "phone"
	MenuShop   MenuKind = "shop"
	MenuWear   MenuKind = "wear"
	MenuRemove MenuKind = "remove"
	MenuEat    MenuKind = "eat"
	MenuCook   MenuKind = "cook"
)

// MenuSession redirects the very next raw input to a numbered-selection
// resolver. At most one is active; it is consumed by that input whether
// the selection was valid or not, and resolving it never costs game time.
type MenuSession struct {
	Kind    MenuKind
	Options []string

	// Kind-specific payloads, parallel to Options.
	NPCIDs  []string
	ItemIDs []string
	Slots   []character.Slot
	Social  types.IntentKind // talk / flirt / befriend
}

// menuResolvers is the dispatch table: one resolver per menu kind. The
// index passed in is already validated against Options.
var menuResolvers = map[MenuKind]func(*Session, *MenuSession, int) types.Result{
	MenuSocial: (*Session).resolveSocial,
	MenuPhone:  (*Session).resolvePhone,
	MenuShop:   (*Session).resolveShop,
	MenuWear:   (*Session).resolveWear,
	MenuRemove: (*Session).resolveRemove,
	MenuEat:    (*Session).resolveEat,
	MenuCook:   (*Session).resolveCook,
}

// resolveMenu interprets raw input as a 1-based index into the session's
// options. The session was already cleared by the caller; invalid input
// just reports and falls back to free-intent mode — no sticky menus.
func (s *Session) resolveMenu(menu *MenuSession, raw string) types.Result {
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || idx < 1 || idx > len(menu.Options) {
		return types.Result{
			System: fmt.Sprintf("Pick a number between 1 and %d next time. Menu closed.", len(menu.Options)),
		}
	}
	resolver, ok := menuResolvers[menu.Kind]
	if !ok {
		return types.Result{System: "Menu closed."}
	}
	return resolver(s, menu, idx-1)
}

// resolveSocial runs the shared talk/flirt/befriend check against the
// selected NPC: a charisma-modified percentile roll, with a heavy
// penalty for showing up unclothed.
func (s *Session) resolveSocial(menu *MenuSession, idx int) types.Result {
	target := s.Roster.ByID(menu.NPCIDs[idx])
	if target == nil {
		return types.Result{System: "They're gone."}
	}

	var base, nakedPenalty int
	switch menu.Social {
	case types.IntentFlirt:
		base, nakedPenalty = FlirtBaseChance, NakedFlirtPenalty
	case types.IntentBefriend:
		base, nakedPenalty = BefriendBaseChance, NakedBefriendPenalty
	default:
		base, nakedPenalty = TalkBaseChance, NakedTalkPenalty
	}

	chance := s.StatCheck(character.StatCharisma, base)
	naked := s.Character.IsNaked()
	if naked {
		chance -= nakedPenalty
		if chance < 5 {
			chance = 5
		}
	}

	if s.RNG.Roll(chance) {
		target.AdjustRelationship(5)
		s.Character.ApplyChange(types.Change{Morale: 2})
		s.Character.AddContact(target.ID)
		return types.Result{
			Narrative: fmt.Sprintf("%s warms to you.", target.Name),
			Dialogue:  s.phrase(string(menu.Social)+"_success", fmt.Sprintf("%s: 'You know what, I like your style.'", target.Name)),
			System:    fmt.Sprintf("Relationship +5 (now %d), Morale +2.", target.Relationship),
		}
	}

	relLoss := -2
	if naked {
		relLoss = -6
	}
	target.AdjustRelationship(relLoss)
	s.Character.ApplyChange(types.Change{Morale: -1})
	return types.Result{
		Narrative: fmt.Sprintf("%s looks right through you.", target.Name),
		Dialogue:  s.phrase(string(menu.Social)+"_failure", fmt.Sprintf("%s: 'Not today.'", target.Name)),
		System:    fmt.Sprintf("Relationship %d (now %d), Morale -1.", relLoss, target.Relationship),
	}
}

func (s *Session) resolvePhone(menu *MenuSession, idx int) types.Result {
	target := s.Roster.ByID(menu.NPCIDs[idx])
	if target == nil {
		return types.Result{System: "The line is dead."}
	}
	target.AdjustRelationship(1)
	s.Character.ApplyChange(types.Change{Leisure: 3})
	return types.Result{
		Narrative: fmt.Sprintf("You call %s and trade news for a while.", target.Name),
		Dialogue:  s.phrase("phone", fmt.Sprintf("%s: 'Good to hear your voice.'", target.Name)),
		System:    fmt.Sprintf("Relationship +1 (now %d), Leisure +3.", target.Relationship),
	}
}

func (s *Session) resolveShop(menu *MenuSession, idx int) types.Result {
	for _, item := range s.Items {
		if item.ID == menu.ItemIDs[idx] {
			return s.buyItem(item)
		}
	}
	return types.Result{System: "That item is no longer on the shelf."}
}

func (s *Session) resolveWear(menu *MenuSession, idx int) types.Result {
	return s.wearItem(menu.ItemIDs[idx])
}

func (s *Session) resolveRemove(menu *MenuSession, idx int) types.Result {
	return s.removeSlot(menu.Slots[idx])
}

func (s *Session) resolveEat(menu *MenuSession, idx int) types.Result {
	item, ok := s.Character.Inventory.Remove(menu.ItemIDs[idx])
	if !ok {
		return types.Result{System: "You no longer have that."}
	}
	s.Character.ApplyChange(types.Change{Hunger: item.Nutrition, Energy: 1})
	return types.Result{
		Narrative: fmt.Sprintf("You eat the %s where you stand.", item.Name),
		System:    fmt.Sprintf("Hunger +%d, Energy +1.", item.Nutrition),
	}
}

func (s *Session) resolveCook(menu *MenuSession, idx int) types.Result {
	item, ok := s.Character.Inventory.Remove(menu.ItemIDs[idx])
	if !ok {
		return types.Result{System: "You no longer have that."}
	}
	restored := item.Nutrition * 3 / 2
	s.Character.ApplyChange(types.Change{Hunger: restored, Morale: 2, Energy: -3})
	return types.Result{
		Narrative: fmt.Sprintf("You cook the %s into something that smells like a real meal.", item.Name),
		System:    fmt.Sprintf("Hunger +%d, Morale +2, Energy -3.", restored),
	}
}
