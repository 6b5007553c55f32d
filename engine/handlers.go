package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/neonboroughs/engine/character"
	"github.com/nathoo/neonboroughs/engine/quest"
	"github.com/nathoo/neonboroughs/types"
)

// dispatch routes a classified intent to its handler. Every handler
// either fully applies its effect or fully no-ops with an explanation;
// nothing here is fatal.
func (s *Session) dispatch(intent types.Intent) types.Result {
	switch intent.Kind {
	case types.IntentTrain:
		return s.handleTrain()
	case types.IntentGo:
		return s.handleGo(intent.Target)
	case types.IntentWork:
		return s.handleWork()
	case types.IntentSocial:
		return s.handleSocial()
	case types.IntentPhone:
		return s.handlePhone()
	case types.IntentShop:
		return s.handleShop()
	case types.IntentBuy:
		return s.handleBuy(intent.Target)
	case types.IntentNPCList:
		return s.handleNPCList()
	case types.IntentTalk, types.IntentFlirt, types.IntentBefriend:
		return s.handleSocialTarget(intent.Kind)
	case types.IntentPickup:
		return s.handlePickup()
	case types.IntentDeliver:
		return s.handleDeliver()
	case types.IntentWardrobe:
		return s.handleWardrobe()
	case types.IntentWear:
		return s.handleWear(intent.Target)
	case types.IntentRemove:
		return s.handleRemove(intent.Target)
	case types.IntentCook:
		return s.handleCook()
	case types.IntentEat:
		return s.handleEat()
	case types.IntentHair:
		return s.handleHair()
	case types.IntentMap:
		return s.handleMap()
	case types.IntentLook:
		return s.handleLook()
	case types.IntentFree:
		return s.handleFree(intent.Text)
	default:
		return s.handleIdle()
	}
}

func (s *Session) handleTrain() types.Result {
	s.Character.ApplyChange(types.Change{
		Stats:  map[string]int{character.StatStrength: 1},
		HP:     -1,
		Energy: -6,
		Morale: 3,
	})
	return types.Result{
		Narrative: "You push through a training session: muscles burn, but the progress is real.",
		System:    "Strength +1, Energy -6, Morale +3.",
	}
}

func (s *Session) handleGo(target string) types.Result {
	if target == "" {
		return types.Result{System: "Go where? Try a district or place name (see: map)."}
	}
	// District name first, then a place anywhere in the city.
	if s.World.HasDistrict(target) {
		s.World.MoveTo(target, "")
		return types.Result{
			Narrative: fmt.Sprintf("You make your way to %s and end up at the %s.", s.World.District, s.World.Place),
		}
	}
	if district, ok := s.World.FindPlace(target); ok {
		s.World.MoveTo(district, target)
		return types.Result{
			Narrative: fmt.Sprintf("You head to the %s in %s.", s.World.Place, s.World.District),
		}
	}
	return types.Result{System: fmt.Sprintf("You don't know how to get to %q. Check the map.", target)}
}

func (s *Session) handleWork() types.Result {
	if s.Character.Job != "courier" {
		s.Character.ApplyChange(types.Change{Energy: -8, Morale: -2, Money: WorkShiftPay})
		return types.Result{
			Narrative: "The workday grinds by. Stability is a resource too.",
			System:    fmt.Sprintf("Money +%d, Energy -8, Morale -2.", WorkShiftPay),
		}
	}

	if s.Quest != nil {
		return types.Result{
			System: fmt.Sprintf("You already have a shift running: %d of %d deliveries done.",
				s.Quest.Completed, s.Quest.TotalTasks),
		}
	}
	if s.World.Place != CourierOffice {
		return types.Result{
			System: "Shifts start at the courier office. Get there first.",
		}
	}

	s.Quest = quest.New(s.World, s.RNG, s.World.District, s.World.Place)
	return types.Result{
		Narrative: "The dispatcher slides a manifest across the counter. Your shift begins.",
		System: fmt.Sprintf("%d deliveries assigned. First dropoff: %s, %s. Pick up the package here.",
			s.Quest.TotalTasks, s.Quest.DropoffPlace, s.Quest.DropoffDistrict),
	}
}

func (s *Session) handleSocial() types.Result {
	s.Character.ApplyChange(types.Change{Morale: 1, Leisure: 5})
	return types.Result{
		Narrative: "You drift into the crowd to read the mood of the block.",
		Dialogue:  s.phrase("smalltalk", "A stranger shrugs: 'Neon's flickering again, and I just poured my coffee.'"),
	}
}

func (s *Session) handlePhone() types.Result {
	var ids []string
	var options []string
	for _, n := range s.Roster.NPCs {
		if s.Character.KnowsNPC(n.ID) {
			ids = append(ids, n.ID)
			options = append(options, n.Name)
		}
	}
	if len(ids) == 0 {
		return types.Result{System: "Your contact list is empty. Meet some people first."}
	}
	s.Menu = &MenuSession{Kind: MenuPhone, Options: options, NPCIDs: ids}
	return types.Result{
		Narrative: "You pull out your phone and scroll the contacts.",
		System:    "Who do you call? Pick a number.",
		Options:   options,
	}
}

func (s *Session) handleShop() types.Result {
	goods := s.itemsForSale()
	if len(goods) == 0 {
		return types.Result{System: "Nothing is for sale here. Try the mall, a boutique, or the street market."}
	}
	var ids []string
	var options []string
	for _, item := range goods {
		ids = append(ids, item.ID)
		options = append(options, fmt.Sprintf("%s — %d cr", item.Name, item.Price))
	}
	s.Menu = &MenuSession{Kind: MenuShop, Options: options, ItemIDs: ids}
	return types.Result{
		Narrative: fmt.Sprintf("You browse the goods at the %s.", s.World.Place),
		System:    "Pick a number to buy.",
		Options:   options,
	}
}

func (s *Session) handleBuy(target string) types.Result {
	if target == "" {
		return s.handleShop()
	}
	item, ok := s.catalogItem(target)
	if !ok {
		return types.Result{System: fmt.Sprintf("Nobody around here sells %q.", target)}
	}
	// The item must actually be on a shelf here.
	for _, sold := range s.itemsForSale() {
		if sold.ID == item.ID {
			return s.buyItem(item)
		}
	}
	return types.Result{System: fmt.Sprintf("The %s isn't sold here. Check the map for shops.", item.Name)}
}

// buyItem charges for an item and adds it to inventory. Purchase checks
// run before any mutation, so a rejected buy changes nothing.
func (s *Session) buyItem(item types.Item) types.Result {
	if s.Character.Money < item.Price {
		return types.Result{
			System: fmt.Sprintf("The %s costs %d cr and you have %d. No sale.", item.Name, item.Price, s.Character.Money),
		}
	}
	if !s.Character.Inventory.CanAdd(item) {
		return types.Result{
			System: fmt.Sprintf("You can't carry the %s — your bag is at its limit.", item.Name),
		}
	}
	s.Character.ApplyChange(types.Change{Money: -item.Price})
	s.Character.Inventory.Add(item)
	return types.Result{
		Narrative: fmt.Sprintf("You buy the %s.", item.Name),
		System:    fmt.Sprintf("Money -%d (now %d cr).", item.Price, s.Character.Money),
	}
}

func (s *Session) handleNPCList() types.Result {
	here := s.Roster.At(s.World.District, s.World.Place)
	if len(here) == 0 {
		return types.Result{System: "Nobody notable is around."}
	}
	var lines []string
	for _, n := range here {
		lines = append(lines, fmt.Sprintf("%s (%s)", n.Name, n.Role))
	}
	return types.Result{System: "Around you: " + strings.Join(lines, ", ") + "."}
}

// handleSocialTarget opens the target-selection menu shared by talk,
// flirt, and befriend. The actual check runs in the menu resolver.
func (s *Session) handleSocialTarget(kind types.IntentKind) types.Result {
	here := s.Roster.At(s.World.District, s.World.Place)
	if len(here) == 0 {
		return types.Result{System: "There's nobody here to approach."}
	}
	var ids []string
	var options []string
	for _, n := range here {
		ids = append(ids, n.ID)
		options = append(options, fmt.Sprintf("%s (%s)", n.Name, n.Role))
	}
	s.Menu = &MenuSession{Kind: MenuSocial, Options: options, NPCIDs: ids, Social: kind}
	return types.Result{
		System:  fmt.Sprintf("Who do you want to %s? Pick a number.", kind),
		Options: options,
	}
}

func (s *Session) handlePickup() types.Result {
	if s.Character.Job != "courier" {
		return types.Result{System: "You're not a courier. There's nothing for you to pick up."}
	}
	if s.Quest == nil {
		return types.Result{System: "No active shift. Start one at the courier office."}
	}
	if s.Quest.PickedUp {
		return types.Result{
			System: fmt.Sprintf("You already have the package. Dropoff: %s, %s.",
				s.Quest.DropoffPlace, s.Quest.DropoffDistrict),
		}
	}
	if !s.Quest.AtPickup(s.World.District, s.World.Place) {
		return types.Result{
			System: fmt.Sprintf("The package waits at the %s in %s.",
				s.Quest.PickupPlace, s.Quest.PickupDistrict),
		}
	}
	s.Quest.Pickup()
	return types.Result{
		Narrative: "You sign for a sealed package and strap it to your back.",
		System: fmt.Sprintf("Dropoff: %s, %s.",
			s.Quest.DropoffPlace, s.Quest.DropoffDistrict),
	}
}

func (s *Session) handleDeliver() types.Result {
	if s.Quest == nil {
		return types.Result{System: "No active shift. Start one at the courier office."}
	}
	if !s.Quest.PickedUp {
		return types.Result{
			System: fmt.Sprintf("You haven't picked the package up yet. It waits at the %s in %s.",
				s.Quest.PickupPlace, s.Quest.PickupDistrict),
		}
	}
	if !s.Quest.AtDropoff(s.World.District, s.World.Place) {
		return types.Result{
			System: fmt.Sprintf("Wrong address. The dropoff is the %s in %s.",
				s.Quest.DropoffPlace, s.Quest.DropoffDistrict),
		}
	}

	// Fast hands and a good memory for shortcuts both pay.
	combined := (s.Character.Stats[character.StatAgility] + s.Character.Stats[character.StatIntellect]) / 2
	chance := Clamp(DeliveryBaseChance+(combined-10)*3, 10, 90)
	pay := DeliveryFailPay
	narrative := "You hand the package over late and crumpled. The recipient signs without looking at you."
	if s.RNG.Roll(chance) {
		pay = DeliverySuccessPay
		narrative = "Clean handoff, on time. The recipient tips you a nod."
	}
	s.Character.ApplyChange(types.Change{Money: pay, Energy: -4})

	done := s.Quest.CompleteTask(s.World, s.RNG)
	if done {
		completed := s.Quest.Completed
		s.Quest = nil
		return types.Result{
			Narrative: narrative + " That was the last one — the shift is over.",
			System:    fmt.Sprintf("Money +%d. %d deliveries completed. Shift closed.", pay, completed),
		}
	}
	return types.Result{
		Narrative: narrative,
		System: fmt.Sprintf("Money +%d. %d of %d done. Next dropoff: %s, %s.",
			pay, s.Quest.Completed, s.Quest.TotalTasks, s.Quest.DropoffPlace, s.Quest.DropoffDistrict),
	}
}

func (s *Session) handleWardrobe() types.Result {
	var ids []string
	var options []string
	for _, item := range s.Character.Inventory.Items {
		if _, ok := character.SlotForItem(item); ok {
			ids = append(ids, item.ID)
			options = append(options, item.Name)
		}
	}
	if len(ids) == 0 {
		return types.Result{System: "Nothing wearable in your bag. Go shopping."}
	}
	s.Menu = &MenuSession{Kind: MenuWear, Options: options, ItemIDs: ids}
	return types.Result{
		Narrative: "You lay your things out on the bed.",
		System:    "Pick a number to put something on.",
		Options:   options,
	}
}

func (s *Session) handleWear(target string) types.Result {
	if target == "" {
		return s.handleWardrobe()
	}
	item, ok := s.Character.Inventory.FindByName(target)
	if !ok {
		return types.Result{System: fmt.Sprintf("You're not carrying %q.", target)}
	}
	return s.wearItem(item.ID)
}

// wearItem equips an inventory item and reports the outcome.
func (s *Session) wearItem(itemID string) types.Result {
	slot, err := s.Character.EquipFromInventory(itemID)
	switch err {
	case nil:
		worn := s.Character.Equipment.Item(slot)
		return types.Result{
			Narrative: fmt.Sprintf("You put on the %s.", worn.Name),
			System:    fmt.Sprintf("Equipped (%s). Attractiveness %d.", slot, s.Character.Attractiveness),
		}
	case character.ErrNotWearable:
		return types.Result{System: "That isn't something you can wear."}
	case character.ErrInventoryFull:
		return types.Result{System: "Your bag can't hold what you're already wearing there. Make room first."}
	default:
		return types.Result{System: "You're not carrying that."}
	}
}

func (s *Session) handleRemove(target string) types.Result {
	if target == "" {
		var slots []character.Slot
		var options []string
		for _, slot := range character.AllSlots {
			if item := s.Character.Equipment.Item(slot); item != nil {
				slots = append(slots, slot)
				options = append(options, fmt.Sprintf("%s (%s)", item.Name, slot))
			}
		}
		if len(slots) == 0 {
			return types.Result{System: "You're not wearing anything."}
		}
		s.Menu = &MenuSession{Kind: MenuRemove, Options: options, Slots: slots}
		return types.Result{System: "Take off what? Pick a number.", Options: options}
	}

	for _, slot := range character.AllSlots {
		item := s.Character.Equipment.Item(slot)
		if item == nil {
			continue
		}
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(target)) {
			return s.removeSlot(slot)
		}
	}
	return types.Result{System: fmt.Sprintf("You're not wearing %q.", target)}
}

// removeSlot unequips a slot into the inventory, surfacing a full bag as
// an explicit rejection — the item is never dropped.
func (s *Session) removeSlot(slot character.Slot) types.Result {
	item, err := s.Character.UnequipToInventory(slot)
	switch err {
	case nil:
		return types.Result{
			Narrative: fmt.Sprintf("You take off the %s.", item.Name),
			System:    fmt.Sprintf("Stowed in your bag. Attractiveness %d.", s.Character.Attractiveness),
		}
	case character.ErrInventoryFull:
		return types.Result{System: "Your bag is too full to stow that. It stays on."}
	default:
		return types.Result{System: "That slot is already empty."}
	}
}

func (s *Session) handleCook() types.Result {
	if s.World.Place != "apartment" {
		return types.Result{System: "You need your own kitchen for that. Head home."}
	}
	ids, options := s.foodInventory()
	if len(ids) == 0 {
		return types.Result{System: "Nothing in your bag is worth cooking. Hit the street market."}
	}
	s.Menu = &MenuSession{Kind: MenuCook, Options: options, ItemIDs: ids}
	return types.Result{
		Narrative: "You clear the counter and light the stove.",
		System:    "Cook what? Pick a number.",
		Options:   options,
	}
}

func (s *Session) handleEat() types.Result {
	ids, options := s.foodInventory()
	if len(ids) == 0 {
		return types.Result{System: "You have nothing edible on you."}
	}
	s.Menu = &MenuSession{Kind: MenuEat, Options: options, ItemIDs: ids}
	return types.Result{System: "Eat what? Pick a number.", Options: options}
}

// foodInventory lists carried food items for the eat/cook menus.
func (s *Session) foodInventory() (ids []string, options []string) {
	for _, item := range s.Character.Inventory.Items {
		if item.Type == types.ItemFood {
			ids = append(ids, item.ID)
			options = append(options, item.Name)
		}
	}
	return ids, options
}

func (s *Session) handleHair() types.Result {
	if s.World.Place != "salon" {
		return types.Result{System: "There's a salon downtown for that."}
	}
	if s.Character.Money < HaircutPrice {
		return types.Result{
			System: fmt.Sprintf("A cut costs %d cr and you have %d.", HaircutPrice, s.Character.Money),
		}
	}
	s.Character.ApplyChange(types.Change{Money: -HaircutPrice, Morale: 4, Popularity: 3})
	return types.Result{
		Narrative: "Scissors, steam, and twenty minutes of gossip. You walk out sharper than you walked in.",
		System:    fmt.Sprintf("Money -%d, Morale +4, Popularity +3.", HaircutPrice),
	}
}

func (s *Session) handleMap() types.Result {
	var lines []string
	for _, d := range s.World.Districts {
		lines = append(lines, fmt.Sprintf("%s: %s", d.ID, strings.Join(d.Places, ", ")))
	}
	return types.Result{System: strings.Join(lines, "\n")}
}

func (s *Session) handleLook() types.Result {
	w := s.World
	narrative := fmt.Sprintf("You're at the %s in %s. Day %d, %02d:00.",
		w.Place, w.District, w.Clock.Day, w.Clock.Hour)
	result := types.Result{Narrative: narrative}
	if here := s.Roster.At(w.District, w.Place); len(here) > 0 {
		var names []string
		for _, n := range here {
			names = append(names, n.Name)
		}
		result.System = "Here: " + strings.Join(names, ", ") + "."
	}
	return result
}

func (s *Session) handleFree(text string) types.Result {
	return types.Result{
		Narrative: "Your action goes into the diary. The city answers tersely, but it remembers everything.",
		System:    fmt.Sprintf("Logged: %s", text),
	}
}

func (s *Session) handleIdle() types.Result {
	return types.Result{
		Narrative: "You pause, weighing your options.",
		Options:   []string{"Train", "Go to the dive bar", "Check the apartment"},
	}
}
