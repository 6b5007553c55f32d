// Package character models the player: base stats, skills, needs, money,
// inventory, equipment, and the derived attributes computed from them.
package character

import (
	"errors"

	"github.com/nathoo/neonboroughs/types"
)

// Base stat keys.
const (
	StatStrength    = "strength"
	StatAgility     = "agility"
	StatFlexibility = "flexibility"
	StatCharisma    = "charisma"
	StatIntellect   = "intellect"
)

// Skill keys.
const (
	SkillDance      = "dance"
	SkillPersuasion = "persuasion"
	SkillStreetwise = "streetwise"
	SkillCombat     = "combat"
)

// Equipment and inventory operation failures callers branch on.
var (
	ErrNotCarried    = errors.New("item not in inventory")
	ErrNotWearable   = errors.New("item cannot be worn")
	ErrSlotEmpty     = errors.New("slot is empty")
	ErrInventoryFull = errors.New("inventory is full")
)

// Appearance holds the fixed bodily attributes set at creation.
type Appearance struct {
	Height int
	Weight int
	Hips   int
	Waist  int
	Chest  int
	Glutes int
	Face   int
}

// Weights are the tuning factors of the derived-stat formulas. They are
// data, not code, so tests and games can adjust them without recompiling
// the formula.
type Weights struct {
	Face          int
	Waist         int
	Charisma      int
	NudityFemale  int
	NudityMale    int
	NudityNeutral int
}

// DefaultWeights reproduces the original tuning.
var DefaultWeights = Weights{
	Face:          5,
	Waist:         2,
	Charisma:      2,
	NudityFemale:  20,
	NudityMale:    10,
	NudityNeutral: 15,
}

// Profile carries everything needed to create a character.
type Profile struct {
	Name       string
	Gender     string
	Age        int
	Job        string
	Traits     []string
	Background string
	Stats      map[string]int
	Skills     map[string]int
	Appearance Appearance
	HP         int
	Energy     int
	Morale     int
	Hunger     int
	Leisure    int
	Money      int
	Reputation map[string]int
	Capacity   int
}

// DefaultProfile returns the stock starting profile: five points in each
// stat, level-one skills, and a modest wallet.
func DefaultProfile() Profile {
	return Profile{
		Name:   "Nova",
		Gender: "female",
		Age:    24,
		Job:    "courier",
		Traits: []string{"curious"},
		Stats: map[string]int{
			StatStrength: 5, StatAgility: 5, StatFlexibility: 5,
			StatCharisma: 5, StatIntellect: 5,
		},
		Skills: map[string]int{
			SkillDance: 1, SkillPersuasion: 1, SkillStreetwise: 1, SkillCombat: 1,
		},
		Appearance: Appearance{Height: 170, Weight: 65, Hips: 5, Waist: 5, Chest: 5, Glutes: 5, Face: 6},
		HP:         100,
		Energy:     80,
		Morale:     10,
		Hunger:     70,
		Leisure:    50,
		Money:      120,
		Reputation: map[string]int{"police": 0, "underworld": 0, "syndicate": 0},
		Capacity:   DefaultCapacity,
	}
}

// Character is the full mutable player state.
type Character struct {
	Name       string
	Gender     string
	Age        int
	Job        string
	Traits     []string
	Background string

	Stats      map[string]int
	Skills     map[string]int
	Appearance Appearance

	HP         int
	Energy     int
	Morale     int
	Hunger     int
	Leisure    int
	Popularity int
	Money      int

	// Derived — never set directly, always recomputed.
	Attractiveness int
	Sexuality      int

	Reputation map[string]int
	Contacts   map[string]bool

	Inventory *Inventory
	Equipment Equipment

	Weights Weights
}

// New creates a character from a profile, filling defaults for absent
// fields and computing the initial derived stats.
func New(p Profile) *Character {
	c := &Character{
		Name:       p.Name,
		Gender:     p.Gender,
		Age:        p.Age,
		Job:        p.Job,
		Traits:     p.Traits,
		Background: p.Background,
		Stats:      p.Stats,
		Skills:     p.Skills,
		Appearance: p.Appearance,
		HP:         p.HP,
		Energy:     p.Energy,
		Morale:     p.Morale,
		Hunger:     p.Hunger,
		Leisure:    p.Leisure,
		Money:      p.Money,
		Reputation: p.Reputation,
		Contacts:   map[string]bool{},
		Inventory:  NewInventory(p.Capacity),
		Weights:    DefaultWeights,
	}
	if c.Stats == nil {
		c.Stats = map[string]int{}
	}
	if c.Skills == nil {
		c.Skills = map[string]int{}
	}
	if c.Reputation == nil {
		c.Reputation = map[string]int{}
	}
	if c.HP == 0 {
		c.HP = 100
	}
	if c.Energy == 0 {
		c.Energy = 80
	}
	c.UpdateDerived()
	return c
}

// ApplyChange bulk-applies a delta. Each target field is clamped to its
// domain immediately after the addition, so repeated deltas can never
// push a value outside its range. Derived stats are recomputed last.
func (c *Character) ApplyChange(ch types.Change) {
	for key, delta := range ch.Stats {
		c.Stats[key] = clamp(c.Stats[key]+delta, 1, 20)
	}
	for key, delta := range ch.Skills {
		c.Skills[key] = clamp(c.Skills[key]+delta, 0, 10)
	}
	if ch.HP != 0 {
		c.HP = clamp(c.HP+ch.HP, 1, 100)
	}
	if ch.Energy != 0 {
		c.Energy = clamp(c.Energy+ch.Energy, 1, 100)
	}
	if ch.Morale != 0 {
		c.Morale = clamp(c.Morale+ch.Morale, -100, 100)
	}
	if ch.Hunger != 0 {
		c.Hunger = clamp(c.Hunger+ch.Hunger, 0, 100)
	}
	if ch.Leisure != 0 {
		c.Leisure = clamp(c.Leisure+ch.Leisure, 0, 100)
	}
	if ch.Popularity != 0 {
		c.Popularity = clamp(c.Popularity+ch.Popularity, 0, 100)
	}
	if ch.Money != 0 {
		c.Money += ch.Money
		if c.Money < 0 {
			c.Money = 0
		}
	}
	c.UpdateDerived()
}

// Equip fills a slot and applies the item's effect. Any previous occupant
// is overwritten; callers wanting exchange semantics go through
// EquipFromInventory.
func (c *Character) Equip(slot Slot, item types.Item) {
	c.Equipment.set(slot, &item)
	c.ApplyChange(item.Effect)
}

// Unequip reverses the occupant's effect, clears the slot, and returns
// the item.
func (c *Character) Unequip(slot Slot) (types.Item, error) {
	occupant := c.Equipment.Item(slot)
	if occupant == nil {
		return types.Item{}, ErrSlotEmpty
	}
	item := *occupant
	c.ApplyChange(invert(item.Effect))
	c.Equipment.set(slot, nil)
	c.UpdateDerived()
	return item, nil
}

// EquipFromInventory is the single combined operation: remove the item
// from inventory and set it into its slot. An existing occupant is
// returned to inventory; its fit is judged with the incoming item
// already out of the bag, so an even swap at the weight limit works.
// If the occupant does not fit, the whole operation is rejected and
// nothing changes.
func (c *Character) EquipFromInventory(itemID string) (Slot, error) {
	var found *types.Item
	for i := range c.Inventory.Items {
		if c.Inventory.Items[i].ID == itemID {
			found = &c.Inventory.Items[i]
			break
		}
	}
	if found == nil {
		return "", ErrNotCarried
	}
	slot, ok := SlotForItem(*found)
	if !ok {
		return "", ErrNotWearable
	}
	item, _ := c.Inventory.Remove(itemID)
	if c.Equipment.Item(slot) != nil {
		if _, err := c.UnequipToInventory(slot); err != nil {
			c.Inventory.Add(item)
			return slot, err
		}
	}
	c.Equip(slot, item)
	return slot, nil
}

// UnequipToInventory clears a slot and returns the item to inventory.
// If the item does not fit the inventory, the unequip is rejected: the
// item stays worn and ErrInventoryFull is returned. Nothing is ever
// silently dropped.
func (c *Character) UnequipToInventory(slot Slot) (types.Item, error) {
	occupant := c.Equipment.Item(slot)
	if occupant == nil {
		return types.Item{}, ErrSlotEmpty
	}
	if !c.Inventory.CanAdd(*occupant) {
		return types.Item{}, ErrInventoryFull
	}
	item, err := c.Unequip(slot)
	if err != nil {
		return types.Item{}, err
	}
	c.Inventory.Add(item)
	return item, nil
}

// IsNaked reports whether every clothing slot (gadget excluded) is empty.
func (c *Character) IsNaked() bool {
	for _, slot := range ClothingSlots {
		if c.Equipment.Item(slot) != nil {
			return false
		}
	}
	return true
}

// KnowsNPC reports whether the NPC is a saved contact.
func (c *Character) KnowsNPC(npcID string) bool {
	return c.Contacts[npcID]
}

// AddContact records an NPC as known.
func (c *Character) AddContact(npcID string) {
	c.Contacts[npcID] = true
}

// UpdateDerived recomputes attractiveness and sexuality from their
// inputs. Attractiveness weighs face, waist, and charisma plus the
// charisma effect of everything worn; sexuality adds a gendered nudity
// bonus on top.
func (c *Character) UpdateDerived() {
	w := c.Weights
	equipBonus := 0
	for _, item := range c.Equipment.Worn() {
		equipBonus += item.Effect.Stats[StatCharisma]
	}
	attr := c.Appearance.Face*w.Face +
		c.Appearance.Waist*w.Waist +
		c.Stats[StatCharisma]*w.Charisma +
		equipBonus
	c.Attractiveness = clamp(attr, 0, 100)

	sexuality := c.Attractiveness
	if c.IsNaked() {
		sexuality += c.nudityBonus()
	}
	c.Sexuality = clamp(sexuality, 0, 100)
}

func (c *Character) nudityBonus() int {
	switch c.Gender {
	case "female":
		return c.Weights.NudityFemale
	case "male":
		return c.Weights.NudityMale
	default:
		return c.Weights.NudityNeutral
	}
}

// invert negates every delta of a change so an applied effect can be
// reversed.
func invert(ch types.Change) types.Change {
	out := types.Change{
		HP:         -ch.HP,
		Energy:     -ch.Energy,
		Morale:     -ch.Morale,
		Hunger:     -ch.Hunger,
		Leisure:    -ch.Leisure,
		Popularity: -ch.Popularity,
		Money:      -ch.Money,
	}
	if len(ch.Stats) > 0 {
		out.Stats = make(map[string]int, len(ch.Stats))
		for k, v := range ch.Stats {
			out.Stats[k] = -v
		}
	}
	if len(ch.Skills) > 0 {
		out.Skills = make(map[string]int, len(ch.Skills))
		for k, v := range ch.Skills {
			out.Skills[k] = -v
		}
	}
	return out
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
