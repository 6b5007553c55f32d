package character

import "github.com/nathoo/neonboroughs/types"

// Slot is a fixed wearable slot.
type Slot string

// The slot enumeration. Gadget is not a clothing slot.
const (
	SlotTop       Slot = "top"
	SlotBottom    Slot = "bottom"
	SlotShoes     Slot = "shoes"
	SlotUnderwear Slot = "underwear"
	SlotGadget    Slot = "gadget"
)

// AllSlots lists every slot in display order.
var AllSlots = []Slot{SlotTop, SlotBottom, SlotShoes, SlotUnderwear, SlotGadget}

// ClothingSlots lists the slots that count toward nakedness.
var ClothingSlots = []Slot{SlotTop, SlotBottom, SlotShoes, SlotUnderwear}

// Equipment holds at most one item per slot.
type Equipment struct {
	Top       *types.Item
	Bottom    *types.Item
	Shoes     *types.Item
	Underwear *types.Item
	Gadget    *types.Item
}

// Item returns the occupant of a slot, or nil.
func (e *Equipment) Item(slot Slot) *types.Item {
	switch slot {
	case SlotTop:
		return e.Top
	case SlotBottom:
		return e.Bottom
	case SlotShoes:
		return e.Shoes
	case SlotUnderwear:
		return e.Underwear
	case SlotGadget:
		return e.Gadget
	}
	return nil
}

// set places an item into a slot, overwriting any occupant.
func (e *Equipment) set(slot Slot, item *types.Item) {
	switch slot {
	case SlotTop:
		e.Top = item
	case SlotBottom:
		e.Bottom = item
	case SlotShoes:
		e.Shoes = item
	case SlotUnderwear:
		e.Underwear = item
	case SlotGadget:
		e.Gadget = item
	}
}

// Worn returns every equipped item in slot order.
func (e *Equipment) Worn() []types.Item {
	var items []types.Item
	for _, slot := range AllSlots {
		if it := e.Item(slot); it != nil {
			items = append(items, *it)
		}
	}
	return items
}

// SlotForItem maps a wearable item to its slot. Returns ("", false) for
// items that cannot be worn.
func SlotForItem(item types.Item) (Slot, bool) {
	if item.Type != types.ItemClothing && item.Type != types.ItemGadget {
		return "", false
	}
	switch Slot(item.Category) {
	case SlotTop, SlotBottom, SlotShoes, SlotUnderwear, SlotGadget:
		return Slot(item.Category), true
	}
	if item.Type == types.ItemGadget {
		return SlotGadget, true
	}
	return "", false
}
