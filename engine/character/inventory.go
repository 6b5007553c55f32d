package character

import (
	"strings"

	"github.com/nathoo/neonboroughs/types"
)

// DefaultCapacity is the weight limit of a fresh inventory.
const DefaultCapacity = 25

// Inventory is a weight-bounded, ordered item collection.
type Inventory struct {
	Limit int
	Items []types.Item
}

// NewInventory creates an empty inventory with the given weight limit.
// A non-positive limit falls back to DefaultCapacity.
func NewInventory(limit int) *Inventory {
	if limit <= 0 {
		limit = DefaultCapacity
	}
	return &Inventory{Limit: limit, Items: []types.Item{}}
}

// TotalWeight returns the summed weight of all carried items.
func (inv *Inventory) TotalWeight() int {
	total := 0
	for _, item := range inv.Items {
		total += item.Weight
	}
	return total
}

// CanAdd reports whether the item fits under the weight limit.
func (inv *Inventory) CanAdd(item types.Item) bool {
	return inv.TotalWeight()+item.Weight <= inv.Limit
}

// Add appends the item if it fits. On failure the inventory is unchanged
// and false is returned; callers must surface this as a capacity failure.
func (inv *Inventory) Add(item types.Item) bool {
	if !inv.CanAdd(item) {
		return false
	}
	inv.Items = append(inv.Items, item)
	return true
}

// Remove removes the first item matching the ID and returns it.
func (inv *Inventory) Remove(itemID string) (types.Item, bool) {
	for i, item := range inv.Items {
		if item.ID == itemID {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return item, true
		}
	}
	return types.Item{}, false
}

// FindByName returns the first carried item whose name or ID matches the
// query (case-insensitive; whole-word partials on the name are accepted,
// so "jacket" finds "leather jacket").
func (inv *Inventory) FindByName(query string) (types.Item, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return types.Item{}, false
	}
	for _, item := range inv.Items {
		if matchesItemName(item, q) {
			return item, true
		}
	}
	return types.Item{}, false
}

// matchesItemName checks a lowercase query against an item's ID and name.
func matchesItemName(item types.Item, q string) bool {
	if strings.ToLower(item.ID) == q {
		return true
	}
	name := strings.ToLower(item.Name)
	if name == q {
		return true
	}
	for _, word := range strings.Fields(name) {
		if word == q {
			return true
		}
	}
	return false
}
