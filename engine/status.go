package engine

import (
	"fmt"

	"github.com/nathoo/neonboroughs/engine/character"
	"github.com/nathoo/neonboroughs/types"
)

// StatusTables builds the labeled stat tables shown on demand: base
// stats, condition, and the bag. The engine never renders these; front
// ends decide how tables look.
func (s *Session) StatusTables() []types.Table {
	c := s.Character
	w := s.World

	stats := types.Table{
		Title:   "Stats",
		Headers: []string{"Stat", "Value"},
		Rows: [][]string{
			{"Strength", fmt.Sprint(c.Stats[character.StatStrength])},
			{"Agility", fmt.Sprint(c.Stats[character.StatAgility])},
			{"Flexibility", fmt.Sprint(c.Stats[character.StatFlexibility])},
			{"Charisma", fmt.Sprint(c.Stats[character.StatCharisma])},
			{"Intellect", fmt.Sprint(c.Stats[character.StatIntellect])},
		},
	}

	condition := types.Table{
		Title:   "Condition",
		Headers: []string{"Gauge", "Value"},
		Rows: [][]string{
			{"HP", fmt.Sprint(c.HP)},
			{"Energy", fmt.Sprint(c.Energy)},
			{"Morale", fmt.Sprint(c.Morale)},
			{"Hunger", fmt.Sprint(c.Hunger)},
			{"Leisure", fmt.Sprint(c.Leisure)},
			{"Popularity", fmt.Sprint(c.Popularity)},
			{"Attractiveness", fmt.Sprint(c.Attractiveness)},
			{"Money", fmt.Sprintf("%d cr", c.Money)},
			{"Day", fmt.Sprint(w.Clock.Day)},
			{"Hour", fmt.Sprintf("%02d:00", w.Clock.Hour)},
			{"Location", fmt.Sprintf("%s, %s", w.Place, w.District)},
		},
	}

	bag := types.Table{
		Title:   "Inventory",
		Headers: []string{"Item", "Weight"},
	}
	for _, item := range c.Inventory.Items {
		bag.Rows = append(bag.Rows, []string{item.Name, fmt.Sprint(item.Weight)})
	}
	if len(bag.Rows) == 0 {
		bag.Rows = [][]string{{"Empty", "0"}}
	}

	worn := types.Table{
		Title:   "Worn",
		Headers: []string{"Slot", "Item"},
	}
	for _, slot := range character.AllSlots {
		name := "-"
		if item := c.Equipment.Item(slot); item != nil {
			name = item.Name
		}
		worn.Rows = append(worn.Rows, []string{string(slot), name})
	}

	return []types.Table{stats, condition, bag, worn}
}
