package loader

import (
	"github.com/nathoo/neonboroughs/types"
	lua "github.com/yuin/gopher-lua"
)

// compile converts the collected Lua tables into typed catalogs.
func compile(coll *collector, data *types.GameData) {
	for _, raw := range coll.items {
		data.Items = append(data.Items, compileItem(raw))
	}
	for _, raw := range coll.events {
		data.Events = append(data.Events, compileEvent(raw))
	}
	for _, raw := range coll.npcs {
		data.NPCs = append(data.NPCs, types.NPCDef{
			ID:       raw.id,
			Name:     getString(raw.table, "name"),
			Role:     getString(raw.table, "role"),
			Schedule: getString(raw.table, "schedule"),
		})
	}
	for _, raw := range coll.phrases {
		data.Phrases[raw.id] = stringList(raw.table)
	}
	if coll.world != nil {
		data.World = compileWorld(coll.world)
	}
}

func compileItem(raw rawEntry) types.Item {
	item := types.Item{
		ID:        raw.id,
		Name:      getString(raw.table, "name"),
		Weight:    getInt(raw.table, "weight"),
		Type:      getString(raw.table, "type"),
		Category:  getString(raw.table, "category"),
		Gender:    getString(raw.table, "gender"),
		Price:     getInt(raw.table, "price"),
		Nutrition: getInt(raw.table, "nutrition"),
	}
	if item.Name == "" {
		item.Name = raw.id
	}
	if item.Type == "" {
		item.Type = types.ItemMisc
	}
	if effect := getTable(raw.table, "effect"); effect != nil {
		item.Effect = compileChange(effect)
	}
	return item
}

func compileEvent(raw rawEntry) types.EventDef {
	ev := types.EventDef{
		ID:        raw.id,
		Narrative: getString(raw.table, "narrative"),
		System:    getString(raw.table, "system"),
	}
	if trigger := getTable(raw.table, "trigger"); trigger != nil {
		t := &types.EventTrigger{District: getString(trigger, "district")}
		if v := trigger.RawGetString("hour"); v != lua.LNil {
			hour := getInt(trigger, "hour")
			t.Hour = &hour
		}
		ev.Trigger = t
	}
	if change := getTable(raw.table, "change"); change != nil {
		ch := compileChange(change)
		ev.Change = &ch
	}
	return ev
}

// compileChange parses the shared delta shape used by item effects and
// event changes.
func compileChange(tbl *lua.LTable) types.Change {
	ch := types.Change{
		HP:         getInt(tbl, "hp"),
		Energy:     getInt(tbl, "energy"),
		Morale:     getInt(tbl, "morale"),
		Hunger:     getInt(tbl, "hunger"),
		Leisure:    getInt(tbl, "leisure"),
		Popularity: getInt(tbl, "popularity"),
		Money:      getInt(tbl, "money"),
	}
	if stats := getTable(tbl, "stats"); stats != nil {
		ch.Stats = intMap(stats)
	}
	if skills := getTable(tbl, "skills"); skills != nil {
		ch.Skills = intMap(skills)
	}
	return ch
}

func compileWorld(tbl *lua.LTable) *types.WorldConfig {
	cfg := &types.WorldConfig{}
	if start := getTable(tbl, "start"); start != nil {
		cfg.StartDistrict = getString(start, "district")
		cfg.StartPlace = getString(start, "place")
	}
	if districts := getTable(tbl, "districts"); districts != nil {
		districts.ForEach(func(_, v lua.LValue) {
			d, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			def := types.DistrictDef{ID: getString(d, "id")}
			if places := getTable(d, "places"); places != nil {
				def.Places = stringList(places)
			}
			if def.ID != "" {
				cfg.Districts = append(cfg.Districts, def)
			}
		})
	}
	return cfg
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// stringList converts a Lua array of strings.
func stringList(tbl *lua.LTable) []string {
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// intMap converts a Lua table of string keys to int values.
func intMap(tbl *lua.LTable) map[string]int {
	out := map[string]int{}
	tbl.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok {
			return
		}
		if n, ok := v.(lua.LNumber); ok {
			out[string(ks)] = int(n)
		}
	})
	return out
}
