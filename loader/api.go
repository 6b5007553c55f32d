package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua catalog constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Item "id" { ... } — curried: Item("id") returns a function that
	// takes the definition table.
	L.SetGlobal("Item", curried(L, func(id string, tbl *lua.LTable) {
		coll.items = append(coll.items, rawEntry{id: id, table: tbl})
	}))

	// Event "id" { ... }
	L.SetGlobal("Event", curried(L, func(id string, tbl *lua.LTable) {
		coll.events = append(coll.events, rawEntry{id: id, table: tbl})
	}))

	// NPC "id" { ... }
	L.SetGlobal("NPC", curried(L, func(id string, tbl *lua.LTable) {
		coll.npcs = append(coll.npcs, rawEntry{id: id, table: tbl})
	}))

	// Phrases "key" { "line", "line", ... }
	L.SetGlobal("Phrases", curried(L, func(id string, tbl *lua.LTable) {
		coll.phrases = append(coll.phrases, rawEntry{id: id, table: tbl})
	}))

	// World { start = {...}, districts = {...} } — at most one; the last
	// definition wins.
	L.SetGlobal("World", L.NewFunction(func(L *lua.LState) int {
		coll.world = L.CheckTable(1)
		return 0
	}))
}

// curried builds the two-step constructor form used by all id'd entries.
func curried(L *lua.LState, record func(id string, tbl *lua.LTable)) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			record(id, L.CheckTable(1))
			return 0
		}))
		return 1
	})
}
