// Package loader reads the static game catalogs (items, events, NPCs,
// phrase pools, world graph) from Lua files in a data directory. The Lua
// VM is sandboxed and discarded after loading — zero Lua at runtime.
//
// Data loading is never fatal: a missing directory or file degrades to an
// empty catalog, and per-file errors are reported as warnings alongside
// whatever did load.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nathoo/neonboroughs/types"
	lua "github.com/yuin/gopher-lua"
)

// dataFiles are the catalogs we look for, loaded in this order.
var dataFiles = []string{"world.lua", "items.lua", "events.lua", "npcs.lua", "phrases.lua"}

// collector accumulates Lua definitions during file execution.
type collector struct {
	items   []rawEntry
	events  []rawEntry
	npcs    []rawEntry
	phrases []rawEntry
	world   *lua.LTable
}

// rawEntry holds an id'd Lua table before compilation.
type rawEntry struct {
	id    string
	table *lua.LTable
}

// Load reads all known data files from dir and compiles them into
// GameData. Missing files are skipped silently; files that fail to
// execute are skipped with a warning. The returned data is always
// usable.
func Load(dir string) (*types.GameData, []error) {
	data := &types.GameData{Phrases: types.PhraseBook{}}

	if _, err := os.Stat(dir); err != nil {
		// No data directory at all — the engine runs on defaults.
		return data, nil
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	var warnings []error
	for _, name := range dataFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := L.DoFile(path); err != nil {
			warnings = append(warnings, fmt.Errorf("executing %s: %w", name, err))
		}
	}

	compile(coll, data)
	return data, warnings
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
	// Remove math.randomseed to preserve determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
