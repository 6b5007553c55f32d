// Package save implements JSON serialization and deserialization of a
// game session. Only data shape lives here; absent optional fields are
// rehydrated with defaults on load.
package save

import (
	"encoding/json"

	"github.com/nathoo/neonboroughs/engine"
	"github.com/nathoo/neonboroughs/engine/character"
	"github.com/nathoo/neonboroughs/engine/quest"
	"github.com/nathoo/neonboroughs/types"
)

// FormatVersion identifies the save layout.
const FormatVersion = "1"

// WorldSave is the serialized world: graph, active location, clock.
type WorldSave struct {
	Districts []types.DistrictDef `json:"districts"`
	District  string              `json:"district"`
	Place     string              `json:"place"`
	Day       int                 `json:"day"`
	Hour      int                 `json:"hour"`
}

// NPCSave is the mutable slice of one roster entry.
type NPCSave struct {
	ID           string `json:"id"`
	Relationship int    `json:"relationship"`
	District     string `json:"district"`
	Place        string `json:"place"`
}

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Version     string               `json:"version"`
	Turn        int                  `json:"turn"`
	Character   *character.Character `json:"character"`
	World       WorldSave            `json:"world"`
	NPCs        []NPCSave            `json:"npcs"`
	Quest       *quest.Delivery      `json:"quest,omitempty"`
	RNGSeed     int64                `json:"rng_seed"`
	RNGPosition int64                `json:"rng_position"`
}

// Save serializes a session to JSON bytes.
func Save(s *engine.Session) ([]byte, error) {
	data := SaveData{
		Version:   FormatVersion,
		Turn:      s.TurnCount,
		Character: s.Character,
		World: WorldSave{
			Districts: s.World.Districts,
			District:  s.World.District,
			Place:     s.World.Place,
			Day:       s.World.Clock.Day,
			Hour:      s.World.Clock.Hour,
		},
		Quest:       s.Quest,
		RNGSeed:     s.RNG.Seed(),
		RNGPosition: s.RNG.Position(),
	}
	for _, n := range s.Roster.NPCs {
		data.NPCs = append(data.NPCs, NPCSave{
			ID:           n.ID,
			Relationship: n.Relationship,
			District:     n.District,
			Place:        n.Place,
		})
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData, substituting defaults for
// absent optional fields so a loaded game never carries nil state.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	if sd.Character != nil {
		hydrateCharacter(sd.Character)
	}
	if sd.World.Day < 1 {
		sd.World.Day = 1
	}
	return &sd, nil
}

// hydrateCharacter fills defaults the serialized form may omit.
func hydrateCharacter(c *character.Character) {
	if c.Stats == nil {
		c.Stats = map[string]int{}
	}
	if c.Skills == nil {
		c.Skills = map[string]int{}
	}
	if c.Reputation == nil {
		c.Reputation = map[string]int{}
	}
	if c.Contacts == nil {
		c.Contacts = map[string]bool{}
	}
	if c.Inventory == nil {
		c.Inventory = character.NewInventory(0)
	}
	if c.Inventory.Limit <= 0 {
		c.Inventory.Limit = character.DefaultCapacity
	}
	if c.Inventory.Items == nil {
		c.Inventory.Items = []types.Item{}
	}
	if c.Weights == (character.Weights{}) {
		c.Weights = character.DefaultWeights
	}
}

// Apply restores save data onto a session. NPCs present in the save but
// absent from the roster are ignored; roster entries missing from the
// save keep their current state.
func Apply(s *engine.Session, sd *SaveData) {
	if sd.Character != nil {
		s.Character = sd.Character
		s.Character.UpdateDerived()
	}
	if len(sd.World.Districts) > 0 {
		s.World.Districts = sd.World.Districts
	}
	if sd.World.District != "" {
		// MoveTo revalidates the saved location; a place that is not in
		// its saved district snaps to the district's first place, and an
		// unknown district keeps the current location.
		if !s.World.MoveTo(sd.World.District, sd.World.Place) {
			s.World.MoveTo(sd.World.District, "")
		}
	}
	s.World.Clock.Day = sd.World.Day
	s.World.Clock.Hour = sd.World.Hour

	for _, ns := range sd.NPCs {
		if n := s.Roster.ByID(ns.ID); n != nil {
			n.Relationship = ns.Relationship
			n.District = ns.District
			n.Place = ns.Place
		}
	}

	s.Quest = sd.Quest
	s.Menu = nil
	s.TurnCount = sd.Turn
	s.RNG = engine.RestoreRNG(sd.RNGSeed, sd.RNGPosition)
}
