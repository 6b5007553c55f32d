// Package world models the city graph (districts and their places), the
// active location, and the day/hour clock.
package world

import "github.com/nathoo/neonboroughs/types"

// The clock starts on the morning of day one.
const (
	StartDay  = 1
	StartHour = 8
)

// Clock is the in-game calendar. It only ever advances.
type Clock struct {
	Day  int
	Hour int
}

// World holds the district graph and the active location.
type World struct {
	Districts []types.DistrictDef
	District  string // active district
	Place     string // active place within the district
	Clock     Clock
}

// DefaultConfig is the built-in city used when no world.lua is provided.
func DefaultConfig() *types.WorldConfig {
	return &types.WorldConfig{
		Districts: []types.DistrictDef{
			{ID: "downtown", Places: []string{"apartment", "plaza", "courier office", "mall", "salon"}},
			{ID: "slums", Places: []string{"back alley", "street market", "squat"}},
			{ID: "highrise", Places: []string{"penthouse lobby", "gym", "boutique"}},
			{ID: "docks", Places: []string{"pier", "warehouse", "dive bar"}},
			{ID: "old town", Places: []string{"chapel", "tea house", "bathhouse"}},
		},
		StartDistrict: "downtown",
		StartPlace:    "apartment",
	}
}

// New creates a world positioned at the config's start location. A nil
// config falls back to the built-in city.
func New(cfg *types.WorldConfig) *World {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	w := &World{
		Districts: cfg.Districts,
		District:  cfg.StartDistrict,
		Place:     cfg.StartPlace,
		Clock:     Clock{Day: StartDay, Hour: StartHour},
	}
	// A start place outside the start district's list would break the
	// location invariant; snap to the district's first place.
	if !w.HasPlace(w.District, w.Place) {
		if places := w.Places(w.District); len(places) > 0 {
			w.Place = places[0]
		}
	}
	return w
}

// AdvanceTime moves the clock forward, wrapping hour overflow into day
// increments. Multi-day jumps in one call are supported.
func (w *World) AdvanceTime(hours int) {
	w.Clock.Hour += hours
	for w.Clock.Hour >= 24 {
		w.Clock.Hour -= 24
		w.Clock.Day++
	}
}

// HasDistrict reports whether the district exists.
func (w *World) HasDistrict(id string) bool {
	for _, d := range w.Districts {
		if d.ID == id {
			return true
		}
	}
	return false
}

// Places returns the place list of a district, or nil for an unknown one.
func (w *World) Places(district string) []string {
	for _, d := range w.Districts {
		if d.ID == district {
			return d.Places
		}
	}
	return nil
}

// HasPlace reports whether the place belongs to the district.
func (w *World) HasPlace(district, place string) bool {
	for _, p := range w.Places(district) {
		if p == place {
			return true
		}
	}
	return false
}

// MoveTo sets the active location. The place must belong to the district;
// an empty place snaps to the district's first place. Returns false and
// leaves the location unchanged if the target is invalid.
func (w *World) MoveTo(district, place string) bool {
	places := w.Places(district)
	if places == nil {
		return false
	}
	if place == "" {
		place = places[0]
	} else if !w.HasPlace(district, place) {
		return false
	}
	w.District = district
	w.Place = place
	return true
}

// FindPlace locates a place by name anywhere in the city and returns its
// district. Used when the player names a place without its district.
func (w *World) FindPlace(place string) (district string, ok bool) {
	for _, d := range w.Districts {
		for _, p := range d.Places {
			if p == place {
				return d.ID, true
			}
		}
	}
	return "", false
}
