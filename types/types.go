// Package types defines the shared data structures for the Neon Boroughs
// engine. This package contains only type definitions — no logic, no methods.
package types

// IntentKind is a classified player action category.
type IntentKind string

// The fixed intent vocabulary. The engine consumes these opaquely; only the
// parser ever looks at raw text.
const (
	IntentTrain    IntentKind = "train"
	IntentGo       IntentKind = "go"
	IntentWork     IntentKind = "work"
	IntentSocial   IntentKind = "social"
	IntentPhone    IntentKind = "phone"
	IntentShop     IntentKind = "shop"
	IntentBuy      IntentKind = "buy"
	IntentNPCList  IntentKind = "npclist"
	IntentTalk     IntentKind = "talk"
	IntentFlirt    IntentKind = "flirt"
	IntentBefriend IntentKind = "befriend"
	IntentPickup   IntentKind = "pickup"
	IntentDeliver  IntentKind = "deliver"
	IntentWardrobe IntentKind = "wardrobe"
	IntentWear     IntentKind = "wear"
	IntentRemove   IntentKind = "remove"
	IntentCook     IntentKind = "cook"
	IntentEat      IntentKind = "eat"
	IntentHair     IntentKind = "hair"
	IntentMap      IntentKind = "map"
	IntentLook     IntentKind = "look"
	IntentFree     IntentKind = "free"
	IntentIdle     IntentKind = "idle"
)

// Intent is the classified representation of a player action.
type Intent struct {
	Kind   IntentKind
	Target string // district/place for "go", item text for "buy"/"wear"/"remove"
	Text   string // raw input, kept for "free"
}

// EventOutcome is one ambient event's narration as shown to the player.
type EventOutcome struct {
	Narrative string
	System    string
}

// Result is the narration payload returned by a single game step.
type Result struct {
	Narrative string
	Dialogue  string
	System    string
	Options   []string
	Events    []EventOutcome
}

// Table is a labeled stat table rendered by the front ends.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Change is a bulk state delta applied to a character. Zero fields are
// no-ops; every applied field is clamped to its domain.
type Change struct {
	Stats      map[string]int
	Skills     map[string]int
	HP         int
	Energy     int
	Morale     int
	Hunger     int
	Leisure    int
	Popularity int
	Money      int
}

// Item kinds.
const (
	ItemClothing = "clothing"
	ItemFood     = "food"
	ItemGadget   = "gadget"
	ItemMisc     = "misc"
)

// Item is a static catalog entry. Category names the equipment slot for
// clothing and gadgets ("top", "bottom", "shoes", "underwear", "gadget").
type Item struct {
	ID        string
	Name      string
	Weight    int
	Type      string
	Category  string
	Gender    string // "", "female", "male" — affinity, not a restriction
	Price     int
	Nutrition int
	Effect    Change
}

// EventTrigger restricts an ambient event to a district and/or hour.
// Nil or empty fields match anything.
type EventTrigger struct {
	District string
	Hour     *int
}

// EventDef is a static ambient-event catalog entry.
type EventDef struct {
	ID        string
	Trigger   *EventTrigger
	Narrative string
	System    string
	Change    *Change
}

// NPCDef is a static roster entry.
type NPCDef struct {
	ID       string
	Name     string
	Role     string
	Schedule string
}

// PhraseBook maps a dialogue pool key to its candidate lines.
type PhraseBook map[string][]string

// DistrictDef is one city district and its places, in definition order.
type DistrictDef struct {
	ID     string
	Places []string
}

// WorldConfig describes the city graph and the starting location.
type WorldConfig struct {
	Districts     []DistrictDef
	StartDistrict string
	StartPlace    string
}

// GameData bundles all static catalogs consumed by the engine.
// Any of these may be empty; the engine treats missing data as
// "nothing available", never as an error.
type GameData struct {
	Items   []Item
	Phrases PhraseBook
	Events  []EventDef
	NPCs    []NPCDef
	World   *WorldConfig
}
