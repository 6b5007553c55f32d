// Package parser classifies raw text into the fixed intent vocabulary.
// Intentionally dumb: no NLP, just keyword matching. Anything standing in
// for a smarter classifier only has to produce the same types.Intent.
package parser

import (
	"strings"

	"github.com/nathoo/neonboroughs/types"
)

// Single-word verbs that map straight to an intent kind.
var verbKinds = map[string]types.IntentKind{
	"train":    types.IntentTrain,
	"workout":  types.IntentTrain,
	"exercise": types.IntentTrain,
	"gym":      types.IntentTrain,

	"go":     types.IntentGo,
	"visit":  types.IntentGo,
	"travel": types.IntentGo,
	"head":   types.IntentGo,

	"work":  types.IntentWork,
	"shift": types.IntentWork,

	"socialize": types.IntentSocial,
	"socialise": types.IntentSocial,
	"mingle":    types.IntentSocial,

	"phone": types.IntentPhone,
	"call":  types.IntentPhone,

	"shop":   types.IntentShop,
	"browse": types.IntentShop,

	"buy":      types.IntentBuy,
	"purchase": types.IntentBuy,

	"npcs":   types.IntentNPCList,
	"people": types.IntentNPCList,
	"who":    types.IntentNPCList,

	"talk":  types.IntentTalk,
	"speak": types.IntentTalk,
	"chat":  types.IntentTalk,

	"flirt": types.IntentFlirt,

	"befriend": types.IntentBefriend,

	"pickup":  types.IntentPickup,
	"collect": types.IntentPickup,

	"deliver": types.IntentDeliver,
	"dropoff": types.IntentDeliver,

	"wardrobe": types.IntentWardrobe,
	"clothes":  types.IntentWardrobe,
	"outfit":   types.IntentWardrobe,

	"wear": types.IntentWear,
	"don":  types.IntentWear,

	"remove":  types.IntentRemove,
	"undress": types.IntentRemove,

	"cook": types.IntentCook,

	"eat": types.IntentEat,

	"hair":    types.IntentHair,
	"haircut": types.IntentHair,

	"map": types.IntentMap,

	"look":  types.IntentLook,
	"where": types.IntentLook,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true, "my": true, "some": true,
}

var prepositions = map[string]bool{
	"to": true, "at": true, "in": true, "into": true, "on": true,
}

// Parse converts a raw input line into an Intent. Empty input is "idle";
// unrecognized input is "free" with the original text preserved.
func Parse(input string) types.Intent {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return types.Intent{Kind: types.IntentIdle}
	}

	words := strings.Fields(strings.ToLower(raw))
	words = expandMultiWordVerbs(words)

	kind, ok := verbKinds[words[0]]
	if !ok {
		return types.Intent{Kind: types.IntentFree, Text: raw}
	}

	target := strings.Join(stripNoise(words[1:]), " ")
	return types.Intent{Kind: kind, Target: target, Text: raw}
}

// expandMultiWordVerbs handles "pick up", "take off", "put on" etc.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}
	switch words[0] {
	case "pick":
		if words[1] == "up" {
			return append([]string{"pickup"}, words[2:]...)
		}
	case "drop":
		if words[1] == "off" {
			return append([]string{"deliver"}, words[2:]...)
		}
	case "put":
		if words[1] == "on" {
			return append([]string{"wear"}, words[2:]...)
		}
	case "take":
		if words[1] == "off" {
			return append([]string{"remove"}, words[2:]...)
		}
	case "hang":
		if words[1] == "out" {
			return append([]string{"socialize"}, words[2:]...)
		}
	case "look":
		if words[1] == "around" {
			return append([]string{"look"}, words[2:]...)
		}
	case "start":
		if words[1] == "shift" {
			return append([]string{"work"}, words[2:]...)
		}
	}
	return words
}

// stripNoise removes articles and leading prepositions from a target
// phrase, so "go to the docks" targets "docks".
func stripNoise(words []string) []string {
	result := make([]string, 0, len(words))
	for i, w := range words {
		if articles[w] {
			continue
		}
		if i == 0 && prepositions[w] {
			continue
		}
		result = append(result, w)
	}
	return result
}
