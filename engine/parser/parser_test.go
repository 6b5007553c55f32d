package parser

import (
	"testing"

	"github.com/nathoo/neonboroughs/types"
)

func TestParse_Verbs(t *testing.T) {
	cases := []struct {
		input  string
		kind   types.IntentKind
		target string
	}{
		{"train", types.IntentTrain, ""},
		{"workout", types.IntentTrain, ""},
		{"go to the docks", types.IntentGo, "docks"},
		{"visit old town", types.IntentGo, "old town"},
		{"work", types.IntentWork, ""},
		{"start shift", types.IntentWork, ""},
		{"socialize", types.IntentSocial, ""},
		{"hang out", types.IntentSocial, ""},
		{"phone", types.IntentPhone, ""},
		{"shop", types.IntentShop, ""},
		{"buy a noodle cup", types.IntentBuy, "noodle cup"},
		{"people", types.IntentNPCList, ""},
		{"talk", types.IntentTalk, ""},
		{"flirt", types.IntentFlirt, ""},
		{"befriend", types.IntentBefriend, ""},
		{"pick up", types.IntentPickup, ""},
		{"drop off", types.IntentDeliver, ""},
		{"deliver", types.IntentDeliver, ""},
		{"wardrobe", types.IntentWardrobe, ""},
		{"wear the synth jacket", types.IntentWear, "synth jacket"},
		{"put on jacket", types.IntentWear, "jacket"},
		{"take off my jacket", types.IntentRemove, "jacket"},
		{"cook", types.IntentCook, ""},
		{"eat", types.IntentEat, ""},
		{"haircut", types.IntentHair, ""},
		{"map", types.IntentMap, ""},
		{"look around", types.IntentLook, ""},
		{"where", types.IntentLook, ""},
	}

	for _, tc := range cases {
		got := Parse(tc.input)
		if got.Kind != tc.kind {
			t.Errorf("Parse(%q) kind = %q, want %q", tc.input, got.Kind, tc.kind)
		}
		if got.Target != tc.target {
			t.Errorf("Parse(%q) target = %q, want %q", tc.input, got.Target, tc.target)
		}
	}
}

func TestParse_EmptyIsIdle(t *testing.T) {
	if got := Parse("   "); got.Kind != types.IntentIdle {
		t.Errorf("blank input should be idle, got %q", got.Kind)
	}
}

func TestParse_UnknownIsFree(t *testing.T) {
	got := Parse("contemplate the rain")
	if got.Kind != types.IntentFree {
		t.Fatalf("unknown verb should be free, got %q", got.Kind)
	}
	if got.Text != "contemplate the rain" {
		t.Errorf("free intent must keep the original text, got %q", got.Text)
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	got := Parse("GO TO Docks")
	if got.Kind != types.IntentGo || got.Target != "docks" {
		t.Errorf("expected go/docks, got %q/%q", got.Kind, got.Target)
	}
}

func TestParse_KeepsRawText(t *testing.T) {
	got := Parse("Wear The Jacket")
	if got.Text != "Wear The Jacket" {
		t.Errorf("intent text should keep the raw input, got %q", got.Text)
	}
}
