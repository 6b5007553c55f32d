package engine

import (
	"testing"

	"github.com/nathoo/neonboroughs/engine/character"
	"github.com/nathoo/neonboroughs/types"
)

func testData() *types.GameData {
	return &types.GameData{
		Items: []types.Item{
			{ID: "synth_jacket", Name: "synth jacket", Type: types.ItemClothing, Category: "top", Weight: 2, Price: 60},
			{ID: "noodle_cup", Name: "noodle cup", Type: types.ItemFood, Weight: 1, Price: 4, Nutrition: 12},
		},
		NPCs: []types.NPCDef{
			{ID: "kaz", Name: "Kaz", Role: "dispatcher"},
		},
		Phrases: types.PhraseBook{},
	}
}

func testSession() *Session {
	return NewSession(testData(), character.DefaultProfile(), 42)
}

func TestNewSession_Defaults(t *testing.T) {
	s := testSession()

	if s.World.District != "downtown" || s.World.Place != "apartment" {
		t.Errorf("expected downtown apartment, got %s %s", s.World.District, s.World.Place)
	}
	if s.TurnCount != 0 {
		t.Errorf("fresh session should be at turn 0, got %d", s.TurnCount)
	}
	if s.Character.Name != "Nova" {
		t.Errorf("expected default profile, got %q", s.Character.Name)
	}
	if s.Quest != nil || s.Menu != nil {
		t.Error("fresh session has no quest and no menu")
	}
}

func TestNewSession_NilData(t *testing.T) {
	s := NewSession(nil, character.DefaultProfile(), 1)

	if s.World == nil || s.Character == nil {
		t.Fatal("nil data should still produce a playable session")
	}
	if len(s.Roster.NPCs) != 0 {
		t.Error("nil data means an empty roster")
	}
}

func TestNewSession_StreetBackgroundStartsInSlums(t *testing.T) {
	profile := character.DefaultProfile()
	profile.Background = "street kid"
	s := NewSession(testData(), profile, 1)

	if s.World.District != "slums" {
		t.Errorf("street background should start in the slums, got %s", s.World.District)
	}
}

func TestStatCheck_Formula(t *testing.T) {
	s := testSession()

	s.Character.Stats[character.StatCharisma] = 10
	if got := s.StatCheck(character.StatCharisma, 55); got != 55 {
		t.Errorf("stat 10 should leave the base untouched, got %d", got)
	}

	s.Character.Stats[character.StatCharisma] = 16
	if got := s.StatCheck(character.StatCharisma, 55); got != 73 {
		t.Errorf("expected 55+(16-10)*3 = 73, got %d", got)
	}
	if got := s.StatCheck(character.StatCharisma, 50); got != 68 {
		t.Errorf("expected 50+(16-10)*3 = 68, got %d", got)
	}

	s.Character.Stats[character.StatCharisma] = 1
	if got := s.StatCheck(character.StatCharisma, 55); got != 28 {
		t.Errorf("expected 55-27 = 28, got %d", got)
	}
	if got := s.StatCheck(character.StatCharisma, 20); got != 10 {
		t.Errorf("check should floor at 10, got %d", got)
	}

	s.Character.Stats[character.StatCharisma] = 20
	if got := s.StatCheck(character.StatCharisma, 80); got != 90 {
		t.Errorf("check should cap at 90, got %d", got)
	}
}

func TestStep_AdvancesClockAndDecays(t *testing.T) {
	s := testSession()

	s.Step("") // idle turn; the character starts naked
	if s.TurnCount != 1 {
		t.Errorf("expected turn 1, got %d", s.TurnCount)
	}
	if s.World.Clock.Hour != 9 {
		t.Errorf("expected hour 9, got %d", s.World.Clock.Hour)
	}
	if s.Character.Hunger != 66 {
		t.Errorf("expected hunger 70-4 = 66, got %d", s.Character.Hunger)
	}
	if s.Character.Morale != 7 {
		t.Errorf("expected morale 10-3 (naked) = 7, got %d", s.Character.Morale)
	}
}

func TestPassiveDecay_StarvationBleed(t *testing.T) {
	s := testSession()
	s.Character.Equip(character.SlotTop, types.Item{ID: "top", Type: types.ItemClothing, Category: "top"})
	s.Character.Hunger = 22
	hp, energy, morale := s.Character.HP, s.Character.Energy, s.Character.Morale

	s.applyPassiveDecay() // hunger 22-4 = 18, under the threshold
	if s.Character.Hunger != 18 {
		t.Fatalf("expected hunger 18, got %d", s.Character.Hunger)
	}
	if s.Character.HP != hp-2 || s.Character.Energy != energy-2 || s.Character.Morale != morale-2 {
		t.Errorf("starvation should bleed hp/energy/morale: hp=%d energy=%d morale=%d",
			s.Character.HP, s.Character.Energy, s.Character.Morale)
	}
}

func TestPassiveDecay_ExhaustionBleed(t *testing.T) {
	s := testSession()
	s.Character.Equip(character.SlotTop, types.Item{ID: "top", Type: types.ItemClothing, Category: "top"})
	s.Character.Energy = 20
	hp, morale := s.Character.HP, s.Character.Morale

	s.applyPassiveDecay()
	if s.Character.HP != hp-2 || s.Character.Morale != morale-2 {
		t.Errorf("exhaustion should bleed hp/morale: hp=%d morale=%d",
			s.Character.HP, s.Character.Morale)
	}
}

func TestStep_MenuSelectionSkipsTurnPipeline(t *testing.T) {
	s := testSession()
	s.Character.Inventory.Add(types.Item{ID: "noodle_cup", Name: "noodle cup", Type: types.ItemFood, Weight: 1, Nutrition: 12})

	s.Step("eat") // opens the menu; this is a full turn
	if s.Menu == nil {
		t.Fatal("eat with food carried should open a menu")
	}
	turn, hour, hunger := s.TurnCount, s.World.Clock.Hour, s.Character.Hunger

	result := s.Step("1") // resolves the menu; costs no time
	if s.TurnCount != turn || s.World.Clock.Hour != hour {
		t.Error("menu selection must not advance the turn or the clock")
	}
	if s.Character.Hunger != hunger+12 {
		t.Errorf("expected hunger +12, got %d (was %d)", s.Character.Hunger, hunger)
	}
	if result.Narrative == "" {
		t.Error("eating should narrate")
	}
}

func TestStep_MenuConsumedByInvalidInput(t *testing.T) {
	s := testSession()
	s.Character.Inventory.Add(types.Item{ID: "noodle_cup", Name: "noodle cup", Type: types.ItemFood, Weight: 1, Nutrition: 12})

	s.Step("eat")
	if s.Menu == nil {
		t.Fatal("menu should be open")
	}

	result := s.Step("banana")
	if s.Menu != nil {
		t.Error("any input consumes the menu, valid or not")
	}
	if result.System == "" {
		t.Error("invalid selection should explain itself")
	}

	// The next input is back to normal intent parsing.
	turn := s.TurnCount
	s.Step("train")
	if s.TurnCount != turn+1 {
		t.Error("input after a consumed menu should be a normal turn")
	}
}

func TestStep_MenuRejectsOutOfRange(t *testing.T) {
	s := testSession()
	s.Character.Inventory.Add(types.Item{ID: "noodle_cup", Name: "noodle cup", Type: types.ItemFood, Weight: 1, Nutrition: 12})

	s.Step("eat")
	hunger := s.Character.Hunger
	s.Step("99")
	if s.Character.Hunger != hunger {
		t.Error("out-of-range selection must not mutate state")
	}
}

func TestHandleTrain(t *testing.T) {
	s := testSession()
	str := s.Character.Stats[character.StatStrength]
	energy := s.Character.Energy

	s.Resolve(types.Intent{Kind: types.IntentTrain})
	if s.Character.Stats[character.StatStrength] != str+1 {
		t.Errorf("expected strength +1, got %d", s.Character.Stats[character.StatStrength])
	}
	if s.Character.Energy != energy-6 {
		t.Errorf("expected energy -6, got %d", s.Character.Energy)
	}
}

func TestHandleGo(t *testing.T) {
	s := testSession()

	s.Resolve(types.Intent{Kind: types.IntentGo, Target: "docks"})
	if s.World.District != "docks" || s.World.Place != "pier" {
		t.Errorf("district move should land at its first place, got %s %s", s.World.District, s.World.Place)
	}

	s.Resolve(types.Intent{Kind: types.IntentGo, Target: "tea house"})
	if s.World.District != "old town" || s.World.Place != "tea house" {
		t.Errorf("place move should find its district, got %s %s", s.World.District, s.World.Place)
	}

	before := s.World.District
	result := s.Resolve(types.Intent{Kind: types.IntentGo, Target: "atlantis"})
	if s.World.District != before {
		t.Error("unknown destination must not move the player")
	}
	if result.System == "" {
		t.Error("unknown destination should explain itself")
	}
}

func TestHandleWork_NonCourier(t *testing.T) {
	s := testSession()
	s.Character.Job = "clerk"
	money := s.Character.Money

	s.Resolve(types.Intent{Kind: types.IntentWork})
	if s.Character.Money != money+WorkShiftPay {
		t.Errorf("expected money +%d, got %d", WorkShiftPay, s.Character.Money)
	}
	if s.Quest != nil {
		t.Error("non-courier work must not assign a delivery shift")
	}
}

func TestHandleWork_CourierNeedsOffice(t *testing.T) {
	s := testSession()

	s.Resolve(types.Intent{Kind: types.IntentWork}) // at the apartment
	if s.Quest != nil {
		t.Error("shifts must start at the courier office")
	}
}

func TestHandleWork_AssignsShift(t *testing.T) {
	s := testSession()
	s.World.MoveTo("downtown", CourierOffice)

	s.Resolve(types.Intent{Kind: types.IntentWork})
	if s.Quest == nil {
		t.Fatal("work at the office should assign a shift")
	}
	if s.Quest.TotalTasks < 2 || s.Quest.TotalTasks > 4 {
		t.Errorf("task count out of range: %d", s.Quest.TotalTasks)
	}
	if !s.Quest.AtPickup("downtown", CourierOffice) {
		t.Error("pickup should be the office the shift started at")
	}

	// A second work while the shift runs just reports progress.
	result := s.Resolve(types.Intent{Kind: types.IntentWork})
	if result.System == "" {
		t.Error("active shift should be reported")
	}
}

func TestDelivery_FullCycle(t *testing.T) {
	s := testSession()
	s.Character.Money = 0
	s.World.MoveTo("downtown", CourierOffice)
	s.Resolve(types.Intent{Kind: types.IntentWork})
	if s.Quest == nil {
		t.Fatal("no shift assigned")
	}
	total := s.Quest.TotalTasks

	// Deliver before pickup is refused.
	s.Resolve(types.Intent{Kind: types.IntentDeliver})
	if s.Quest.Completed != 0 {
		t.Fatal("delivering without the package must not complete a task")
	}

	s.Resolve(types.Intent{Kind: types.IntentPickup})
	if !s.Quest.PickedUp {
		t.Fatal("pickup at the office should collect the package")
	}

	for i := 0; i < total; i++ {
		s.World.MoveTo(s.Quest.DropoffDistrict, s.Quest.DropoffPlace)
		moneyBefore := s.Character.Money
		s.Resolve(types.Intent{Kind: types.IntentDeliver})
		earned := s.Character.Money - moneyBefore
		if earned != DeliverySuccessPay && earned != DeliveryFailPay {
			t.Fatalf("delivery %d paid %d, want %d or %d", i, earned, DeliverySuccessPay, DeliveryFailPay)
		}
		if s.Quest == nil {
			break
		}
	}
	if s.Quest != nil {
		t.Errorf("shift should be destroyed after %d deliveries", total)
	}
}

func TestHandleBuy_ChargesAndAdds(t *testing.T) {
	s := testSession()
	s.World.MoveTo("downtown", "mall")

	s.Resolve(types.Intent{Kind: types.IntentBuy, Target: "synth jacket"})
	if s.Character.Money != 60 {
		t.Errorf("expected 120-60 = 60 cr, got %d", s.Character.Money)
	}
	if _, ok := s.Character.Inventory.FindByName("synth jacket"); !ok {
		t.Error("bought item should be carried")
	}
}

func TestHandleBuy_InsufficientFunds(t *testing.T) {
	s := testSession()
	s.World.MoveTo("downtown", "mall")
	s.Character.Money = 10

	s.Resolve(types.Intent{Kind: types.IntentBuy, Target: "synth jacket"})
	if s.Character.Money != 10 {
		t.Errorf("rejected buy must not charge, got %d", s.Character.Money)
	}
	if len(s.Character.Inventory.Items) != 0 {
		t.Error("rejected buy must not add the item")
	}
}

func TestHandleBuy_WrongPlace(t *testing.T) {
	s := testSession()
	// The apartment sells nothing.
	s.Resolve(types.Intent{Kind: types.IntentBuy, Target: "synth jacket"})
	if s.Character.Money != 120 || len(s.Character.Inventory.Items) != 0 {
		t.Error("buying away from a shop must not mutate anything")
	}
}

func TestHandleShop_OpensMenuWithLocalGoods(t *testing.T) {
	s := testSession()
	s.World.MoveTo("slums", "street market")

	result := s.Resolve(types.Intent{Kind: types.IntentShop})
	if s.Menu == nil || s.Menu.Kind != MenuShop {
		t.Fatal("shop at a market should open a shop menu")
	}
	// The market sells food and misc, not clothing.
	for _, opt := range result.Options {
		if opt == "synth jacket — 60 cr" {
			t.Error("clothing must not be on the market's shelves")
		}
	}
}

func TestHandleHair(t *testing.T) {
	s := testSession()

	s.Resolve(types.Intent{Kind: types.IntentHair})
	if s.Character.Money != 120 {
		t.Error("a haircut outside the salon must not charge")
	}

	s.World.MoveTo("downtown", "salon")
	morale := s.Character.Morale
	s.Resolve(types.Intent{Kind: types.IntentHair})
	if s.Character.Money != 120-HaircutPrice {
		t.Errorf("expected money %d, got %d", 120-HaircutPrice, s.Character.Money)
	}
	// +4 from the cut, -3 naked decay in the same turn.
	if s.Character.Morale != morale+1 {
		t.Errorf("expected morale %d, got %d", morale+1, s.Character.Morale)
	}
	if s.Character.Popularity != 3 {
		t.Errorf("expected popularity 3, got %d", s.Character.Popularity)
	}
}

func TestHandleCook_RequiresApartment(t *testing.T) {
	s := testSession()
	s.Character.Inventory.Add(types.Item{ID: "noodle_cup", Name: "noodle cup", Type: types.ItemFood, Weight: 1, Nutrition: 12})
	s.World.MoveTo("docks", "pier")

	s.Resolve(types.Intent{Kind: types.IntentCook})
	if s.Menu != nil {
		t.Error("cooking needs the apartment kitchen")
	}
}

func TestCook_BetterThanEatingRaw(t *testing.T) {
	s := testSession()
	s.Character.Inventory.Add(types.Item{ID: "noodle_cup", Name: "noodle cup", Type: types.ItemFood, Weight: 1, Nutrition: 12})
	s.Character.Hunger = 40

	s.Step("cook")
	if s.Menu == nil {
		t.Fatal("cook at the apartment should open a menu")
	}
	hunger := s.Character.Hunger
	s.Step("1")
	// 12 * 3/2 = 18.
	if s.Character.Hunger != hunger+18 {
		t.Errorf("expected hunger +18 from cooking, got +%d", s.Character.Hunger-hunger)
	}
	if len(s.Character.Inventory.Items) != 0 {
		t.Error("cooked food should be consumed")
	}
}

func TestSocialTarget_MenuAndResolution(t *testing.T) {
	s := testSession()
	kaz := s.Roster.ByID("kaz")
	s.World.MoveTo(kaz.District, kaz.Place)

	s.Resolve(types.Intent{Kind: types.IntentTalk})
	if s.Menu == nil || s.Menu.Kind != MenuSocial {
		t.Fatal("talk with someone present should open a social menu")
	}

	s.Step("1")
	// Either outcome is fine; the bookkeeping has to match it.
	switch kaz.Relationship {
	case 5:
		if !s.Character.KnowsNPC("kaz") {
			t.Error("a successful approach should save the contact")
		}
	case -2:
		if s.Character.KnowsNPC("kaz") {
			t.Error("a failed approach must not save the contact")
		}
	default:
		t.Errorf("relationship should be +5 or -2, got %d", kaz.Relationship)
	}
}

func TestSocialTarget_NobodyAround(t *testing.T) {
	s := NewSession(nil, character.DefaultProfile(), 1)

	result := s.Resolve(types.Intent{Kind: types.IntentTalk})
	if s.Menu != nil {
		t.Error("no menu without targets")
	}
	if result.System == "" {
		t.Error("an empty room should be reported")
	}
}

func TestHandlePhone_RequiresContacts(t *testing.T) {
	s := testSession()

	result := s.Resolve(types.Intent{Kind: types.IntentPhone})
	if s.Menu != nil {
		t.Error("empty contact list must not open a menu")
	}
	if result.System == "" {
		t.Error("empty contact list should be reported")
	}

	s.Character.AddContact("kaz")
	s.Resolve(types.Intent{Kind: types.IntentPhone})
	if s.Menu == nil || s.Menu.Kind != MenuPhone {
		t.Fatal("phone with contacts should open the call menu")
	}
	s.Step("1")
	if s.Roster.ByID("kaz").Relationship != 1 {
		t.Errorf("a call should warm the relationship by 1, got %d", s.Roster.ByID("kaz").Relationship)
	}
}

func TestFinishTurn_AppliesEventChange(t *testing.T) {
	data := testData()
	data.Events = []types.EventDef{
		{ID: "windfall", Narrative: "A credit chit glints in the gutter.", System: "Money +5",
			Change: &types.Change{Money: 5}},
	}
	s := NewSession(data, character.DefaultProfile(), 7)
	money := s.Character.Money

	result := s.Step("")
	if len(result.Events) != 1 {
		t.Fatalf("the only catalog event always matches, got %d events", len(result.Events))
	}
	if s.Character.Money != money+5 {
		t.Errorf("event change should apply, money %d", s.Character.Money)
	}
}

func TestHandleFree_LogsText(t *testing.T) {
	s := testSession()

	result := s.Step("contemplate the rain")
	if result.System != "Logged: contemplate the rain" {
		t.Errorf("free text should be logged verbatim, got %q", result.System)
	}
	if s.TurnCount != 1 {
		t.Error("a free action is still a turn")
	}
}

func TestPhrase_FallsBack(t *testing.T) {
	s := testSession()

	if got := s.phrase("missing_pool", "fallback"); got != "fallback" {
		t.Errorf("missing pool should fall back, got %q", got)
	}

	s.Phrases["pool"] = []string{"only line"}
	if got := s.phrase("pool", "fallback"); got != "only line" {
		t.Errorf("expected the pool line, got %q", got)
	}
}
