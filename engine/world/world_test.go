package world

import "testing"

func TestNew_StartsAtConfigLocation(t *testing.T) {
	w := New(nil)

	if w.District != "downtown" || w.Place != "apartment" {
		t.Errorf("expected downtown apartment, got %s %s", w.District, w.Place)
	}
	if w.Clock.Day != 1 || w.Clock.Hour != 8 {
		t.Errorf("expected day 1 hour 8, got day %d hour %d", w.Clock.Day, w.Clock.Hour)
	}
}

func TestNew_SnapsInvalidStartPlace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartPlace = "nonexistent"
	w := New(cfg)

	if w.Place != "apartment" {
		t.Errorf("invalid start place should snap to the district's first place, got %q", w.Place)
	}
}

func TestAdvanceTime_WrapsMidnight(t *testing.T) {
	w := New(nil)
	w.Clock = Clock{Day: 1, Hour: 23}

	w.AdvanceTime(3)
	if w.Clock.Day != 2 || w.Clock.Hour != 2 {
		t.Errorf("expected day 2 hour 2, got day %d hour %d", w.Clock.Day, w.Clock.Hour)
	}
}

func TestAdvanceTime_MultiDayJump(t *testing.T) {
	w := New(nil)

	w.AdvanceTime(49)
	if w.Clock.Day != 3 || w.Clock.Hour != 9 {
		t.Errorf("expected day 3 hour 9, got day %d hour %d", w.Clock.Day, w.Clock.Hour)
	}
}

func TestMoveTo_ValidatesTarget(t *testing.T) {
	w := New(nil)

	if w.MoveTo("atlantis", "") {
		t.Error("unknown district should be rejected")
	}
	if w.MoveTo("slums", "apartment") {
		t.Error("place outside the district should be rejected")
	}
	if w.District != "downtown" || w.Place != "apartment" {
		t.Error("failed moves must not change the location")
	}

	if !w.MoveTo("slums", "squat") {
		t.Fatal("valid move rejected")
	}
	if w.District != "slums" || w.Place != "squat" {
		t.Errorf("expected slums squat, got %s %s", w.District, w.Place)
	}
}

func TestMoveTo_EmptyPlaceSnapsToFirst(t *testing.T) {
	w := New(nil)

	if !w.MoveTo("docks", "") {
		t.Fatal("district-only move rejected")
	}
	if w.Place != "pier" {
		t.Errorf("expected first place pier, got %q", w.Place)
	}
}

func TestFindPlace(t *testing.T) {
	w := New(nil)

	district, ok := w.FindPlace("tea house")
	if !ok || district != "old town" {
		t.Errorf("expected old town, got %q ok=%v", district, ok)
	}
	if _, ok := w.FindPlace("moon base"); ok {
		t.Error("unknown place should not be found")
	}
}
