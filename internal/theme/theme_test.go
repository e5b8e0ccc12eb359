package theme

import "testing"

func TestByNameFallsBackToMonokai(t *testing.T) {
	got := ByName("does-not-exist")
	if got.Name != "monokai" {
		t.Fatalf("expected monokai fallback, got %q", got.Name)
	}
}

func TestByNameFindsArgonaut(t *testing.T) {
	got := ByName("argonaut")
	if got.Name != "argonaut" {
		t.Fatalf("expected argonaut, got %q", got.Name)
	}
}

func TestHeaderCyclesThroughPalette(t *testing.T) {
	m := Monokai()
	a := m.Header(0)
	b := m.Header(len(m.HeaderCycle))
	if a.Render("x") != b.Render("x") {
		t.Errorf("expected header style to cycle back after a full period")
	}
}

func TestRowAlternatesEvenOdd(t *testing.T) {
	m := Monokai()
	if m.Row(0).Render("x") == m.Row(1).Render("x") {
		t.Errorf("expected even/odd rows to render differently")
	}
	if m.Row(0).Render("x") != m.Row(2).Render("x") {
		t.Errorf("expected row parity to repeat every two rows")
	}
}

func TestSetCurrentAndCurrentRoundTrip(t *testing.T) {
	original := Current()
	defer SetCurrent(original)

	SetCurrent(Argonaut())
	if Current().Name != "argonaut" {
		t.Fatalf("expected current theme to be argonaut, got %q", Current().Name)
	}
}

func TestConfigLoadStoreRoundTrip(t *testing.T) {
	cfg := Config{ThemeName: "argonaut"}
	text, err := Store(cfg)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	back, err := Load(text)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.ThemeName != "argonaut" {
		t.Errorf("round trip: got theme %q, want argonaut", back.ThemeName)
	}
}

func TestLoadEmptyDefaultsToMonokai(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ThemeName != "monokai" {
		t.Errorf("expected default theme monokai, got %q", cfg.ThemeName)
	}
}
