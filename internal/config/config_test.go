package config

import "testing"

func TestLoadUsesDefaultsWhenUnset(t *testing.T) {
	t.Setenv("ROUND_SECONDS", "")
	t.Setenv("GUESSER_POINTS", "")
	if got := Load(); got != Default() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("ROUND_SECONDS", "90")
	t.Setenv("GUESSER_POINTS", "20")
	t.Setenv("DRAWER_POINTS", "7")
	t.Setenv("WS_RATE_LIMIT", "5.5")
	t.Setenv("WS_RATE_BURST", "10")

	got := Load()
	if got.RoundSeconds != 90 || got.GuesserPoints != 20 || got.DrawerPoints != 7 {
		t.Fatalf("unexpected round config: %+v", got)
	}
	if got.WSRateLimit != 5.5 || got.WSRateBurst != 10 {
		t.Fatalf("unexpected rate config: %+v", got)
	}
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("ROUND_SECONDS", "not-a-number")
	t.Setenv("GUESSER_POINTS", "-3")
	t.Setenv("WS_RATE_LIMIT", "0")

	got := Load()
	if got != Default() {
		t.Fatalf("expected invalid values to fall back to defaults, got %+v", got)
	}
}
