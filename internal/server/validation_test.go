package server

import (
	"strings"
	"testing"
)

func TestIsSafeText(t *testing.T) {
	cases := []struct {
		text string
		ok   bool
	}{
		{"hello", true},
		{"two words", true},
		{"émoji 🎨", true},
		{"", true},
		{"line\nbreak", false},
		{"tab\tseparated", false},
		{"null\x00byte", false},
		{"del\x7f", false},
	}
	for _, tc := range cases {
		if got := isSafeText(tc.text); got != tc.ok {
			t.Fatalf("isSafeText(%q) = %v, want %v", tc.text, got, tc.ok)
		}
	}
}

func TestValidateJoinRequest(t *testing.T) {
	valid := joinRoomRequest{Name: "Alice"}
	if err := validateRequest(&valid); err != nil {
		t.Fatalf("expected a plain name to validate, got %v", err)
	}

	withID := joinRoomRequest{PlayerID: "abc-123", Name: "Alice"}
	if err := validateRequest(&withID); err != nil {
		t.Fatalf("expected rejoin with an id to validate, got %v", err)
	}

	for name, req := range map[string]joinRoomRequest{
		"missing name":  {},
		"name too long": {Name: strings.Repeat("a", maxNameLength+1)},
		"control chars": {Name: "Ali\nce"},
		"id too long":   {PlayerID: strings.Repeat("x", maxPlayerIDLength+1), Name: "Alice"},
	} {
		if err := validateRequest(&req); err == nil {
			t.Fatalf("%s: expected a validation error", name)
		}
	}
}

func TestValidateGuessAndChatBounds(t *testing.T) {
	guess := guessRequest{PlayerID: "p1", Text: strings.Repeat("g", maxGuessLength)}
	if err := validateRequest(&guess); err != nil {
		t.Fatalf("expected a max-length guess to validate, got %v", err)
	}
	guess.Text += "g"
	if err := validateRequest(&guess); err == nil {
		t.Fatal("expected an over-length guess to be rejected")
	}

	chat := chatRequest{PlayerID: "p1", Text: strings.Repeat("c", maxChatLength)}
	if err := validateRequest(&chat); err != nil {
		t.Fatalf("expected a max-length chat message to validate, got %v", err)
	}
	chat.Text += "c"
	if err := validateRequest(&chat); err == nil {
		t.Fatal("expected an over-length chat message to be rejected")
	}
}

func TestValidateDrawRequestKinds(t *testing.T) {
	for _, kind := range []string{"stroke", "clear"} {
		req := drawRequest{PlayerID: "p1", Kind: kind}
		if err := validateRequest(&req); err != nil {
			t.Fatalf("kind %q: expected to validate, got %v", kind, err)
		}
	}
	req := drawRequest{PlayerID: "p1", Kind: "scribble"}
	if err := validateRequest(&req); err == nil {
		t.Fatal("expected an unknown drawing kind to be rejected")
	}
}
