package game

import (
	"strings"
	"time"
)

func timeNowUTC() time.Time {
	return time.Now().UTC()
}

// maskWord renders a word as underscores for guessers, preserving word
// breaks: "ice cream" becomes "_ _ _   _ _ _ _ _".
func maskWord(word string) string {
	if word == "" {
		return ""
	}
	parts := make([]string, 0, len(word))
	for _, r := range word {
		if r == ' ' {
			parts = append(parts, " ")
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}
