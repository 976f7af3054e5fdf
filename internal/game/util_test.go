package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskWord(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"", ""},
		{"cat", "_ _ _"},
		{"ice cream", "_ _ _   _ _ _ _ _"},
		{"a b", "_   _"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, maskWord(tc.word), "maskWord(%q)", tc.word)
	}
}

func TestGuesserSnapshotMasksMultiWordEntries(t *testing.T) {
	r := newTestRoom(t, "ice cream")
	beginRoundForTest(t, r)

	snap := r.SnapshotFor("bob")
	assert.Empty(t, snap.CurrentWord)
	assert.Equal(t, "_ _ _   _ _ _ _ _", snap.MaskedWord)
}
