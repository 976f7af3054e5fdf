package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBankIsNonEmpty(t *testing.T) {
	b := Default()
	require.Greater(t, b.Len(), 1)
	for i := 0; i < 100; i++ {
		assert.Contains(t, b.list, b.Pick())
	}
}

func TestPickDifferentAvoidsCurrent(t *testing.T) {
	b := Default()
	current := b.Pick()
	for i := 0; i < 100; i++ {
		assert.NotEqual(t, current, b.PickDifferent(current))
	}
}

func TestPickDifferentSingleEntry(t *testing.T) {
	b := New([]string{"cat"})
	assert.Equal(t, "cat", b.Pick())
	assert.Equal(t, "cat", b.PickDifferent("cat"))
}

func TestPickDifferentAllDuplicates(t *testing.T) {
	b := New([]string{"cat", "cat", "cat"})
	assert.Equal(t, "cat", b.PickDifferent("cat"))
}

func TestPickDifferentFindsLoneAlternative(t *testing.T) {
	b := New([]string{"cat", "cat", "dog", "cat"})
	for i := 0; i < 100; i++ {
		assert.Equal(t, "dog", b.PickDifferent("cat"))
	}
}

func TestEmptyBankPicks(t *testing.T) {
	b := New(nil)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.Pick())
	assert.Equal(t, "cat", b.PickDifferent("cat"))
}

func TestNewCopiesInput(t *testing.T) {
	src := []string{"cat", "dog"}
	b := New(src)
	src[0] = "mutated"
	assert.Equal(t, "cat", b.list[0])
}
