package words

import "math/rand"

// Bank is an immutable list of candidate words for drawing rounds.
type Bank struct {
	list []string
}

var defaultWords = []string{
	"cat", "dog", "house", "car", "tree", "flower", "sun", "moon", "star", "fish",
	"bird", "apple", "banana", "chair", "table", "computer", "phone", "book", "music", "dance",
}

// Default returns the built-in vocabulary.
func Default() *Bank {
	return New(defaultWords)
}

// New copies words into a fresh bank so callers cannot mutate it afterwards.
func New(list []string) *Bank {
	copied := make([]string, len(list))
	copy(copied, list)
	return &Bank{list: copied}
}

func (b *Bank) Len() int {
	return len(b.list)
}

// Pick returns a uniformly random word from the bank.
func (b *Bank) Pick() string {
	if len(b.list) == 0 {
		return ""
	}
	return b.list[rand.Intn(len(b.list))]
}

// PickDifferent returns a random word other than current, or current
// itself when the bank holds no other word.
func (b *Bank) PickDifferent(current string) string {
	if len(b.list) == 0 {
		return current
	}
	start := rand.Intn(len(b.list))
	for i := 0; i < len(b.list); i++ {
		if word := b.list[(start+i)%len(b.list)]; word != current {
			return word
		}
	}
	return current
}
