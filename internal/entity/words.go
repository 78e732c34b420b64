package entity

// WordSet - ordered set of normalized words, kept in play order.
type WordSet []string

func NewWordSet(words ...string) WordSet {
	set := make(WordSet, 0, len(words))
	for _, word := range words {
		set.Add(word)
	}

	return set
}

func (that WordSet) Contains(word string) bool {
	for _, existing := range that {
		if existing == word {
			return true
		}
	}

	return false
}

// Add - appends word unless it is already present.
func (that *WordSet) Add(word string) bool {
	if that.Contains(word) {
		return false
	}

	*that = append(*that, word)

	return true
}

func (that WordSet) Len() int {
	return len(that)
}

func (that WordSet) Clone() WordSet {
	if that == nil {
		return nil
	}

	clone := make(WordSet, len(that))
	copy(clone, that)

	return clone
}
