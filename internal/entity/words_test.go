package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordSet(t *testing.T) {
	t.Run("Add skips duplicates and keeps order", func(t *testing.T) {
		// Given: an empty set
		set := NewWordSet()

		// When: words are added with a duplicate in between
		assert.True(t, set.Add("ten"))
		assert.True(t, set.Add("net"))
		assert.False(t, set.Add("ten"))

		// Then: the duplicate is dropped and order is play order
		assert.Equal(t, WordSet{"ten", "net"}, set)
		assert.True(t, set.Contains("net"))
		assert.False(t, set.Contains("tent"))
	})

	t.Run("Clone is independent", func(t *testing.T) {
		set := NewWordSet("a", "b")
		clone := set.Clone()

		clone[0] = "c"

		assert.Equal(t, WordSet{"a", "b"}, set)
	})

	t.Run("Clone of nil stays nil", func(t *testing.T) {
		var set WordSet

		assert.Nil(t, set.Clone())
	})
}
