package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmotionsCatalogue(t *testing.T) {
	all := Emotions()
	assert.Len(t, all, 9)
	assert.Equal(t, 0, len(all)%GridColumns)

	labels := make([]string, len(all))
	for i, e := range all {
		labels[i] = e.Label
		assert.Equal(t, rune('1'+i), e.Key)
		assert.NotEmpty(t, e.Glyph)
	}
	assert.Equal(t, []string{Happy, Sad, Angry, Excited, Crying, Dead, Loved, Tired, Sick}, labels)

	// Returned slice is a copy
	all[0].Label = "Changed"
	assert.Equal(t, Happy, Emotions()[0].Label)
}

func TestLookupByKey(t *testing.T) {
	e, ok := LookupByKey('7')
	assert.True(t, ok)
	assert.Equal(t, Loved, e.Label)

	_, ok = LookupByKey('0')
	assert.False(t, ok)
	_, ok = LookupByKey('q')
	assert.False(t, ok)
}

func TestGlyphFor(t *testing.T) {
	assert.Equal(t, "😊", GlyphFor(Happy))
	assert.Equal(t, "", GlyphFor("happy"))
	assert.Equal(t, "", GlyphFor("Bored"))
}
