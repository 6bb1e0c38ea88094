package constants

// Emotion is a built-in label offered by the interactive grid
type Emotion struct {
	Label string
	Key   rune
	Glyph string
}

// Built-in labels, in grid order (three rows of three)
const (
	Happy   = "Happy"
	Sad     = "Sad"
	Angry   = "Angry"
	Excited = "Excited"
	Crying  = "Crying"
	Dead    = "Dead"
	Loved   = "Loved"
	Tired   = "Tired"
	Sick    = "Sick"
)

var catalogue = []Emotion{
	{Label: Happy, Key: '1', Glyph: "😊"},
	{Label: Sad, Key: '2', Glyph: "😢"},
	{Label: Angry, Key: '3', Glyph: "😠"},
	{Label: Excited, Key: '4', Glyph: "🤩"},
	{Label: Crying, Key: '5', Glyph: "😭"},
	{Label: Dead, Key: '6', Glyph: "💀"},
	{Label: Loved, Key: '7', Glyph: "🥰"},
	{Label: Tired, Key: '8', Glyph: "😴"},
	{Label: Sick, Key: '9', Glyph: "🤒"},
}

// GridColumns is the number of emotions per grid row
const GridColumns = 3

// Emotions returns the built-in labels in grid order
func Emotions() []Emotion {
	out := make([]Emotion, len(catalogue))
	copy(out, catalogue)
	return out
}

// LookupByKey returns the emotion bound to key
func LookupByKey(key rune) (Emotion, bool) {
	for _, e := range catalogue {
		if e.Key == key {
			return e, true
		}
	}
	return Emotion{}, false
}

// GlyphFor returns the glyph of a built-in label, or "" for custom labels
func GlyphFor(label string) string {
	for _, e := range catalogue {
		if e.Label == label {
			return e.Glyph
		}
	}
	return ""
}
