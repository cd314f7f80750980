package token

import "fmt"

// Category is the lexical class of a token.
type Category int

const (
	UNKNOWN Category = iota
	ARTICLE
	NOUN
	VERB
	ADJECTIVE
	PREPOSITION
	DOT
)

func (c Category) String() string {
	switch c {
	case ARTICLE:
		return "ARTICLE"
	case NOUN:
		return "NOUN"
	case VERB:
		return "VERB"
	case ADJECTIVE:
		return "ADJECTIVE"
	case PREPOSITION:
		return "PREPOSITION"
	case DOT:
		return "DOT"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the category by name so JSON payloads stay readable.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}

// ParseCategory is the inverse of Category.String. Unknown names map to UNKNOWN.
func ParseCategory(s string) Category {
	for c := ARTICLE; c <= DOT; c++ {
		if c.String() == s {
			return c
		}
	}
	return UNKNOWN
}

// Token is a classified word of a sentence. Text keeps the original case.
// Offset is an approximate progress counter over the trimmed sentence,
// not an exact byte position.
type Token struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
	Offset   int      `json:"offset"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q@%d)", t.Category, t.Text, t.Offset)
}

// Dot is the sentence terminator literal.
const Dot = "."
