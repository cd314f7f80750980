// Package lexicon holds the closed Little English vocabulary.
package lexicon

import (
	"sort"

	"github.com/DjordjeVuckovic/little-english/internal/token"
)

var vocabulary = buildVocabulary(map[token.Category][]string{
	token.ARTICLE:     {"a", "the"},
	token.NOUN:        {"cat", "dog", "man", "woman", "boy", "girl", "book", "house", "car", "tree"},
	token.VERB:        {"runs", "walks", "reads", "sees", "likes", "has", "is", "goes", "comes", "sleeps"},
	token.ADJECTIVE:   {"big", "small", "red", "blue", "happy", "sad", "old", "new", "good", "bad"},
	token.PREPOSITION: {"in", "on", "at", "to", "with", "by", "from", "under", "over", "near"},
})

func buildVocabulary(groups map[token.Category][]string) map[string]token.Category {
	v := make(map[string]token.Category)
	for category, words := range groups {
		for _, w := range words {
			if prev, ok := v[w]; ok {
				panic("lexicon: word " + w + " listed as both " + prev.String() + " and " + category.String())
			}
			v[w] = category
		}
	}
	return v
}

// Lookup returns the category of a lower-case word.
func Lookup(word string) (token.Category, bool) {
	c, ok := vocabulary[word]
	return c, ok
}

// Words returns the sorted words of one category.
func Words(category token.Category) []string {
	var words []string
	for w, c := range vocabulary {
		if c == category {
			words = append(words, w)
		}
	}
	sort.Strings(words)
	return words
}

// Categories lists the categories that have vocabulary entries, in grammar order.
func Categories() []token.Category {
	return []token.Category{token.ARTICLE, token.NOUN, token.VERB, token.ADJECTIVE, token.PREPOSITION}
}

func Size() int {
	return len(vocabulary)
}
