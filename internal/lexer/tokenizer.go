// Package lexer turns Little English sentences into classified tokens.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/little-english/internal/lexicon"
	"github.com/DjordjeVuckovic/little-english/internal/token"
)

// Tokenizer interface defines the method for tokenizing sentences.
type Tokenizer interface {
	Tokenize(sentence string) ([]token.Token, error)
}

// LookupFunc resolves a lower-case word to its category.
type LookupFunc func(word string) (token.Category, bool)

// VocabularyTokenizer classifies words against a closed vocabulary.
// It holds no per-call state and is safe for concurrent use.
type VocabularyTokenizer struct {
	lookup LookupFunc
}

// NewTokenizer creates a tokenizer backed by the Little English lexicon.
func NewTokenizer() *VocabularyTokenizer {
	return &VocabularyTokenizer{lookup: lexicon.Lookup}
}

// NewTokenizerWithLookup creates a tokenizer over a custom lookup.
func NewTokenizerWithLookup(lookup LookupFunc) *VocabularyTokenizer {
	return &VocabularyTokenizer{lookup: lookup}
}

var defaultTokenizer = NewTokenizer()

// Tokenize runs the default tokenizer.
func Tokenize(sentence string) ([]token.Token, error) {
	return defaultTokenizer.Tokenize(sentence)
}

// Tokenize splits the sentence on whitespace runs and classifies every word,
// splitting a trailing '.' into its own DOT token. It stops at the first
// unknown word and returns a *LexicalError without any tokens.
//
// Offsets advance by the rune length of each word plus one separator, so they
// drift from real positions when the input has irregular spacing.
func (t *VocabularyTokenizer) Tokenize(sentence string) ([]token.Token, error) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return nil, ErrEmptyInput
	}

	words := strings.Fields(sentence)
	tokens := make([]token.Token, 0, len(words)+1)
	pos := 0

	for i, word := range words {
		if stem, ok := strings.CutSuffix(word, token.Dot); ok {
			if stem != "" {
				tok, err := t.classify(stem, pos)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, tok)
			}
			tokens = append(tokens, token.Token{
				Category: token.DOT,
				Text:     token.Dot,
				Offset:   pos + utf8.RuneCountInString(stem),
			})
		} else {
			tok, err := t.classify(word, pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		}

		pos += utf8.RuneCountInString(word)
		if i < len(words)-1 {
			pos++
		}
	}

	return tokens, nil
}

func (t *VocabularyTokenizer) classify(word string, pos int) (token.Token, error) {
	category, ok := t.lookup(strings.ToLower(word))
	if !ok {
		return token.Token{}, &LexicalError{Word: word, Offset: pos}
	}
	return token.Token{Category: category, Text: word, Offset: pos}, nil
}
