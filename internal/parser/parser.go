// Package parser validates Little English token sequences with a
// recursive-descent, single-lookahead parser:
//
//	sentence     ::= noun_phrase verb_phrase '.'
//	noun_phrase  ::= ARTICLE [ADJECTIVE] NOUN
//	verb_phrase  ::= VERB [ prep_phrase | noun_phrase ]
//	prep_phrase  ::= PREPOSITION noun_phrase
//
// The grammar is only validated; no syntax tree is built.
package parser

import "github.com/DjordjeVuckovic/little-english/internal/token"

// Parser holds the cursor over a single token sequence. It is not reusable.
type Parser struct {
	tokens []token.Token
	pos    int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Check reports whether tokens form exactly one valid sentence.
// A nil error means the sentence is valid.
func Check(tokens []token.Token) error {
	return New(tokens).Check()
}

func (p *Parser) Check() error {
	if len(p.tokens) == 0 {
		return ErrEmptyTokens
	}

	if err := p.parseSentence(); err != nil {
		return err
	}

	if cur, ok := p.current(); ok {
		return &TrailingTokensError{Remaining: cur.Text}
	}
	return nil
}

func (p *Parser) current() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) peekIs(c token.Category) bool {
	cur, ok := p.current()
	return ok && cur.Category == c
}

func (p *Parser) expect(c token.Category) error {
	cur, ok := p.current()
	if !ok {
		return ErrUnexpectedEnd
	}
	if cur.Category != c {
		return &UnexpectedTokenError{Expected: c, Found: cur}
	}
	p.pos++
	return nil
}

func (p *Parser) parseSentence() error {
	if err := p.parseNounPhrase(); err != nil {
		return err
	}
	if err := p.parseVerbPhrase(); err != nil {
		return err
	}
	return p.expect(token.DOT)
}

func (p *Parser) parseNounPhrase() error {
	if err := p.expect(token.ARTICLE); err != nil {
		return err
	}
	if p.peekIs(token.ADJECTIVE) {
		if err := p.expect(token.ADJECTIVE); err != nil {
			return err
		}
	}
	return p.expect(token.NOUN)
}

// parseVerbPhrase accepts a bare verb; a following phrase is optional.
func (p *Parser) parseVerbPhrase() error {
	if err := p.expect(token.VERB); err != nil {
		return err
	}
	switch {
	case p.peekIs(token.PREPOSITION):
		return p.parsePrepPhrase()
	case p.peekIs(token.ARTICLE):
		return p.parseNounPhrase()
	}
	return nil
}

func (p *Parser) parsePrepPhrase() error {
	if err := p.expect(token.PREPOSITION); err != nil {
		return err
	}
	return p.parseNounPhrase()
}
