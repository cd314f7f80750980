package parser

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/little-english/internal/token"
)

var (
	ErrEmptyTokens   = errors.New("Lista de tokens vacía")
	ErrUnexpectedEnd = errors.New("Token inesperado: fin de oración")
)

// UnexpectedTokenError is raised when the lookahead does not match the grammar.
type UnexpectedTokenError struct {
	Expected token.Category
	Found    token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("Se esperaba %s, pero se encontró %s: '%s'", e.Expected, e.Found.Category, e.Found.Text)
}

// TrailingTokensError is raised when tokens remain after a complete sentence.
type TrailingTokensError struct {
	Remaining string
}

func (e *TrailingTokensError) Error() string {
	return "Tokens adicionales después del punto: " + e.Remaining
}

// IsSyntaxError reports whether err is one of the syntax checker failures.
func IsSyntaxError(err error) bool {
	var ute *UnexpectedTokenError
	var tte *TrailingTokensError
	return errors.Is(err, ErrEmptyTokens) ||
		errors.Is(err, ErrUnexpectedEnd) ||
		errors.As(err, &ute) ||
		errors.As(err, &tte)
}
