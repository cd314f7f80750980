package lexer

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned for sentences that are blank after trimming.
var ErrEmptyInput = errors.New("Oración vacía")

// LexicalError reports a word missing from the vocabulary.
type LexicalError struct {
	Word   string
	Offset int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("Token no reconocido: '%s' en posición %d", e.Word, e.Offset)
}
