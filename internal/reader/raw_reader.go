package reader

import (
	"errors"
	"fmt"
)

// LineReader loads a whole line-oriented source into memory.
type LineReader interface {
	ReadLines() ([]string, error)
}

var ErrInputNotFound = errors.New("el archivo de entrada no existe")

// InputNotFoundError names the missing input file. It matches ErrInputNotFound.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("El archivo de entrada '%s' no existe", e.Path)
}

func (e *InputNotFoundError) Is(target error) bool {
	return target == ErrInputNotFound
}
