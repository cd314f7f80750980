package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

type FileLineReader struct {
	path string
}

func NewFileLineReader(path string) *FileLineReader {
	return &FileLineReader{path: path}
}

// ReadLines returns every line of the file without its line terminator.
// A trailing newline does not produce an extra empty line.
func (r *FileLineReader) ReadLines() ([]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &InputNotFoundError{Path: r.path}
		}
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	lines, err := ReadAllLines(f)
	if err != nil {
		return nil, fmt.Errorf("read input file '%s': %w", r.path, err)
	}
	return lines, nil
}

// ReadAllLines splits r into lines of any length. Carriage returns are left
// in place; callers trim each line.
func ReadAllLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line != "" {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if err != nil {
			return lines, nil
		}
	}
}

// StringLineReader serves lines already held in memory.
type StringLineReader struct {
	lines []string
}

func NewStringLineReader(lines []string) *StringLineReader {
	return &StringLineReader{lines: lines}
}

func (r *StringLineReader) ReadLines() ([]string, error) {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out, nil
}
