package textfile

import (
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadLines reads the whole file at path and returns its lines with the
// trailing line terminator ("\n" or "\r\n") stripped. A final terminator does
// not produce an extra empty line; an empty file yields no lines.
func ReadLines(path string) ([]string, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(text), nil
}

// ReadText reads the file at path as UTF-8, replacing invalid byte
// sequences with U+FFFD.
func ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", Classify(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, unicode.UTF8.NewDecoder()))
	if err != nil {
		return "", Classify(path, err)
	}
	return string(data), nil
}

// ReadFirstLine returns the first line of path with surrounding whitespace
// removed.
func ReadFirstLine(path string) (string, error) {
	text, err := ReadText(path)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line), nil
}

// SplitLines splits text on "\n", dropping the terminator and any "\r"
// that precedes it.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
