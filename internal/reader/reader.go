// Package reader loads the whole search input - a file or stdin - into memory
package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// ReadInput reads fileName, or stdin when fileName is empty.
func ReadInput(stdin io.Reader, fileName string) (string, error) {
	switch fileName {
	case "":
		return readStdIn(stdin)
	default:
		return readFile(fileName)
	}
}

func readStdIn(stdin io.Reader) (string, error) {
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return validate(raw, "stdin")
}

func readFile(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("error opening file %q: %w", fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("specified source filename %q is a directory", fileName)
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("couldn't read file %q: %w", fileName, err)
	}
	return validate(raw, fileName)
}

func validate(raw []byte, source string) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%s: %w", source, ErrInvalidEncoding)
	}
	return string(raw), nil
}
