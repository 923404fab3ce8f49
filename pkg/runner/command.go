package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxLine bounds a single command line in bytes.
const DefaultMaxLine = 256

var (
	ErrLineTooLong = errors.New("command line too long")
	ErrInvalidUTF8 = errors.New("command line is not valid UTF-8")
)

type commandKind int

const (
	cmdAdvance commandKind = iota
	cmdSelect
	cmdQuit
	cmdUnknown
)

// command is one parsed input line.
type command struct {
	kind commandKind
	slot int // 1-based, for cmdSelect
}

// parseCommand turns a raw line into a command. Control characters are
// dropped before parsing, so escape sequences never reach the terminal.
func parseCommand(line string, maxLen int) (command, error) {
	if len(line) > maxLen {
		return command{}, fmt.Errorf("%w: %d bytes, limit %d", ErrLineTooLong, len(line), maxLen)
	}
	if !utf8.ValidString(line) {
		return command{}, ErrInvalidUTF8
	}

	text := strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, line))

	switch strings.ToLower(text) {
	case "":
		return command{kind: cmdAdvance}, nil
	case "q", "quit", "exit":
		return command{kind: cmdQuit}, nil
	}
	if n, err := strconv.Atoi(text); err == nil {
		return command{kind: cmdSelect, slot: n}, nil
	}
	return command{kind: cmdUnknown}, nil
}
