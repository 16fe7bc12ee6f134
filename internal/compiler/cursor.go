package compiler

import (
	"fmt"
	"strings"

	"github.com/aretw0/winnow/pkg/domain"
)

// cursor walks the lines of a script. Line endings ("\n" or "\r\n") are
// already stripped from every entry.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(text string) *cursor {
	if text == "" {
		return &cursor{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return &cursor{lines: lines}
}

// next consumes a line and returns it with its 1-based number.
func (c *cursor) next() (string, int, bool) {
	if c.pos >= len(c.lines) {
		return "", c.pos + 1, false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, c.pos, true
}

func (c *cursor) peek() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	return c.lines[c.pos], true
}

func (c *cursor) advance() {
	c.pos++
}

func (c *cursor) skipBlank() {
	for c.pos < len(c.lines) && c.lines[c.pos] == "" {
		c.pos++
	}
}

func (c *cursor) stringLine(field string) (string, error) {
	line, lineNo, ok := c.next()
	if !ok {
		return "", &ParseError{Line: lineNo, Err: fmt.Errorf("%w: %s", ErrMissingLine, field)}
	}
	return line, nil
}

func (c *cursor) intLine(field string) (domain.NodeID, error) {
	line, lineNo, ok := c.next()
	if !ok {
		return 0, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: %s", ErrMissingLine, field)}
	}
	id, err := parseNodeID(line)
	if err != nil {
		return 0, &ParseError{Line: lineNo, Err: fmt.Errorf("%s: %w", field, err)}
	}
	return id, nil
}
