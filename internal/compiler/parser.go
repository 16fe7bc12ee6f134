package compiler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/winnow/pkg/domain"
)

// Record tags.
const (
	TagQuestion    = "1"
	TagBranching   = "2"
	TagTerminating = "3"
)

// OptionDelimiter separates an option's text from its destination.
const OptionDelimiter = ":"

var (
	ErrUnknownTag      = errors.New("unknown record tag")
	ErrMissingLine     = errors.New("missing required line")
	ErrInvalidInteger  = errors.New("invalid integer")
	ErrMalformedOption = errors.New("malformed option")
)

// ParseError reports the first grammar violation found in a script.
// It matches both domain.ErrParse and its specific cause with errors.Is.
type ParseError struct {
	Line int // 1-based
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{domain.ErrParse, e.Err}
}

// Parser is responsible for converting script text into a NodeList.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse is a shorthand for NewParser().Parse(text).
func Parse(text string) (*domain.NodeList, error) {
	return NewParser().Parse(text)
}

// Parse converts the full text of a script into a NodeList.
// NodeIDs follow record order. Parsing stops at the first error.
func (p *Parser) Parse(text string) (*domain.NodeList, error) {
	c := newCursor(text)

	var (
		nodes  []domain.Node
		starts []int
	)

	for {
		c.skipBlank()
		tag, lineNo, ok := c.next()
		if !ok {
			break
		}

		var (
			node domain.Node
			err  error
		)
		switch tag {
		case TagQuestion:
			node, err = parseQuestion(c)
		case TagBranching:
			node, err = parseBranching(c, lineNo)
		case TagTerminating:
			node, err = parseTerminating(c)
		default:
			err = &ParseError{Line: lineNo, Err: fmt.Errorf("%w %q", ErrUnknownTag, tag)}
		}
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
		starts = append(starts, lineNo)
	}

	list, err := domain.NewNodeList(nodes...)
	if err != nil {
		line := 0
		var dangling *domain.DanglingDestinationError
		if errors.As(err, &dangling) && int(dangling.From) < len(starts) {
			line = starts[dangling.From]
		}
		return nil, &ParseError{Line: line, Err: err}
	}
	return list, nil
}

func parseQuestion(c *cursor) (domain.Node, error) {
	success, err := c.intLine("success destination")
	if err != nil {
		return nil, err
	}
	fail, err := c.intLine("fail destination")
	if err != nil {
		return nil, err
	}
	variable, err := c.stringLine("variable name")
	if err != nil {
		return nil, err
	}

	prompts := []string{}
	for {
		line, ok := c.peek()
		if !ok || endsList(line) {
			break
		}
		c.advance()
		prompts = append(prompts, line)
	}

	return &domain.Question{
		Success:  success,
		Fail:     fail,
		Variable: variable,
		Prompts:  prompts,
	}, nil
}

func parseBranching(c *cursor, tagLine int) (domain.Node, error) {
	variable, err := c.stringLine("variable name")
	if err != nil {
		return nil, err
	}
	question, err := c.stringLine("question text")
	if err != nil {
		return nil, err
	}

	var options []domain.Option
	for {
		line, ok := c.peek()
		if !ok || endsList(line) || !strings.Contains(line, OptionDelimiter) {
			break
		}
		_, lineNo, _ := c.next()
		opt, err := parseOption(line, lineNo)
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}

	if len(options) == 0 {
		return nil, &ParseError{Line: tagLine, Err: domain.ErrNoOptions}
	}

	return &domain.Branching{
		Variable: variable,
		Text:     question,
		Options:  options,
	}, nil
}

func parseOption(line string, lineNo int) (domain.Option, error) {
	text, dest, _ := strings.Cut(line, OptionDelimiter)
	if strings.Contains(dest, OptionDelimiter) {
		return domain.Option{}, &ParseError{
			Line: lineNo,
			Err:  fmt.Errorf("%w: option text may not contain %q: %q", ErrMalformedOption, OptionDelimiter, line),
		}
	}
	id, err := parseNodeID(dest)
	if err != nil {
		return domain.Option{}, &ParseError{Line: lineNo, Err: fmt.Errorf("option destination: %w", err)}
	}
	return domain.Option{Text: text, Destination: id}, nil
}

func parseTerminating(c *cursor) (domain.Node, error) {
	message, err := c.stringLine("exit message")
	if err != nil {
		return nil, err
	}
	return &domain.Terminating{Message: message}, nil
}

// endsList reports whether line closes an open-ended list of prompts or options.
func endsList(line string) bool {
	return line == "" || line == TagQuestion || line == TagBranching || line == TagTerminating
}

func parseNodeID(s string) (domain.NodeID, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("%w %q", ErrInvalidInteger, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidInteger, s, err)
	}
	return domain.NodeID(n), nil
}
