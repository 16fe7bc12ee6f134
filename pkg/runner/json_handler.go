package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/winnow/pkg/domain"
)

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Every Output call emits one JSON array of actions; every input line is either
// a JSON string or raw text.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, actions []domain.ActionRequest) (bool, error) {
	if len(actions) == 0 {
		return false, nil
	}

	if err := h.Encoder.Encode(actions); err != nil {
		return false, err
	}

	needsInput := false
	for _, act := range actions {
		if act.Type == domain.ActionRequestInput {
			needsInput = true
		}
	}
	return needsInput, nil
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}

	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")

	// Try to unquote if it's a JSON string
	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		return val, nil
	}

	// Fallback: raw text
	return text, nil
}

// SystemOutput emits the message as a SYSTEM_MESSAGE action.
func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode([]domain.ActionRequest{{
		Type:    domain.ActionSystemMessage,
		Payload: msg,
	}})
}
