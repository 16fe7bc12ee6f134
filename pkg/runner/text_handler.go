package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/winnow/pkg/domain"
)

// TextHandler implements the standard text-based interface.
// Reads happen on a background pump so that Input honours context cancellation.
type TextHandler struct {
	Reader    *bufio.Reader
	Writer    io.Writer
	ErrWriter io.Writer
	Renderer  ContentRenderer
	Notice    func(string) string

	maxInputSize int
	cue          string

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerNotice configures how system messages are styled.
func WithTextHandlerNotice(style func(string) string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Notice = style
	}
}

// WithTextHandlerErrWriter sets where system messages go. Defaults to Stderr.
func WithTextHandlerErrWriter(w io.Writer) TextHandlerOption {
	return func(h *TextHandler) {
		h.ErrWriter = w
	}
}

// WithMaxInputSize overrides the sanitizer limit for this handler.
func WithMaxInputSize(n int) TextHandlerOption {
	return func(h *TextHandler) {
		if n > 0 {
			h.maxInputSize = n
		}
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:       bufio.NewReader(r),
		Writer:       w,
		ErrWriter:    os.Stderr,
		maxInputSize: getMaxInputSize(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult, DefaultInputBufferSize)
		go h.pump()
	})
}

func (h *TextHandler) pump() {
	defer close(h.inputChan)
	for {
		text, err := h.Reader.ReadString('\n')

		// A final line without a terminator is still a line.
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				h.inputChan <- inputResult{err: err}
			}
			return
		}
	}
}

// Output writes each content block followed by the input cue, if any.
func (h *TextHandler) Output(ctx context.Context, actions []domain.ActionRequest) (bool, error) {
	needsInput := false
	for _, act := range actions {
		switch act.Type {
		case domain.ActionRenderContent:
			msg, ok := act.Payload.(string)
			if !ok {
				continue
			}
			if h.Renderer != nil {
				if rendered, err := h.Renderer(msg); err == nil {
					msg = strings.TrimSpace(rendered)
				}
			}
			if _, err := fmt.Fprintln(h.Writer, msg); err != nil {
				return false, err
			}

		case domain.ActionRequestInput:
			needsInput = true
			h.cue = "> "
			if req, ok := act.Payload.(domain.InputRequest); ok && req.Cue != "" {
				h.cue = req.Cue
			}
			if _, err := fmt.Fprint(h.Writer, h.cue); err != nil {
				return false, err
			}
		}
	}
	return needsInput, nil
}

// Input returns the next line with only its line ending removed.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}

			text := strings.TrimSuffix(res.text, "\n")
			text = strings.TrimSuffix(text, "\r")

			clean, err := sanitize(text, h.maxInputSize)
			if err != nil {
				if err := h.SystemOutput(ctx, fmt.Sprintf("Error: %v. Please try again.", err)); err != nil {
					return "", err
				}
				fmt.Fprint(h.Writer, h.cue)
				continue
			}
			return clean, nil
		}
	}
}

// SystemOutput writes a styled notice to the error stream.
func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	if h.Notice != nil {
		msg = h.Notice(msg)
	}
	_, err := fmt.Fprintln(h.ErrWriter, msg)
	return err
}

// FinishStep prints the padding line that separates steps.
func (h *TextHandler) FinishStep(ctx context.Context) error {
	_, err := fmt.Fprintln(h.Writer)
	return err
}
