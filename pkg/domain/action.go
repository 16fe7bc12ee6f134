package domain

// ActionRequest represents something the engine asks the host to present.
type ActionRequest struct {
	Type    string `json:"type"`              // e.g., "RENDER_CONTENT", "REQUEST_INPUT"
	Payload any    `json:"payload,omitempty"` // The data needed to perform the action
}

// Standard Action Types
const (
	// ActionRenderContent requests the host to display content to the user.
	// Payload: string (the content, templates already resolved)
	ActionRenderContent = "RENDER_CONTENT"

	// ActionRequestInput requests the host to collect one line from the user.
	// Payload: InputRequest
	ActionRequestInput = "REQUEST_INPUT"

	// ActionSystemMessage represents a meta-message from the system (invalid input, status).
	// Payload: string (the message)
	ActionSystemMessage = "SYSTEM_MESSAGE"
)

// InputType defines the kind of input requested.
type InputType string

const (
	InputText        InputType = "text"
	InputChoice      InputType = "choice"
	InputAcknowledge InputType = "acknowledge"
)

// Input cues shown right before a line is read.
const (
	CueText        = "Enter string> "
	CueChoice      = "Enter choice> "
	CueAcknowledge = "Goodbye (enter anything to exit)> "
)

// InputRequest describes the line the engine expects next.
type InputRequest struct {
	Type    InputType `json:"type"`
	Cue     string    `json:"cue"`
	Options []string  `json:"options,omitempty"`
}
