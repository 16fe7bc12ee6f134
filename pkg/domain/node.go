package domain

import "fmt"

// NodeID identifies a node by its position in the parsed script, starting at 0.
type NodeID int

// TerminalNodeID is the sentinel state meaning "session ended".
// It never indexes a real node.
const TerminalNodeID NodeID = 9999

// IsTerminal reports whether id is the halt sentinel.
func (id NodeID) IsTerminal() bool {
	return id == TerminalNodeID
}

func (id NodeID) String() string {
	if id.IsTerminal() {
		return "halt"
	}
	return fmt.Sprintf("%d", int(id))
}

// NodeKind names a node variant.
type NodeKind string

const (
	// KindQuestion captures free text, re-prompting on blank answers.
	KindQuestion NodeKind = "question"
	// KindBranching offers a numbered list of options.
	KindBranching NodeKind = "branching"
	// KindTerminating shows an exit message and ends the session.
	KindTerminating NodeKind = "terminating"
)

// Node is a single step of a dialog script.
// The set of implementations is closed: *Question, *Branching and *Terminating.
type Node interface {
	// Kind returns the variant tag.
	Kind() NodeKind
	// Targets lists every destination the node may transition to.
	Targets() []NodeID

	node()
}

// Question asks for a line of text. Each blank answer advances to the next
// prompt; once the prompts run out the session moves to Fail.
type Question struct {
	Success  NodeID   `json:"success" yaml:"success"`
	Fail     NodeID   `json:"fail" yaml:"fail"`
	Variable string   `json:"variable" yaml:"variable"`
	Prompts  []string `json:"prompts" yaml:"prompts"`
}

// Option is one selectable entry of a Branching node.
type Option struct {
	Text        string `json:"text" yaml:"text"`
	Destination NodeID `json:"destination" yaml:"destination"`
}

// Branching asks the user to pick one of its options by 1-based number.
// The chosen option's text is bound to Variable.
type Branching struct {
	Variable string   `json:"variable" yaml:"variable"`
	Text     string   `json:"text" yaml:"text"`
	Options  []Option `json:"options" yaml:"options"`
}

// Terminating displays Message and halts the session.
type Terminating struct {
	Message string `json:"message" yaml:"message"`
}

func (*Question) Kind() NodeKind    { return KindQuestion }
func (*Branching) Kind() NodeKind   { return KindBranching }
func (*Terminating) Kind() NodeKind { return KindTerminating }

func (q *Question) Targets() []NodeID { return []NodeID{q.Success, q.Fail} }

func (b *Branching) Targets() []NodeID {
	out := make([]NodeID, len(b.Options))
	for i, opt := range b.Options {
		out[i] = opt.Destination
	}
	return out
}

func (*Terminating) Targets() []NodeID { return []NodeID{TerminalNodeID} }

func (*Question) node()    {}
func (*Branching) node()   {}
func (*Terminating) node() {}
