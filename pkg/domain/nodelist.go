package domain

import (
	"fmt"
	"slices"
)

// NodeList is the ordered, immutable set of nodes of a script.
// A node's NodeID is its index.
type NodeList struct {
	nodes []Node
}

// NewNodeList builds a NodeList, checking that every destination is either a
// valid index or TerminalNodeID and that no Branching node is empty.
func NewNodeList(nodes ...Node) (*NodeList, error) {
	list := &NodeList{nodes: slices.Clone(nodes)}
	if err := list.validate(); err != nil {
		return nil, err
	}
	return list, nil
}

func (l *NodeList) validate() error {
	for i, n := range l.nodes {
		id := NodeID(i)
		switch v := n.(type) {
		case *Question:
			// empty prompt lists are allowed
		case *Branching:
			if len(v.Options) == 0 {
				return fmt.Errorf("node %s: %w", id, ErrNoOptions)
			}
		case *Terminating:
			continue
		case nil:
			return fmt.Errorf("node %s: nil node", id)
		default:
			return fmt.Errorf("node %s: unsupported node type %T", id, n)
		}

		for _, target := range n.Targets() {
			if !l.Contains(target) && !target.IsTerminal() {
				return &DanglingDestinationError{From: id, To: target}
			}
		}
	}
	return nil
}

// Len returns the number of nodes.
func (l *NodeList) Len() int {
	return len(l.nodes)
}

// Contains reports whether id indexes a node of the list.
func (l *NodeList) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(l.nodes)
}

// Get returns the node stored at id.
func (l *NodeList) Get(id NodeID) (Node, error) {
	if !l.Contains(id) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	return l.nodes[id], nil
}

// All returns the nodes in NodeID order.
// The returned slice is a copy; the nodes themselves must not be modified.
func (l *NodeList) All() []Node {
	return slices.Clone(l.nodes)
}
