package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/winnow/pkg/domain"
)

// Issue kinds reported by Validate.
const (
	IssueUnreachable  = "unreachable"
	IssueEmptyPrompts = "empty_prompts"
	IssueNoExit       = "no_exit"
)

// Issue is a structural problem that does not stop a script from running.
type Issue struct {
	NodeID  domain.NodeID
	Kind    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("node %s: %s", i.NodeID, i.Message)
}

// Validate checks a parsed script for nodes that can never be visited,
// questions that can never be answered and nodes that cannot reach a farewell.
// Destinations are already checked when the NodeList is built.
func Validate(nodes *domain.NodeList) []Issue {
	all := nodes.All()
	if len(all) == 0 {
		return nil
	}

	var issues []Issue
	reachable := crawl(all)

	for i, n := range all {
		id := domain.NodeID(i)
		if !reachable[id] {
			issues = append(issues, Issue{NodeID: id, Kind: IssueUnreachable, Message: "not reachable from node 0"})
		}
		if q, ok := n.(*domain.Question); ok && len(q.Prompts) == 0 {
			issues = append(issues, Issue{
				NodeID:  id,
				Kind:    IssueEmptyPrompts,
				Message: fmt.Sprintf("question for $%s has no prompts and always fails", q.Variable),
			})
		}
	}

	exits := exiting(all)
	for i := range all {
		id := domain.NodeID(i)
		if reachable[id] && !exits[id] {
			issues = append(issues, Issue{NodeID: id, Kind: IssueNoExit, Message: "no path leads to a terminating node"})
		}
	}

	return issues
}

// Error folds issues into a single error, or nil when there are none.
func Error(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = issue.String()
	}
	return fmt.Errorf("found %d issues:\n- %s", len(issues), strings.Join(lines, "\n- "))
}

// crawl walks the graph breadth-first from node 0.
func crawl(all []domain.Node) map[domain.NodeID]bool {
	visited := make(map[domain.NodeID]bool, len(all))
	queue := []domain.NodeID{0}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] || current.IsTerminal() {
			continue
		}
		visited[current] = true

		for _, target := range all[current].Targets() {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}
	return visited
}

// exiting finds every node with a path to a Terminating node by
// iterating to a fixed point over the reversed edges.
func exiting(all []domain.Node) map[domain.NodeID]bool {
	exits := map[domain.NodeID]bool{domain.TerminalNodeID: true}
	for i, n := range all {
		if n.Kind() == domain.KindTerminating {
			exits[domain.NodeID(i)] = true
		}
	}

	for changed := true; changed; {
		changed = false
		for i, n := range all {
			id := domain.NodeID(i)
			if exits[id] {
				continue
			}
			if slices.ContainsFunc(n.Targets(), func(t domain.NodeID) bool { return exits[t] }) {
				exits[id] = true
				changed = true
			}
		}
	}
	return exits
}
