package testutils

import (
	"testing"

	"github.com/aretw0/winnow/internal/compiler"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/stretchr/testify/require"
)

// HolyGrail is the reference script used across the test suites.
//
//	0 Question NAME  -> 1 / 3
//	1 Branching QUEST -> 2 / 3
//	2 Branching COLOR -> 4 / 5
//	3..5 Terminating
const HolyGrail = `1
1
3
NAME
What is your name?
Please tell me your name
You better tell me your name
2
QUEST
$NAME, what is your quest?
The Holy Grail:2
Run and Hide:3
2
COLOR
$NAME, who seeks $QUEST, what is your favorite color?
Red:4
I mean blue:5
3
Since you have REFUSED to answer, The Black Night has been called
3
You may pass, $NAME who loves $COLOR, on your noble quest for the $QUEST.
3
AAAARRRRGGGGGHHHHH
`

// MustParse parses script and fails the test immediately on error.
func MustParse(t testing.TB, script string) *domain.NodeList {
	t.Helper()

	list, err := compiler.Parse(script)
	require.NoError(t, err, "failed to parse test script")
	return list
}

// MustNodeList builds a NodeList from nodes and fails the test immediately on error.
func MustNodeList(t testing.TB, nodes ...domain.Node) *domain.NodeList {
	t.Helper()

	list, err := domain.NewNodeList(nodes...)
	require.NoError(t, err, "failed to build node list")
	return list
}
