/*
Package domain contains the core models of the winnow dialog engine.

It defines the node variants of a script, the immutable NodeList they live in,
and the per-session execution State. The package is kept free of I/O so the
parser, the runtime and the adapters can share it.

# Key Entities

  - Node: a closed set of variants (Question, Branching, Terminating).
  - NodeList: the parsed script, indexed by NodeID.
  - State: the runtime snapshot of a session (current node, attempt counter, variables).
  - ActionRequest: what the host should display or collect next.
*/
package domain
