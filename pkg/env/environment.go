package env

import (
	"maps"
	"strings"
)

// Environment holds the variable bindings captured during a session.
// Keys are unique; a binding is overwritten, never removed.
type Environment struct {
	vars map[string]string
}

// New creates an empty Environment.
func New() *Environment {
	return &Environment{vars: make(map[string]string)}
}

// Get returns the value bound to name.
// An unbound name resolves to the name itself, so lookups never fail.
func (e *Environment) Get(name string) string {
	if v, ok := e.vars[name]; ok {
		return v
	}
	return name
}

// Has reports whether name has been bound.
func (e *Environment) Has(name string) bool {
	_, ok := e.vars[name]
	return ok
}

// Set binds name to value, overwriting any previous binding.
func (e *Environment) Set(name, value string) {
	if e.vars == nil {
		e.vars = make(map[string]string)
	}
	e.vars[name] = value
}

// Len returns the number of bound variables.
func (e *Environment) Len() int {
	return len(e.vars)
}

// Snapshot returns a copy of the bindings.
func (e *Environment) Snapshot() map[string]string {
	return maps.Clone(e.vars)
}

// Clone returns an independent copy of the Environment.
func (e *Environment) Clone() *Environment {
	c := New()
	maps.Copy(c.vars, e.vars)
	return c
}

// Resolve expands every $NAME token in template, where NAME is the maximal
// run of ASCII uppercase letters following the '$'.
//
// Substituted values are not rescanned. A '$' not followed by an uppercase
// letter is copied through as-is.
func (e *Environment) Resolve(template string) string {
	if strings.IndexByte(template, '$') < 0 {
		return template
	}

	var sb strings.Builder
	sb.Grow(len(template))

	i := 0
	for i < len(template) {
		c := template[i]
		if c != '$' {
			sb.WriteByte(c)
			i++
			continue
		}

		start := i + 1
		end := start
		for end < len(template) && isUpper(template[end]) {
			end++
		}
		if end == start {
			sb.WriteByte('$')
			i = start
			continue
		}

		sb.WriteString(e.Get(template[start:end]))
		i = end
	}
	return sb.String()
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
