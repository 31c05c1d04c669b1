package dslang

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Env is the single global scope of a run.
type Env struct {
	Vars map[string]string
}

func NewEnv() *Env {
	return &Env{
		Vars: make(map[string]string),
	}
}

func (e *Env) Get(name string) (string, bool) {
	v, ok := e.Vars[name]
	return v, ok
}

func (e *Env) Def(name string, val string) {
	e.Vars[name] = val
}

func (e *Env) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	for i, name := range slices.Sorted(maps.Keys(e.Vars)) {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%s:%s", name, e.Vars[name]))
	}
	sb.WriteString("]")
	return sb.String()
}
