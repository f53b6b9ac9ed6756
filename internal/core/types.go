package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownSim is returned by Lookup for names that were never registered.
var ErrUnknownSim = errors.New("unknown sim")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name. Unknown names produce an
// error wrapping ErrUnknownSim that lists close matches when there are any.
func Lookup(name string) (Factory, error) {
	if f, ok := sims[name]; ok {
		return f, nil
	}
	if hints := Suggest(name, Names(), 3); len(hints) > 0 {
		return nil, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownSim, name, strings.Join(hints, ", "))
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownSim, name, strings.Join(Names(), ", "))
}
