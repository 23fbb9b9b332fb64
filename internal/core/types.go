package core

import "sort"

// Size describes the dimensions of a board in cells.
type Size struct {
	W int
	H int
}

// Sim is the contract the viewer and the headless tools drive. Cells returns
// one display value per cell in row-major order; zero is background.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Stats is implemented by sims that track their own progress.
type Stats interface {
	Generation() int
	Population() int
}

// Factory constructs a Sim from flag-style options.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := sims[name]
	return f, ok
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
