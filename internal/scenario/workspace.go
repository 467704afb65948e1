package scenario

import (
	"fmt"
	"sort"

	"github.com/san-kum/dynvec/internal/dynarray"
)

// Workspace holds the named arrays of a running scenario.
type Workspace[T dynarray.Number] struct {
	arrays map[string]*dynarray.Array[T]
}

func NewWorkspace[T dynarray.Number](init map[string][]float64) *Workspace[T] {
	ws := &Workspace[T]{arrays: make(map[string]*dynarray.Array[T], len(init))}
	for name, vals := range init {
		items := make([]T, len(vals))
		for i, v := range vals {
			items[i] = T(v)
		}
		ws.arrays[name] = dynarray.Of(items...)
	}
	return ws
}

func (w *Workspace[T]) Get(name string) (*dynarray.Array[T], bool) {
	a, ok := w.arrays[name]
	return a, ok
}

func (w *Workspace[T]) Put(name string, a *dynarray.Array[T]) {
	w.arrays[name] = a
}

func (w *Workspace[T]) Names() []string {
	names := make([]string, 0, len(w.arrays))
	for name := range w.arrays {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (w *Workspace[T]) source(name, field string) (*dynarray.Array[T], error) {
	if err := need(field, name); err != nil {
		return nil, err
	}
	a, ok := w.arrays[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownArray, name)
	}
	return a, nil
}
