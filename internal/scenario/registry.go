package scenario

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/dynvec/internal/config"
	"github.com/san-kum/dynvec/internal/dynarray"
)

// Handler applies one step to the workspace. It returns the name of the
// array it produced or touched and a textual outcome.
type Handler[T dynarray.Number] func(ws *Workspace[T], s config.Step) (target, out string, err error)

type Registry[T dynarray.Number] struct {
	ops map[string]Handler[T]
}

func NewRegistry[T dynarray.Number]() *Registry[T] {
	r := &Registry[T]{ops: make(map[string]Handler[T])}

	r.ops["new"] = opNew[T]
	r.ops["copy"] = opCopy[T]
	r.ops["move"] = opMove[T]
	r.ops["assign"] = opAssign[T]
	r.ops["release"] = opRelease[T]
	r.ops["get"] = opGet[T]
	r.ops["set"] = opSet[T]

	r.ops["concat"] = binary(dynarray.Concat[T])
	r.ops["sub"] = binary(dynarray.Sub[T])
	r.ops["concat_assign"] = compound(func(a, b *dynarray.Array[T]) { a.ConcatAssign(b) })
	r.ops["sub_assign"] = compound(dynarray.SubAssign[T])

	r.ops["mul"] = scalarBinary(func(a *dynarray.Array[T], s float64) (*dynarray.Array[T], error) {
		return dynarray.Mul(a, s), nil
	})
	r.ops["div"] = scalarBinary(dynarray.Div[T, float64])
	r.ops["mul_assign"] = scalarCompound(dynarray.MulAssign[T, float64])
	r.ops["div_assign"] = scalarCompound(dynarray.DivAssign[T, float64])

	r.ops["walk"] = opWalk[T]

	return r
}

func (r *Registry[T]) Get(name string) (Handler[T], error) {
	h, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOp, name)
	}
	return h, nil
}

// Register adds or replaces a handler.
func (r *Registry[T]) Register(name string, h Handler[T]) {
	r.ops[name] = h
}

func (r *Registry[T]) List() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ops lists the op names understood by the default registry.
func Ops() []string {
	return NewRegistry[float64]().List()
}

func need(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return nil
}

func opNew[T dynarray.Number](ws *Workspace[T], s config.Step) (string, string, error) {
	if err := need("target", s.Target); err != nil {
		return "", "", err
	}
	a, err := dynarray.New[T](s.Length)
	if err != nil {
		return s.Target, "", err
	}
	ws.Put(s.Target, a)
	return s.Target, a.String(), nil
}

func opCopy[T dynarray.Number](ws *Workspace[T], s config.Step) (string, string, error) {
	src, err := ws.source(s.Target, "target")
	if err != nil {
		return "", "", err
	}
	if err := need("into", s.Into); err != nil {
		return "", "", err
	}
	dst := src.Clone()
	ws.Put(s.Into, dst)
	return s.Into, dst.String(), nil
}

func opMove[T dynarray.Number](ws *Workspace[T], s config.Step) (string, string, error) {
	src, err := ws.source(s.Target, "target")
	if err != nil {
		return "", "", err
	}
	if err := need("into", s.Into); err != nil {
		return "", "", err
	}
	dst := dynarray.Move(src)
	ws.Put(s.Into, dst)
	return s.Into, dst.String(), nil
}

func opAssign[T dynarray.Number](ws *Workspace[T], s config.Step) (string, string, error) {
	dst, err := ws.source(s.Target, "target")
	if err != nil {
		return "", "", err
	}
	src, err := ws.source(s.Right, "right")
	if err != nil {
		return "", "", err
	}
	dst.Assign(src)
	return s.Target, dst.String(), nil
}

func opRelease[T dynarray.Number](ws *Workspace[T], s config.Step) (string, string, error) {
	a, err := ws.source(s.Target, "target")
	if err != nil {
		return "", "", err
	}
	a.Release()
	return s.Target, a.String(), nil
}

func opGet[T dynarray.Number](ws *Workspace[T], s config.Step) (string, string, error) {
	a, err := ws.source(s.Target, "target")
	if err != nil {
		return "", "", err
	}
	v, err := a.Get(s.Index)
	if err != nil {
		return s.Target, "", err
	}
	return s.Target, fmt.Sprint(v), nil
}

func opSet[T dynarray.Number](ws *Workspace[T], s config.Step) (string, string, error) {
	a, err := ws.source(s.Target, "target")
	if err != nil {
		return "", "", err
	}
	if err := a.Set(s.Index, T(s.Value)); err != nil {
		return s.Target, "", err
	}
	return s.Target, a.String(), nil
}

func binary[T dynarray.Number](fn func(a, b *dynarray.Array[T]) *dynarray.Array[T]) Handler[T] {
	return func(ws *Workspace[T], s config.Step) (string, string, error) {
		left, err := ws.source(s.Left, "left")
		if err != nil {
			return "", "", err
		}
		right, err := ws.source(s.Right, "right")
		if err != nil {
			return "", "", err
		}
		if err := need("into", s.Into); err != nil {
			return "", "", err
		}
		res := fn(left, right)
		ws.Put(s.Into, res)
		return s.Into, res.String(), nil
	}
}

func compound[T dynarray.Number](fn func(a, b *dynarray.Array[T])) Handler[T] {
	return func(ws *Workspace[T], s config.Step) (string, string, error) {
		dst, err := ws.source(s.Target, "target")
		if err != nil {
			return "", "", err
		}
		src, err := ws.source(s.Right, "right")
		if err != nil {
			return "", "", err
		}
		fn(dst, src)
		return s.Target, dst.String(), nil
	}
}

func scalarBinary[T dynarray.Number](fn func(a *dynarray.Array[T], s float64) (*dynarray.Array[T], error)) Handler[T] {
	return func(ws *Workspace[T], s config.Step) (string, string, error) {
		left, err := ws.source(s.Left, "left")
		if err != nil {
			return "", "", err
		}
		if s.Scalar == nil {
			return "", "", fmt.Errorf("%w: scalar", ErrMissingField)
		}
		if err := need("into", s.Into); err != nil {
			return "", "", err
		}
		res, err := fn(left, *s.Scalar)
		if err != nil {
			return s.Into, "", err
		}
		ws.Put(s.Into, res)
		return s.Into, res.String(), nil
	}
}

func scalarCompound[T dynarray.Number](fn func(a *dynarray.Array[T], s float64)) Handler[T] {
	return func(ws *Workspace[T], s config.Step) (string, string, error) {
		dst, err := ws.source(s.Target, "target")
		if err != nil {
			return "", "", err
		}
		if s.Scalar == nil {
			return "", "", fmt.Errorf("%w: scalar", ErrMissingField)
		}
		fn(dst, *s.Scalar)
		return s.Target, dst.String(), nil
	}
}

// opWalk traces a cursor from begin to the end marker.
func opWalk[T dynarray.Number](ws *Workspace[T], s config.Step) (string, string, error) {
	a, err := ws.source(s.Target, "target")
	if err != nil {
		return "", "", err
	}
	return s.Target, Trace(a.Begin()), nil
}

// Trace renders the values a cursor visits, e.g. "1 -> 2 -> 3 (end)".
func Trace[T any](c *dynarray.Cursor[T]) string {
	var parts []string
	for {
		if c.Len() > 0 {
			parts = append(parts, fmt.Sprint(c.Value()))
		}
		if c.IsEnd() {
			break
		}
		c.Next()
	}
	if len(parts) == 0 {
		return "(end)"
	}
	return strings.Join(parts, " -> ") + " (end)"
}
