package dynarray

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Array is a homogeneous sequence whose length is fixed when it is built.
// Each Array exclusively owns its buffer; copies never share storage.
type Array[T any] struct {
	buf []T
}

// New returns an array of n zero-valued elements.
func New[T any](n int) (*Array[T], error) {
	if n < 0 {
		return nil, &LengthError{Length: n}
	}
	return &Array[T]{buf: make([]T, n)}, nil
}

// Of returns an array holding a copy of items, in order.
func Of[T any](items ...T) *Array[T] {
	buf := make([]T, len(items))
	copy(buf, items)
	return &Array[T]{buf: buf}
}

// Move transfers src's buffer to a new array without copying it. src is
// left empty and remains usable.
func Move[T any](src *Array[T]) *Array[T] {
	if src == nil {
		return &Array[T]{}
	}
	dst := &Array[T]{buf: src.buf}
	src.buf = nil
	return dst
}

// Clone returns a deep copy of a.
func (a *Array[T]) Clone() *Array[T] {
	return Of(a.slice()...)
}

// Assign replaces a's contents with a deep copy of src. The previous buffer
// is dropped rather than reused.
func (a *Array[T]) Assign(src *Array[T]) {
	if a == src {
		return
	}
	a.buf = src.ToSlice()
}

// Release drops the buffer. It is safe to call more than once and on a
// moved-from array.
func (a *Array[T]) Release() {
	if a == nil {
		return
	}
	a.buf = nil
}

func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.buf)
}

func (a *Array[T]) slice() []T {
	if a == nil {
		return nil
	}
	return a.buf
}

func (a *Array[T]) checkBounds(i int) error {
	if i < 0 || i >= a.Len() {
		return &IndexError{Index: i, Length: a.Len()}
	}
	return nil
}

func (a *Array[T]) Get(i int) (T, error) {
	if err := a.checkBounds(i); err != nil {
		var zero T
		return zero, err
	}
	return a.buf[i], nil
}

func (a *Array[T]) Set(i int, v T) error {
	if err := a.checkBounds(i); err != nil {
		return err
	}
	a.buf[i] = v
	return nil
}

// At returns the slot at index i so callers can read or write through it.
// The pointer is invalidated by any operation that replaces the buffer
// (Assign, Release, Move and the compound arithmetic helpers).
func (a *Array[T]) At(i int) (*T, error) {
	if err := a.checkBounds(i); err != nil {
		return nil, err
	}
	return &a.buf[i], nil
}

// ToSlice returns a new slice with a copy of every element. The result is
// never nil.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.Len())
	copy(out, a.slice())
	return out
}

// All iterates index/value pairs over a copy taken when iteration starts.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.ToSlice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values iterates over a copy taken when iteration starts.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.ToSlice() {
			if !yield(v) {
				return
			}
		}
	}
}

// String renders the array as
// "DynamicArray{length: 3, array: [1, 2, 3]}".
func (a *Array[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DynamicArray{length: %d, array: [", a.Len())
	for i, v := range a.slice() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteString("]}")
	return b.String()
}

// Equal reports whether a and b have the same length and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.slice(), b.slice())
}
