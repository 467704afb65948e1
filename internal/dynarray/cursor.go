package dynarray

// endOffset positions the end marker relative to the snapshot length. With
// 1 the end marker is the last real element; 0 gives a half-open range.
const endOffset = 1

// Cursor walks a snapshot of an Array taken at creation time. Writes to the
// source array after that point are not visible through the cursor.
type Cursor[T any] struct {
	snapshot *Array[T]
	pos      int
}

// Begin returns a cursor positioned on the first element.
func (a *Array[T]) Begin() *Cursor[T] {
	return &Cursor[T]{snapshot: a.Clone()}
}

// End returns a cursor positioned on the end marker, which is the last
// element of a non-empty array.
func (a *Array[T]) End() *Cursor[T] {
	c := a.Begin()
	c.pos = max(0, c.snapshot.Len()-endOffset)
	return c
}

// Next advances the cursor by one. At the end marker it does nothing.
func (c *Cursor[T]) Next() *Cursor[T] {
	if !c.IsEnd() {
		c.pos++
	}
	return c
}

// Value returns the element under the cursor, or the zero value when the
// snapshot is empty.
func (c *Cursor[T]) Value() T {
	if c.pos < c.snapshot.Len() {
		return c.snapshot.buf[c.pos]
	}
	var zero T
	return zero
}

func (c *Cursor[T]) IsEnd() bool {
	n := c.snapshot.Len()
	return n == 0 || c.pos >= n-endOffset
}

func (c *Cursor[T]) Pos() int { return c.pos }

func (c *Cursor[T]) Len() int { return c.snapshot.Len() }

// Snapshot returns a copy of the array the cursor walks.
func (c *Cursor[T]) Snapshot() *Array[T] {
	return c.snapshot.Clone()
}

// EqualFunc reports whether c and o are equal under eq. Two cursors at their
// end markers are always equal; otherwise both position and value must
// match. Cursors over different arrays may compare equal.
func (c *Cursor[T]) EqualFunc(o *Cursor[T], eq func(a, b T) bool) bool {
	if c.IsEnd() || o.IsEnd() {
		return c.IsEnd() && o.IsEnd()
	}
	return c.pos == o.pos && eq(c.Value(), o.Value())
}

// CursorsEqual is EqualFunc with ==.
func CursorsEqual[T comparable](a, b *Cursor[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}
