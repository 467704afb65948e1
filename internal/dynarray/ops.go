package dynarray

// Number is the set of element and scalar types the arithmetic helpers
// accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ConcatAssign appends b's elements after a's, growing a to
// a.Len()+b.Len(). This is the "+=" of Array: concatenation, not a
// pairwise sum.
func (a *Array[T]) ConcatAssign(b *Array[T]) {
	buf := make([]T, a.Len()+b.Len())
	n := copy(buf, a.slice())
	copy(buf[n:], b.slice())
	a.buf = buf
}

// Concat returns a new array holding a's elements followed by b's.
func Concat[T any](a, b *Array[T]) *Array[T] {
	res := a.Clone()
	res.ConcatAssign(b)
	return res
}

// SubAssign replaces a with the pairwise difference a-b. The result has
// max(a.Len(), b.Len()) elements; missing elements count as zero.
func SubAssign[T Number](a, b *Array[T]) {
	a.buf = subtract(a.slice(), b.slice())
}

// Sub returns the pairwise difference a-b, zero padded like SubAssign.
func Sub[T Number](a, b *Array[T]) *Array[T] {
	return &Array[T]{buf: subtract(a.slice(), b.slice())}
}

func subtract[T Number](x, y []T) []T {
	out := make([]T, max(len(x), len(y)))
	for i := range out {
		var l, r T
		if i < len(x) {
			l = x[i]
		}
		if i < len(y) {
			r = y[i]
		}
		out[i] = l - r
	}
	return out
}

// MulAssign multiplies every element of a by s converted to T.
func MulAssign[T, S Number](a *Array[T], s S) {
	f := T(s)
	buf := a.slice()
	for i := range buf {
		buf[i] *= f
	}
}

// Mul returns a copy of a with every element multiplied by s. Unlike
// MulAssign the product is taken in the scalar's own type when s has no
// exact T representation, so Mul(Of(3, 4), 2.9) is [8, 11].
func Mul[T, S Number](a *Array[T], s S) *Array[T] {
	res := a.Clone()
	scale(res.slice(), s, func(v, f float64) float64 { return v * f }, func(v, f T) T { return v * f })
	return res
}

// DivAssign divides every element of a by s converted to T. A zero divisor
// leaves a unchanged and reports nothing; use Div for a checked division.
func DivAssign[T, S Number](a *Array[T], s S) {
	d := T(s)
	if d == 0 {
		return
	}
	buf := a.slice()
	for i := range buf {
		buf[i] /= d
	}
}

// Div returns a copy of a with every element divided by s. It fails with
// ErrDivisionByZero only when s itself is zero; like Mul, a scalar with no
// exact T representation divides in its own type, so Div(Of(10, 20), 2.5)
// is [4, 8].
func Div[T, S Number](a *Array[T], s S) (*Array[T], error) {
	if s == 0 {
		return nil, ErrDivisionByZero
	}
	res := a.Clone()
	scale(res.slice(), s, func(v, d float64) float64 { return v / d }, func(v, d T) T { return v / d })
	return res, nil
}

// scale rewrites every element of buf with s. When s converts to T without loss
// exact runs in T; otherwise wide runs in float64 and the result is truncated.
func scale[T, S Number](buf []T, s S, wide func(v, s float64) float64, exact func(v, s T) T) {
	if t := T(s); S(t) == s {
		for i := range buf {
			buf[i] = exact(buf[i], t)
		}
		return
	}
	f := float64(s)
	for i := range buf {
		buf[i] = T(wide(float64(buf[i]), f))
	}
}
