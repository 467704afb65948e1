// Package dynarray provides a generic array container with value semantics.
//
// The package defines:
//
//   - [Array]: an owned, fixed-length buffer of T sized at construction
//   - [Cursor]: a forward cursor over a snapshot of an Array
//   - [Number]: the element constraint for the arithmetic helpers
//
// # Arithmetic
//
// Compound helpers ([Array.ConcatAssign], [SubAssign], [MulAssign],
// [DivAssign]) mutate their left operand. Binary helpers ([Concat], [Sub],
// [Mul], [Div]) always return a fresh Array and leave both operands alone.
//
// Concatenation is what "+" means for an Array: the right operand's elements
// follow the left operand's. Subtraction is pairwise with zero padding on the
// shorter side.
//
// Dividing by zero is asymmetric: [DivAssign] leaves the array untouched
// while [Div] returns [ErrDivisionByZero].
//
// # Cursors
//
// A Cursor copies the array when it is created, so later writes to the
// array are never observed by the cursor. Creation is O(n).
//
// The end marker is the last real element, not one past it:
//
//	c := dynarray.Of(1, 2, 3).Begin()
//	for ; !c.IsEnd(); c.Next() {
//		fmt.Println(c.Value()) // 1, 2
//	}
//	fmt.Println(c.Value()) // 3
//
// # Thread Safety
//
// Arrays and cursors are NOT safe for concurrent use.
package dynarray
