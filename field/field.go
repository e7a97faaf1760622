// Package field implements exact arithmetic over finite fields and
// matrices of field elements, including Gauss-Jordan inversion.
package field

// Element represents an element in a finite field. Elements are
// immutable: every operation returns a new element and leaves its
// operands untouched.
type Element interface {
	// Add returns a + b in the field
	Add(b Element) Element

	// Sub returns a - b in the field
	Sub(b Element) Element

	// Mul returns a * b in the field
	Mul(b Element) Element

	// Neg returns -a in the field
	Neg() Element

	// Div returns a / b, failing with ErrDivisionByZero when b is the
	// zero element
	Div(b Element) (Element, error)

	// Inv returns the multiplicative inverse of a, failing with
	// ErrNotInvertible when a is the zero element
	Inv() (Element, error)

	// IsZero returns true if the element is the zero element
	IsZero() bool

	// Equal returns true if two elements are equal
	Equal(b Element) bool

	// Cmp orders elements by canonical representative, returning
	// -1, 0 or +1
	Cmp(b Element) int

	// Clone returns a copy of the element
	Clone() Element

	// Uint returns the canonical representative in [0, Order)
	Uint() uint64

	// String returns the string representation of the element
	String() string
}

// Field represents a finite field
type Field interface {
	// Zero returns the zero element of the field
	Zero() Element

	// One returns the one element of the field
	One() Element

	// FromInt creates a field element from an integer, reduced into
	// canonical range; negative values wrap around
	FromInt(v int64) Element

	// Order returns the order (size) of the field
	Order() uint64
}
