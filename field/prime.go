package field

import "strconv"

// PrimeField represents a prime finite field F_p. The modulus must fit
// in 31 bits so that products of two canonical representatives never
// overflow an int64.
type PrimeField struct {
	p int64 // the prime modulus
}

// NewPrimeField creates a new prime field. Primality is the caller's
// responsibility; only over a prime modulus does every nonzero element
// have an inverse.
func NewPrimeField(p int64) *PrimeField {
	if p < 2 {
		panic("field: modulus must be at least 2")
	}
	if p >= 1<<31 {
		panic("field: modulus too large for exact int64 products")
	}
	return &PrimeField{p: p}
}

// PrimeElement represents an element in a prime field
type PrimeElement struct {
	value int64       // canonical representative in [0, p)
	field *PrimeField // reference to parent field
}

// Field interface implementation for PrimeField

// Zero returns the additive identity element (0)
func (f *PrimeField) Zero() Element {
	return &PrimeElement{value: 0, field: f}
}

// One returns the multiplicative identity element (1)
func (f *PrimeField) One() Element {
	return &PrimeElement{value: 1, field: f}
}

// FromInt creates a field element from an integer, reduced into [0, p)
func (f *PrimeField) FromInt(v int64) Element {
	v %= f.p
	if v < 0 {
		v += f.p
	}
	return &PrimeElement{value: v, field: f}
}

// Order returns the order (size) of the field, which is p for a prime field
func (f *PrimeField) Order() uint64 {
	return uint64(f.p)
}

// PrimeElement methods implementing the Element interface

func (e *PrimeElement) sameField(b Element) *PrimeElement {
	other, ok := b.(*PrimeElement)
	if !ok || other.field.p != e.field.p {
		panic("incompatible field elements")
	}
	return other
}

// Add returns e + b in the field
func (e *PrimeElement) Add(b Element) Element {
	other := e.sameField(b)
	return e.field.FromInt(e.value + other.value)
}

// Sub returns e - b in the field
func (e *PrimeElement) Sub(b Element) Element {
	other := e.sameField(b)
	return e.field.FromInt(e.value - other.value)
}

// Mul returns e * b in the field
func (e *PrimeElement) Mul(b Element) Element {
	other := e.sameField(b)
	return e.field.FromInt(e.value * other.value)
}

// Neg returns -e in the field
func (e *PrimeElement) Neg() Element {
	return e.field.FromInt(-e.value)
}

// Div returns e / b, failing with ErrDivisionByZero when b is zero
func (e *PrimeElement) Div(b Element) (Element, error) {
	other := e.sameField(b)
	if other.value == 0 {
		return nil, ErrDivisionByZero
	}
	inv, err := other.Inv()
	if err != nil {
		return nil, err
	}
	return e.Mul(inv), nil
}

// Inv returns the multiplicative inverse of e, computed with the
// extended Euclidean algorithm.
func (e *PrimeElement) Inv() (Element, error) {
	if e.value == 0 {
		return nil, ErrNotInvertible
	}

	// Invariant: oldR == oldS * e.value (mod p).
	oldR, r := e.value, e.field.p
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		// gcd > 1 can only happen over a composite modulus
		return nil, ErrNotInvertible
	}
	return e.field.FromInt(oldS), nil
}

// IsZero returns true if e equals zero
func (e *PrimeElement) IsZero() bool {
	return e.value == 0
}

// Equal returns true if e equals b
func (e *PrimeElement) Equal(b Element) bool {
	other, ok := b.(*PrimeElement)
	if !ok {
		return false
	}
	return e.value == other.value && e.field.p == other.field.p
}

// Cmp compares canonical representatives
func (e *PrimeElement) Cmp(b Element) int {
	other := e.sameField(b)
	switch {
	case e.value < other.value:
		return -1
	case e.value > other.value:
		return 1
	default:
		return 0
	}
}

// Clone returns a copy of e
func (e *PrimeElement) Clone() Element {
	return &PrimeElement{value: e.value, field: e.field}
}

// Uint returns the canonical representative of e
func (e *PrimeElement) Uint() uint64 {
	return uint64(e.value)
}

// String returns the string representation of e
func (e *PrimeElement) String() string {
	return strconv.FormatInt(e.value, 10)
}
