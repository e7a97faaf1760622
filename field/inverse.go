package field

import "fmt"

// Inverse returns the multiplicative inverse of a square matrix,
// failing with ErrNotInvertible when the matrix is singular. The
// receiver is never modified; elimination runs on scratch copies.
func (m *Matrix) Inverse() (*Matrix, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("inverse of %dx%d matrix: %w", m.rows, m.cols, ErrDimensionMismatch)
	}
	if m.rows == 2 {
		return m.inverse2x2()
	}
	return m.inverseGaussJordan()
}

// inverse2x2 computes the closed-form inverse
// (1/det) * [[d, -b], [-c, a]].
func (m *Matrix) inverse2x2() (*Matrix, error) {
	a, b := m.elements[0], m.elements[1]
	c, d := m.elements[2], m.elements[3]

	det := a.Mul(d).Sub(b.Mul(c))
	if det.IsZero() {
		return nil, ErrNotInvertible
	}
	detInv, err := det.Inv()
	if err != nil {
		return nil, err
	}

	inv := NewMatrix(m.field, 2, 2)
	inv.elements[0] = d.Mul(detInv)
	inv.elements[1] = b.Neg().Mul(detInv)
	inv.elements[2] = c.Neg().Mul(detInv)
	inv.elements[3] = a.Mul(detInv)
	return inv, nil
}

// inverseGaussJordan row-reduces the augmented system [m | I] until the
// left half is the identity; the right half is then the inverse.
func (m *Matrix) inverseGaussJordan() (*Matrix, error) {
	n := m.rows
	key := m.Clone()
	inv := Identity(m.field, n)

	// Forward elimination with partial pivoting. The pivot row carries
	// the largest canonical representative in the column, ties going to
	// the lowest row index. Over a field any nonzero pivot works; the
	// magnitude rule only fixes the row-swap sequence so that the same
	// matrix always reduces the same way.
	for i := 0; i < n; i++ {
		maxRow := i
		maxVal := key.elements[i*n+i].Uint()
		for k := i + 1; k < n; k++ {
			if v := key.elements[k*n+i].Uint(); v > maxVal {
				maxVal = v
				maxRow = k
			}
		}
		if maxRow != i {
			key.swapRows(i, maxRow)
			inv.swapRows(i, maxRow)
		}

		pivot := key.elements[i*n+i]
		for k := i + 1; k < n; k++ {
			if pivot.IsZero() {
				return nil, ErrNotInvertible
			}
			d, err := key.elements[k*n+i].Div(pivot)
			if err != nil {
				return nil, err
			}
			key.subScaledRow(k, i, d)
			inv.subScaledRow(k, i, d)
		}
	}

	// Back substitution: normalize each pivot row of the right half and
	// clear the column above the pivot.
	for i := n - 1; i >= 0; i-- {
		pivot := key.elements[i*n+i]
		if pivot.IsZero() {
			return nil, ErrNotInvertible
		}
		for j := 0; j < n; j++ {
			e, err := inv.elements[i*n+j].Div(pivot)
			if err != nil {
				return nil, err
			}
			inv.elements[i*n+j] = e
		}
		key.elements[i*n+i] = m.field.One()

		for row := i - 1; row >= 0; row-- {
			factor := key.elements[row*n+i]
			for col := 0; col < n; col++ {
				inv.elements[row*n+col] = inv.elements[row*n+col].Sub(inv.elements[i*n+col].Mul(factor))
			}
			key.elements[row*n+i] = m.field.Zero()
		}
	}
	return inv, nil
}
