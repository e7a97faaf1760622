package field

import (
	"fmt"
	"strings"
)

// Matrix is a rectangular array of field elements. Row and column
// counts are fixed at construction; elements are stored in row-major
// order.
type Matrix struct {
	field    Field
	rows     int
	cols     int
	elements []Element
}

func checkDimensions(rows, cols int) {
	if rows <= 0 {
		panic("field: invalid row count")
	}
	if cols <= 0 {
		panic("field: invalid column count")
	}
}

// NewMatrix returns a rows x cols matrix over f with every element set
// to zero. It panics on non-positive dimensions.
func NewMatrix(f Field, rows, cols int) *Matrix {
	checkDimensions(rows, cols)
	elements := make([]Element, rows*cols)
	for i := range elements {
		elements[i] = f.Zero()
	}
	return &Matrix{field: f, rows: rows, cols: cols, elements: elements}
}

// NewMatrixFromInts returns a rows x cols matrix with elements taken
// from vals in row-major order, each reduced into the field.
func NewMatrixFromInts(f Field, rows, cols int, vals []int64) *Matrix {
	checkDimensions(rows, cols)
	if len(vals) != rows*cols {
		panic("field: element count is not rows*cols")
	}
	elements := make([]Element, len(vals))
	for i, v := range vals {
		elements[i] = f.FromInt(v)
	}
	return &Matrix{field: f, rows: rows, cols: cols, elements: elements}
}

// Identity returns the n x n identity matrix over f.
func Identity(f Field, n int) *Matrix {
	m := NewMatrix(f, n, n)
	for i := 0; i < n; i++ {
		m.elements[i*n+i] = f.One()
	}
	return m
}

// Field returns the field the elements live in.
func (m *Matrix) Field() Field { return m.field }

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// IsSquare reports whether the matrix has as many rows as columns.
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

func (m *Matrix) index(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("element (%d,%d) of %dx%d matrix: %w", i, j, m.rows, m.cols, ErrIndexOutOfRange)
	}
	return i*m.cols + j, nil
}

// At returns the element at row i, column j, failing with
// ErrIndexOutOfRange when the indices are out of bounds.
func (m *Matrix) At(i, j int) (Element, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return nil, err
	}
	return m.elements[idx], nil
}

// Set replaces the element at row i, column j, failing with
// ErrIndexOutOfRange when the indices are out of bounds.
func (m *Matrix) Set(i, j int, e Element) error {
	idx, err := m.index(i, j)
	if err != nil {
		return err
	}
	m.elements[idx] = e
	return nil
}

// Mul returns the matrix product m x n, failing with
// ErrDimensionMismatch unless m.Cols() == n.Rows().
func (m *Matrix) Mul(n *Matrix) (*Matrix, error) {
	if m.cols != n.rows {
		return nil, fmt.Errorf("multiplying %dx%d by %dx%d: %w", m.rows, m.cols, n.rows, n.cols, ErrDimensionMismatch)
	}
	out := &Matrix{
		field:    m.field,
		rows:     m.rows,
		cols:     n.cols,
		elements: make([]Element, m.rows*n.cols),
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < n.cols; j++ {
			sum := m.field.Zero()
			for k := 0; k < m.cols; k++ {
				sum = sum.Add(m.elements[i*m.cols+k].Mul(n.elements[k*n.cols+j]))
			}
			out.elements[i*n.cols+j] = sum
		}
	}
	return out, nil
}

// Equal reports whether two matrices have the same dimensions and
// element-wise equal entries.
func (m *Matrix) Equal(n *Matrix) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i := range m.elements {
		if !m.elements[i].Equal(n.elements[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	elements := make([]Element, len(m.elements))
	for i, e := range m.elements {
		elements[i] = e.Clone()
	}
	return &Matrix{field: m.field, rows: m.rows, cols: m.cols, elements: elements}
}

// String renders the matrix one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.elements[i*m.cols+j].String())
		}
		sb.WriteByte(']')
		if i < m.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// swapRows exchanges rows i and j in place.
func (m *Matrix) swapRows(i, j int) {
	ri := m.elements[i*m.cols : (i+1)*m.cols]
	rj := m.elements[j*m.cols : (j+1)*m.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// subScaledRow subtracts d times row src from row dst in place.
func (m *Matrix) subScaledRow(dst, src int, d Element) {
	rd := m.elements[dst*m.cols : (dst+1)*m.cols]
	rs := m.elements[src*m.cols : (src+1)*m.cols]
	for k := range rd {
		rd[k] = rd[k].Sub(d.Mul(rs[k]))
	}
}
