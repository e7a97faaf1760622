package field

import (
	"errors"
	"testing"
)

func TestMatrixMultiplyIdentity(t *testing.T) {
	f := NewPrimeField(17)

	b := NewMatrixFromInts(f, 2, 2, []int64{3, 4, 5, 6})
	got, err := Identity(f, 2).Mul(b)
	if err != nil {
		t.Fatalf("I * B failed: %v", err)
	}
	if !got.Equal(b) {
		t.Errorf("I * B = %v, want %v", got, b)
	}
}

func TestMatrixMultiplyKnown(t *testing.T) {
	f := NewPrimeField(17)

	// [[2, 3], [1, 4]] * [[5, 6], [7, 8]] = [[31, 36], [33, 38]],
	// which is [[14, 2], [16, 4]] mod 17.
	a := NewMatrixFromInts(f, 2, 2, []int64{2, 3, 1, 4})
	b := NewMatrixFromInts(f, 2, 2, []int64{5, 6, 7, 8})
	want := NewMatrixFromInts(f, 2, 2, []int64{14, 2, 16, 4})

	got, err := a.Mul(b)
	if err != nil {
		t.Fatalf("A * B failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("A * B = %v, want %v", got, want)
	}
}

func TestMatrixMultiplyRectangular(t *testing.T) {
	f := NewPrimeField(97)

	a := NewMatrixFromInts(f, 2, 3, []int64{1, 2, 3, 4, 5, 6})
	b := NewMatrixFromInts(f, 3, 2, []int64{7, 8, 9, 10, 11, 12})

	got, err := a.Mul(b)
	if err != nil {
		t.Fatalf("2x3 * 3x2 failed: %v", err)
	}
	if got.Rows() != 2 || got.Cols() != 2 {
		t.Fatalf("result is %dx%d, want 2x2", got.Rows(), got.Cols())
	}
	want := NewMatrixFromInts(f, 2, 2, []int64{58, 64, 42, 57}) // 139 mod 97, 154 mod 97
	if !got.Equal(want) {
		t.Errorf("2x3 * 3x2 = %v, want %v", got, want)
	}
}

func TestMatrixMultiplyDimensionMismatch(t *testing.T) {
	f := NewPrimeField(97)

	a := NewMatrix(f, 2, 2)
	b := NewMatrix(f, 3, 1)
	if _, err := a.Mul(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("2x2 * 3x1 error = %v, want ErrDimensionMismatch", err)
	}
}

func TestMatrixAtSetBounds(t *testing.T) {
	f := NewPrimeField(97)
	m := NewMatrix(f, 2, 3)

	if err := m.Set(1, 2, f.FromInt(5)); err != nil {
		t.Fatalf("Set(1, 2) failed: %v", err)
	}
	e, err := m.At(1, 2)
	if err != nil {
		t.Fatalf("At(1, 2) failed: %v", err)
	}
	if e.Uint() != 5 {
		t.Errorf("At(1, 2) = %v, want 5", e)
	}

	bad := [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}}
	for _, idx := range bad {
		if _, err := m.At(idx[0], idx[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d, %d) error = %v, want ErrIndexOutOfRange", idx[0], idx[1], err)
		}
		if err := m.Set(idx[0], idx[1], f.Zero()); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Set(%d, %d) error = %v, want ErrIndexOutOfRange", idx[0], idx[1], err)
		}
	}
}

func TestMatrixEqual(t *testing.T) {
	f := NewPrimeField(97)

	a := NewMatrixFromInts(f, 2, 2, []int64{1, 2, 3, 4})
	if !a.Equal(a.Clone()) {
		t.Errorf("matrix not equal to its clone")
	}

	differentShape := NewMatrixFromInts(f, 1, 4, []int64{1, 2, 3, 4})
	if a.Equal(differentShape) {
		t.Errorf("2x2 compared equal to 1x4")
	}

	differentEntry := NewMatrixFromInts(f, 2, 2, []int64{1, 2, 3, 5})
	if a.Equal(differentEntry) {
		t.Errorf("matrices with different entries compared equal")
	}
}

func TestMatrixCloneIsDeep(t *testing.T) {
	f := NewPrimeField(97)

	a := NewMatrixFromInts(f, 2, 2, []int64{1, 2, 3, 4})
	c := a.Clone()
	if err := c.Set(0, 0, f.FromInt(42)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	e, err := a.At(0, 0)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if e.Uint() != 1 {
		t.Errorf("mutating the clone changed the original: At(0, 0) = %v", e)
	}
}

func TestNewMatrixPanicsOnBadDimensions(t *testing.T) {
	f := NewPrimeField(97)

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewMatrix(%d, %d) did not panic", dims[0], dims[1])
				}
			}()
			NewMatrix(f, dims[0], dims[1])
		}()
	}
}

func TestMatrixString(t *testing.T) {
	f := NewPrimeField(97)
	m := NewMatrixFromInts(f, 2, 2, []int64{0, -3, 5, 6})

	want := "[0 94]\n[5 6]"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
