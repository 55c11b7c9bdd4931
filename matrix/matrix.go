// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package matrix provides a dense float64 matrix with serial and parallel
// addition and multiplication.
//
// The parallel variants split the result rows into one contiguous chunk
// per worker with [syncx.ParallelFor]. Each worker writes only the rows
// it owns, so the result needs no locking.
package matrix

import (
	"errors"
	"fmt"
	"math"

	"code.hybscloud.com/syncx"
)

// ErrShape indicates operand dimensions that do not fit the operation.
var ErrShape = errors.New("matrix: dimension mismatch")

// Matrix is a dense row-major matrix.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New creates a rows×cols zero matrix.
// Panics if rows or cols is negative.
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic("matrix: negative dimension")
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// FromRows creates a matrix from a slice of rows.
// All rows must have the same length.
func FromRows(rows [][]float64) (*Matrix, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := New(len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(r), cols, ErrShape)
		}
		copy(m.data[i*cols:], r)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// Equal reports whether m and o have the same shape and every pair of
// elements differs by at most tol.
func (m *Matrix) Equal(o *Matrix, tol float64) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-o.data[i]) > tol {
			return false
		}
	}
	return true
}

// Add returns a + b, computed on the calling goroutine.
func Add(a, b *Matrix) (*Matrix, error) {
	if err := checkAdd(a, b); err != nil {
		return nil, err
	}
	out := New(a.rows, a.cols)
	addRows(out, a, b, 0, a.rows)
	return out, nil
}

// Mul returns the product a × b, computed on the calling goroutine.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := checkMul(a, b); err != nil {
		return nil, err
	}
	out := New(a.rows, b.cols)
	mulRows(out, a, b, 0, a.rows)
	return out, nil
}

// ParallelAdd returns a + b, computing row chunks on workers goroutines.
// Panics if workers < 1.
func ParallelAdd(a, b *Matrix, workers int) (*Matrix, error) {
	if err := checkAdd(a, b); err != nil {
		return nil, err
	}
	out := New(a.rows, a.cols)
	syncx.ParallelFor(a.rows, workers, func(_, lo, hi int) {
		addRows(out, a, b, lo, hi)
	})
	return out, nil
}

// ParallelMul returns a × b, computing row chunks on workers goroutines.
// Panics if workers < 1.
func ParallelMul(a, b *Matrix, workers int) (*Matrix, error) {
	if err := checkMul(a, b); err != nil {
		return nil, err
	}
	out := New(a.rows, b.cols)
	syncx.ParallelFor(a.rows, workers, func(_, lo, hi int) {
		mulRows(out, a, b, lo, hi)
	})
	return out, nil
}

func checkAdd(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("add %dx%d and %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrShape)
	}
	return nil
}

func checkMul(a, b *Matrix) error {
	if a.cols != b.rows {
		return fmt.Errorf("multiply %dx%d by %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrShape)
	}
	return nil
}

// addRows writes rows [lo, hi) of a + b into out.
func addRows(out, a, b *Matrix, lo, hi int) {
	for k := lo * a.cols; k < hi*a.cols; k++ {
		out.data[k] = a.data[k] + b.data[k]
	}
}

// mulRows writes rows [lo, hi) of a × b into out.
func mulRows(out, a, b *Matrix, lo, hi int) {
	for i := lo; i < hi; i++ {
		for j := range b.cols {
			var sum float64
			for k := range a.cols {
				sum += a.data[i*a.cols+k] * b.data[k*b.cols+j]
			}
			out.data[i*b.cols+j] = sum
		}
	}
}
