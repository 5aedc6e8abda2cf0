// SPDX-License-Identifier: MIT
// Package matrix - bridge to gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand Dense data to gonum factorizations (general eigen, SVD) and bring
//     results back as *Dense, so the rest of the module sees one matrix type.
//
// Notes:
//   - Both directions copy; gonum never aliases our buffers and vice versa.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// toGonum copies m into a fresh *mat.Dense (row-major, same layout).
// Assumes m has been validated non-nil.
// Complexity: Time O(r*c), Space O(r*c).
func toGonum(m Matrix) (*mat.Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, rows*cols)

	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)

		return mat.NewDense(rows, cols, buf), nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			buf[i*cols+j] = v
		}
	}

	return mat.NewDense(rows, cols, buf), nil
}

// fromGonum copies any gonum matrix into a new *Dense.
// Complexity: Time O(r*c), Space O(r*c).
func fromGonum(g mat.Matrix) (*Dense, error) {
	rows, cols := g.Dims()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[i*cols+j] = g.At(i, j)
		}
	}

	return res, nil
}
