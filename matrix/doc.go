// Package matrix offers the dense linear-algebra layer of the reservoir module.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set, per-column
//     access (Col/SetCol) for time-major sequences, and copy-based slicing.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MatVec, VStack with *Dense fast paths
//     and a generic Matrix fallback.
//   - Spectral tools: Eigenvalues and SpectralRadius for general (non-symmetric)
//     square matrices, backed by gonum.
//   - PseudoInverse: Moore–Penrose inverse via thin SVD, backed by gonum.
//   - Reductions: SumSquares and FrobeniusNorm for error metrics and readout summaries.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrNaNInf, ...) wrapped
// with operation context; match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
