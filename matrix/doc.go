// Package matrix offers the dense numeric storage behind contrast coding.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors that
//     return sentinel errors instead of panicking.
//   - Constructors for neutral shapes (NewZeros, NewIdentity).
//   - Row/column gathering (Dense.Induced) used to drop columns, reorder rows
//     and expand one row per observation.
//   - Small kernels (Transpose, Mul, ColumnSums) used for structural checks
//     such as centering and column orthogonality.
//
// Matrices here are small (levels × columns), so every kernel favors simple
// deterministic loops over blocking or parallelism.
package matrix
