// Package contrasts encodes categorical levels as numeric model columns.
//
// A Spec chooses a coding scheme and, optionally, a base level and an explicit
// level list:
//
//	spec := contrasts.Sum(contrasts.WithBase("ctrl"))
//
// New resolves the Spec against the levels observed in data and returns an
// immutable ContrastMatrix (levels × columns) with one term name per column:
//
//	Treatment  I_n without the base column; base row is all 0.
//	Sum        Treatment with the base row set to -1.
//	Helmert    column j contrasts level j+1 with the mean of the levels before it.
//	Dummy      I_n; one column per level, no base (full rank).
//
// Resolution is strict: declared and observed levels must be the same set,
// with at least two levels. Observed levels missing from the Spec would drop
// rows, and declared levels missing from the data would yield all-zero,
// rank-deficient columns.
//
// Materialize turns per-observation level codes into the model columns. Codes
// index the data's own level order, which need not match the matrix order.
// Promote re-expresses any ContrastMatrix as full-rank Dummy coding over the
// same levels.
//
// All functions are pure; a built ContrastMatrix may be shared by concurrent
// readers without synchronization.
package contrasts
