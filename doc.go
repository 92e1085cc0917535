// Package lvcontrast encodes categorical variables as numeric model columns.
//
// Given the levels observed for a categorical term and a coding scheme, it
// builds an immutable contrast matrix (one row per level, one column per coded
// term) and expands per-observation category codes into model-matrix columns.
//
// Everything is organized under three subpackages:
//
//	contrasts/ — Spec (Treatment, Sum, Helmert, Dummy), level resolution,
//	             ContrastMatrix construction, Materialize and Promote
//	matrix/    — row-major Dense storage and the small kernels behind it
//	config/    — YAML/TOML contrast settings decoded into contrasts.Spec values
//
// Quick example:
//
//	cm, err := contrasts.New(contrasts.Sum(contrasts.WithBase("ctrl")), levels)
//	cols, err := contrasts.Materialize(codes, dataLevels, cm)
//
//	go get github.com/katalvlaran/lvcontrast
package lvcontrast
