// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrDecode is returned when the input is not valid YAML/TOML for a File.
	ErrDecode = errors.New("config: decode failed")

	// ErrUnknownKey is returned when the input carries keys File does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalidTerm is returned for a term whose settings contradict each other.
	ErrInvalidTerm = errors.New("config: invalid term")
)
