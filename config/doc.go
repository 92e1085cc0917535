// Package config decodes declarative contrast settings into contrasts.Spec
// values.
//
// A configuration maps term names to a scheme and optional base/levels:
//
//	contrasts:
//	  dose:
//	    scheme: treatment
//	    base: low
//	    levels: [low, mid, high]
//	  site:
//	    scheme: sum
//
// The same shape is accepted as TOML ([contrasts.dose] tables). Unknown keys
// are rejected, and File.Specs reports every invalid term at once.
package config
