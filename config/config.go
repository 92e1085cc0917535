// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcontrast/contrasts"
)

// File is the decoded configuration document.
type File struct {
	Contrasts map[string]TermSpec `yaml:"contrasts" toml:"contrasts"`
}

// TermSpec configures the contrast coding of one categorical term.
type TermSpec struct {
	Scheme string   `yaml:"scheme" toml:"scheme"`
	Base   *string  `yaml:"base,omitempty" toml:"base,omitempty"`
	Levels []string `yaml:"levels,omitempty" toml:"levels,omitempty"` // empty: derive from data
}

// ParseYAML decodes a YAML document. Unknown fields are rejected.
func ParseYAML(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		if strings.Contains(err.Error(), "not found in type") {
			return nil, fmt.Errorf("ParseYAML: %w: %w", ErrUnknownKey, err)
		}

		return nil, fmt.Errorf("ParseYAML: %w: %w", ErrDecode, err)
	}

	return &f, nil
}

// ParseTOML decodes a TOML document. Undecoded keys are rejected.
func ParseTOML(data []byte) (*File, error) {
	var f File
	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("ParseTOML: %w: %w", ErrDecode, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return nil, fmt.Errorf("ParseTOML: %w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	return &f, nil
}

// Spec validates t and converts it into a contrasts.Spec.
func (t TermSpec) Spec() (contrasts.Spec[string], error) {
	scheme, err := contrasts.ParseScheme(t.Scheme)
	if err != nil {
		return contrasts.Spec[string]{}, err
	}

	var opts []contrasts.SpecOption[string]
	if len(t.Levels) > 0 {
		opts = append(opts, contrasts.WithLevels(t.Levels...))
	}
	if t.Base != nil {
		if scheme.FullRank() {
			return contrasts.Spec[string]{}, fmt.Errorf("%v has no base level: %w", scheme, ErrInvalidTerm)
		}
		if len(t.Levels) > 0 && !slices.Contains(t.Levels, *t.Base) {
			return contrasts.Spec[string]{}, fmt.Errorf("base %q not in levels: %w", *t.Base, contrasts.ErrBaseLevelNotFound)
		}
		opts = append(opts, contrasts.WithBase(*t.Base))
	}

	return contrasts.NewSpec(scheme, opts...), nil
}

// Specs converts every term. Terms are processed in name order and all
// failures are combined into one error.
func (f *File) Specs() (map[string]contrasts.Spec[string], error) {
	names := make([]string, 0, len(f.Contrasts))
	for name := range f.Contrasts {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]contrasts.Spec[string], len(names))
	var errs error
	for _, name := range names {
		spec, err := f.Contrasts[name].Spec()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("term %q: %w", name, err))
			continue
		}
		out[name] = spec
	}
	if errs != nil {
		return nil, errs
	}

	return out, nil
}
