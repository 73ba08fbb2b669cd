/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/ddx/apis"
)

const (
	// DefaultSeparator represents the default for Separator.
	// It joins "perform_for" and "dog" into "perform_for_dog".
	DefaultSeparator = "_"
	// DefaultNaming represents the default for Naming.
	// Derived identifiers are the lower-cased, unqualified type name.
	DefaultNaming = apis.NamingLower
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultDeriveAll represents the default for DeriveAll.
	// Variants must opt in to name derivation.
	DefaultDeriveAll = false
)

var (
	// ErrEmptySeparator is returned when a configuration has no separator.
	ErrEmptySeparator = errors.New("ddx(config): empty separator")
	// ErrUnknownNaming is returned when a configuration names an unsupported naming style.
	ErrUnknownNaming = errors.New("ddx(config): unknown naming style")
	// ErrNegativeMaxUnwrap is returned when MaxUnwrap is negative.
	ErrNegativeMaxUnwrap = errors.New("ddx(config): negative max unwrap")
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap and Separator are usable.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.Separator == "" {
		cfg.Separator = DefaultSeparator
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Separator: DefaultSeparator,
		Naming:    DefaultNaming,
		MaxUnwrap: DefaultMaxUnwrap,
		DeriveAll: DefaultDeriveAll,
	}
}

// Validate reports the first problem found in cfg.
func Validate(cfg apis.Config) error {
	if cfg.Separator == "" {
		return ErrEmptySeparator
	}
	switch cfg.Naming {
	case apis.NamingLower, apis.NamingSnake, apis.NamingExact:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownNaming, cfg.Naming)
	}
	if cfg.MaxUnwrap < 0 {
		return ErrNegativeMaxUnwrap
	}
	return nil
}

// ParseNaming parses a naming style name, ignoring case and surrounding
// space: "Snake" -> apis.NamingSnake.
func ParseNaming(s string) (apis.Naming, error) {
	switch n := apis.Naming(strings.ToLower(strings.TrimSpace(s))); n {
	case apis.NamingLower, apis.NamingSnake, apis.NamingExact:
		return n, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNaming, s)
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithSeparator sets the Separator option.
// An empty value resets to the default.
func WithSeparator(sep string) Option {
	return func(c *apis.Config) {
		if sep == "" {
			c.Separator = DefaultSeparator
			return
		}
		c.Separator = sep
	}
}

// WithNaming sets the Naming option.
func WithNaming(n apis.Naming) Option {
	return func(c *apis.Config) {
		c.Naming = n
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithDeriveAll sets the DeriveAll option.
func WithDeriveAll(derive bool) Option {
	return func(c *apis.Config) {
		c.DeriveAll = derive
	}
}
