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

package apis

import (
	"errors"
	"strconv"
)

var (
	// ErrConfiguration matches every *ConfigurationError via errors.Is.
	ErrConfiguration = errors.New("ddx: undefined dispatch identifier")
	// ErrMethodNotFound matches every *MethodNotFoundError via errors.Is.
	ErrMethodNotFound = errors.New("ddx: handler not found")
)

// ConfigurationError reports a variant that has neither a registered,
// declared nor derivable dispatch identifier. It signals a missing setup step.
type ConfigurationError struct {
	// Variant is the qualified type name of the variant ("pkg.Type").
	Variant string
}

func (e *ConfigurationError) Error() string {
	return "ddx: undefined dispatch identifier for variant " + strconv.Quote(e.Variant)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// MethodNotFoundError reports that a resolver has no handler for the composed name.
// Partial resolvers produce it for variants they do not cover.
type MethodNotFoundError struct {
	// Method is the composed handler name.
	Method string
	// Resolver is the Go type of the resolver.
	Resolver string
}

func (e *MethodNotFoundError) Error() string {
	return "ddx: resolver " + e.Resolver + " has no handler " + strconv.Quote(e.Method)
}

// Is reports whether target is ErrMethodNotFound.
func (e *MethodNotFoundError) Is(target error) bool {
	return target == ErrMethodNotFound
}
