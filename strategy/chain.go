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

package strategy

import (
	"reflect"

	"dirpx.dev/ddx/apis"
	uref "dirpx.dev/ddx/utils/reflect"
)

// NewProvider constructs an apis.Provider that tries the given strategies in order.
// Nil strategies are ignored. The returned provider is safe for concurrent use
// provided strategies themselves are safe for concurrent TryIdentify calls.
func NewProvider(strategies ...apis.Strategy) apis.Provider {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving provider over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Identify runs strategies in order until one handles the value.
// Fails with *apis.ConfigurationError if none does.
func (p chain) Identify(v any, cfg apis.Config) (string, error) {
	for _, s := range p.strats {
		if id, ok := s.TryIdentify(v, cfg); ok {
			return id, nil
		}
	}
	return "", &apis.ConfigurationError{Variant: variantName(reflect.TypeOf(v), cfg)}
}

// IdentifyType runs strategies in order until one handles the type.
// Fails with *apis.ConfigurationError if none does.
func (p chain) IdentifyType(t reflect.Type, cfg apis.Config) (string, error) {
	for _, s := range p.strats {
		if id, ok := s.TryIdentifyType(t, cfg); ok {
			return id, nil
		}
	}
	return "", &apis.ConfigurationError{Variant: variantName(t, cfg)}
}

// variantName names the variant of t for diagnostics.
func variantName(t reflect.Type, cfg apis.Config) string {
	if base, err := uref.Normalize(t, cfg); err == nil {
		return uref.QualifiedName(base)
	}
	return uref.QualifiedName(t)
}
