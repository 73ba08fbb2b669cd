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

// Package builder composes the registry and identifier provider used by the
// process-wide default.
package builder

import (
	"dirpx.dev/ddx/apis"
	"dirpx.dev/ddx/registry"
	"dirpx.dev/ddx/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry returns a new apis.Registry for cfg. Entries of prev, when
// given, are copied into it so registrations survive a config change.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = nreg.Register(e.Type, e.Identifier)
		}
	}
	return nreg
}

// BuildProvider returns an apis.Provider that tries, in order, explicit
// registrations in reg, identifiers declared by the variant, and identifiers
// derived from the type name. The previous provider holds no state worth
// migrating and is ignored.
func (b *builder) BuildProvider(_ apis.Config, reg apis.Registry, _ apis.Provider, _ any) apis.Provider {
	return strategy.NewProvider(
		strategy.NewRegistryStrategy(reg),
		strategy.NewDeclaredStrategy(),
		strategy.NewDerivedStrategy(),
	)
}
