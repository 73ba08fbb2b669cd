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

// Package ddx provides double dispatch keyed by a per-variant dispatch
// identifier.
//
// A variant is a Go named type; *T and T are the same variant. Each variant
// that takes part in dispatch has a dispatch identifier, a short string such
// as "dog". Dispatching an object for an operation prefix composes the handler
// name "<prefix>_<identifier>", looks it up on a resolver and calls it with
// the object followed by the caller's extra arguments:
//
//	ddx.Register[Dog]("dog")
//	out, err := ddx.Dispatch(rex, "perform_for", res, 2, "other")
//	// calls res's "perform_for_dog" handler with (rex, 2, "other")
//
// # Identifiers
//
// The identifier of a variant comes from the first of these that applies:
//
//  1. An explicit registration (Register, RegisterType). Registering again
//     replaces the identifier; the last write wins.
//  2. A DispatchID() string method on the variant (apis.Declarer).
//  3. The variant's type name, when the variant embeds ByTypeName or the
//     configuration sets DeriveAll. "Human" becomes "human" with the default
//     lower-case naming, "hot_dog" for "HotDog" with snake naming.
//
// A variant with none of these fails with *apis.ConfigurationError. No
// default identifier is ever made up.
//
// # Resolvers
//
// A resolver maps handler names to handlers and is built once, see package
// resolver: a hand-written table (resolver.New), a table built from the
// exported methods of a value (resolver.FromMethods) or several composed
// (resolver.Compose). A missing handler fails with *apis.MethodNotFoundError.
// Errors returned by handlers are passed through unchanged.
//
// # Global state
//
// The package keeps an immutable snapshot of configuration, registry,
// identifier provider, builder, middleware and logger behind an atomic
// pointer. Reads (Identifier, Dispatch) are lock-free. Writers (SetConfig,
// SetBuilder, SetExt, SetRegistry, SetProvider, Use, SetLogger, SetAll)
// serialize on a mutex, build a new snapshot and swap it in.
//
// SetRegistry and SetProvider pin the layer they install: rebuilds triggered
// by SetConfig, SetBuilder or SetExt leave pinned layers alone until
// UnpinRegistry or UnpinProvider. Unpinned registries are rebuilt with their
// entries migrated, so registrations survive configuration changes.
//
// The extension value set with SetExt is not interpreted here. It is handed
// to the builder on every rebuild so custom builders can carry their own
// policy.
//
// # Observability
//
// Middleware installed with Use wraps every handler call. Package middleware
// provides logr logging, OpenTelemetry tracing and Prometheus metrics.
//
// # Scope
//
// Dispatch is single: only the first object's variant selects the handler.
// There is no compile-time exhaustiveness checking over variants.
package ddx
