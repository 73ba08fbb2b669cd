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
	"context"

	"github.com/google/uuid"
)

// Call describes a single dispatch. It is created per invocation, handed to
// middleware and discarded afterwards. Middleware must not mutate it.
type Call struct {
	// ID correlates log lines and spans belonging to this call.
	ID uuid.UUID
	// Operation is the caller-supplied operation prefix.
	Operation string
	// Identifier is the dispatch identifier of the object's variant.
	Identifier string
	// Method is the composed handler name.
	Method string
	// Variant is the qualified type name of the object ("pkg.Type").
	Variant string
	// Resolver is the Go type of the resolver, for diagnostics.
	Resolver string
	// Object is the dispatched object.
	Object any
	// Args are the extra arguments in the caller's order.
	Args []any
}

// Invocation continues a dispatch after middleware.
type Invocation func(ctx context.Context, call *Call) (any, error)

// Middleware wraps handler invocation with cross-cutting logic. It must call
// next (unless short-circuiting) and return its result and error unchanged.
type Middleware func(ctx context.Context, call *Call, next Invocation) (any, error)
