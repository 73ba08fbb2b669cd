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

// Package middleware provides composable middleware for dispatch calls.
// Middleware wraps handler invocation synchronously and observes it (log,
// trace, count). It never alters the handler's result or error.
package middleware

import (
	"context"

	"dirpx.dev/ddx/apis"
)

// Chain composes multiple middleware into a single apis.Middleware.
// The first middleware in the list is the outermost wrapper.
//
// Example: Chain(logging, tracing, metrics) executes as:
//
//	logging → tracing → metrics → handler
func Chain(mws ...apis.Middleware) apis.Middleware {
	return func(ctx context.Context, call *apis.Call, next apis.Invocation) (any, error) {
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			if mw == nil {
				continue
			}
			prev := h
			h = func(ctx context.Context, call *apis.Call) (any, error) {
				return mw(ctx, call, prev)
			}
		}
		return h(ctx, call)
	}
}
