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

package middleware

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"dirpx.dev/ddx/apis"
)

// Logging returns middleware that logs dispatch start and completion at V(1)
// and handler errors at error level.
func Logging(log logr.Logger) apis.Middleware {
	return func(ctx context.Context, call *apis.Call, next apis.Invocation) (any, error) {
		l := log.WithValues(
			"call_id", call.ID.String(),
			"method", call.Method,
			"variant", call.Variant,
			"resolver", call.Resolver,
		)
		l.V(1).Info("dispatch started", "args", len(call.Args))

		start := time.Now()
		out, err := next(ctx, call)
		elapsed := time.Since(start)

		if err != nil {
			l.Error(err, "dispatch failed", "elapsed", elapsed)
		} else {
			l.V(1).Info("dispatch completed", "elapsed", elapsed)
		}
		return out, err
	}
}
