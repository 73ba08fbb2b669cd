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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/ddx/apis"
)

// tracerName is the instrumentation scope name for dispatch tracing.
const tracerName = "dirpx.dev/ddx"

// SpanName is the name of spans created by Tracing.
const SpanName = "ddx.dispatch"

// Tracing returns middleware that wraps handler invocation in an OpenTelemetry
// span. Without a configured global TracerProvider the noop tracer is used.
func Tracing() apis.Middleware {
	return TracingWithTracer(otel.Tracer(tracerName))
}

// TracingWithTracer returns tracing middleware using the provided tracer.
//
// Span attributes: ddx.call_id, ddx.operation, ddx.identifier, ddx.method,
// ddx.variant, ddx.resolver. On error the span status is codes.Error.
func TracingWithTracer(tracer trace.Tracer) apis.Middleware {
	return func(ctx context.Context, call *apis.Call, next apis.Invocation) (any, error) {
		ctx, span := tracer.Start(ctx, SpanName,
			trace.WithAttributes(
				attribute.String("ddx.call_id", call.ID.String()),
				attribute.String("ddx.operation", call.Operation),
				attribute.String("ddx.identifier", call.Identifier),
				attribute.String("ddx.method", call.Method),
				attribute.String("ddx.variant", call.Variant),
				attribute.String("ddx.resolver", call.Resolver),
			),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
		defer span.End()

		out, err := next(ctx, call)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		return out, err
	}
}
