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

package resolver

import (
	"fmt"
	"reflect"

	"github.com/serenize/snaker"

	"dirpx.dev/ddx/apis"
)

var errorType = reflect.TypeFor[error]()

// FromMethods builds a handler table from the exported methods of v. Method
// names are converted to snake case, so PerformForDog serves "perform_for_dog".
// The table is built once; dispatching does no name-based reflection.
//
// A method qualifies when it takes at least one parameter (the dispatched
// object; remaining parameters receive the extra arguments, variadic allowed)
// and returns nothing, a single value, an error, or a value and an error.
// Other methods are skipped.
func FromMethods(v any) (*Map, error) {
	if v == nil {
		return nil, ErrNilReceiver
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, ErrNilReceiver
	}

	m := New()
	rt := rv.Type()
	for i := 0; i < rt.NumMethod(); i++ {
		meth := rt.Method(i)
		if !meth.IsExported() {
			continue
		}
		fn := rv.Method(i)
		if !qualifies(fn.Type()) {
			continue
		}
		m.Handle(snaker.CamelToSnake(meth.Name), methodHandler(meth.Name, fn))
	}
	return m, nil
}

// qualifies reports whether ft can serve as a handler.
func qualifies(ft reflect.Type) bool {
	if ft.NumIn() == 0 {
		return false
	}
	switch ft.NumOut() {
	case 0, 1:
		return true
	case 2:
		return ft.Out(1) == errorType
	default:
		return false
	}
}

// methodHandler wraps a bound method value.
func methodHandler(name string, fn reflect.Value) apis.Handler {
	ft := fn.Type()
	return func(obj any, args ...any) (any, error) {
		vals := make([]any, 0, len(args)+1)
		vals = append(vals, obj)
		vals = append(vals, args...)

		in, err := bindArgs(ft, vals)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrArgumentMismatch, name, err)
		}
		return results(ft, fn.Call(in))
	}
}

// bindArgs converts vals to call arguments for ft.
func bindArgs(ft reflect.Type, vals []any) ([]reflect.Value, error) {
	n := ft.NumIn()
	fixed := n
	if ft.IsVariadic() {
		fixed = n - 1
	}
	if len(vals) < fixed || (!ft.IsVariadic() && len(vals) != n) {
		return nil, fmt.Errorf("want %d arguments, got %d", n, len(vals))
	}

	in := make([]reflect.Value, len(vals))
	for i, v := range vals {
		var pt reflect.Type
		if i < fixed {
			pt = ft.In(i)
		} else {
			pt = ft.In(n - 1).Elem()
		}
		av, err := argValue(v, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = av
	}
	return in, nil
}

// argValue converts v to a value assignable to t.
func argValue(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", t)
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", rv.Type(), t)
	}
	return rv, nil
}

// results maps method return values onto (any, error).
func results(ft reflect.Type, out []reflect.Value) (any, error) {
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if ft.Out(0) == errorType {
			return nil, asError(out[0])
		}
		return out[0].Interface(), nil
	default:
		return out[0].Interface(), asError(out[1])
	}
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}
