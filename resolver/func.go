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

	"dirpx.dev/ddx/apis"
)

// Func adapts a handler with a typed object parameter to apis.Handler.
// Dispatching an object that is not a T fails with ErrObjectType.
func Func[T any](fn func(obj T, args ...any) (any, error)) apis.Handler {
	return func(obj any, args ...any) (any, error) {
		o, ok := obj.(T)
		if !ok {
			return nil, fmt.Errorf("%w: got %T, want %s", ErrObjectType, obj, reflect.TypeFor[T]())
		}
		return fn(o, args...)
	}
}
