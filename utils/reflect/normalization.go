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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/ddx/apis"
	"dirpx.dev/ddx/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping pointers)
	// is not a named type (e.g., anonymous struct, func, []T, map[K]V).
	ErrReflectTypeNotNamed = errors.New("reflect: type is not a named variant")
)

// Normalize unwraps unnamed pointers according to cfg.MaxUnwrap and returns
// the variant type, or an error if it is not a named type.
//
// Unwrapping policy:
//   - unnamed ptr -> Elem(), at most MaxUnwrap times;
//   - then: if t.Name() != "", return t; otherwise ErrReflectTypeNotNamed.
//
// Containers are not unwrapped: a []Dog is not a Dog.
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap && t.Kind() == reflect.Pointer && t.Name() == ""; i++ {
		t = t.Elem()
	}

	if t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}
