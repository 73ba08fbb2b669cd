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
	"reflect"
)

// Strategy is a pluggable identification step. A Provider chains multiple
// strategies in order (e.g., Registry -> Declarer -> Derived).
type Strategy interface {
	// TryIdentify attempts to find the dispatch identifier of v's variant.
	// It returns (id, true) if handled; otherwise ("", false) to fall through.
	TryIdentify(v any, cfg Config) (id string, handled bool)

	// TryIdentifyType attempts to find the dispatch identifier of the variant t.
	TryIdentifyType(t reflect.Type, cfg Config) (id string, handled bool)
}

// Declarer is implemented by variants that declare their own dispatch identifier.
// The returned value must not depend on instance state.
type Declarer interface {
	DispatchID() string
}

// NameDeriver marks variants that derive their dispatch identifier from
// their own type name. Embed ddx.ByTypeName to opt in.
type NameDeriver interface {
	DispatchByTypeName()
}
