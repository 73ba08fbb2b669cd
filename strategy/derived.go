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

package strategy

import (
	"reflect"
	"sync"

	"dirpx.dev/ddx/apis"
	uref "dirpx.dev/ddx/utils/reflect"
)

// NewDerivedStrategy creates an apis.Strategy that derives identifiers from
// type names via reflection, with memoization.
func NewDerivedStrategy() apis.Strategy {
	return derivedStrategy{}
}

// derivedStrategy computes an identifier from the unqualified type name of the
// variant ("Human" -> "human"). It only handles variants that implement
// apis.NameDeriver, or any named type when cfg.DeriveAll is set.
type derivedStrategy struct{}

// Ensure derivedStrategy implements apis.Strategy.
var _ apis.Strategy = (*derivedStrategy)(nil)

var nameDeriverType = reflect.TypeFor[apis.NameDeriver]()

// cacheKey ensures memoization respects all config knobs that affect derivation.
type cacheKey struct {
	t         reflect.Type
	naming    apis.Naming
	maxUnwrap int16
	deriveAll bool
}

// derivedCache caches derived identifiers by (type, config knobs).
// A stored "" marks a type the strategy does not handle.
var derivedCache sync.Map // key: cacheKey, val: string

// TryIdentify derives the identifier for v's variant.
func (derivedStrategy) TryIdentify(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return byType(reflect.TypeOf(v), cfg)
}

// TryIdentifyType derives the identifier for t.
func (derivedStrategy) TryIdentifyType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return byType(t, cfg)
}

// byType derives the identifier for t with memoization.
func byType(t reflect.Type, cfg apis.Config) (string, bool) {
	key := cacheKey{
		t:         t,
		naming:    cfg.Naming,
		maxUnwrap: int16(cfg.MaxUnwrap),
		deriveAll: cfg.DeriveAll,
	}
	if v, ok := derivedCache.Load(key); ok {
		id := v.(string)
		return id, id != ""
	}

	id := ""
	if base, err := uref.Normalize(t, cfg); err == nil && (cfg.DeriveAll || optedIn(base)) {
		id = uref.Derive(uref.BaseName(base), cfg.Naming)
	}

	derivedCache.Store(key, id)
	return id, id != ""
}

// optedIn reports whether t or *t implements apis.NameDeriver.
func optedIn(t reflect.Type) bool {
	return t.Implements(nameDeriverType) || reflect.PointerTo(t).Implements(nameDeriverType)
}
