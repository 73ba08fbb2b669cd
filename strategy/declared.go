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

	"dirpx.dev/ddx/apis"
)

// NewDeclaredStrategy creates an apis.Strategy that uses apis.Declarer.
func NewDeclaredStrategy() apis.Strategy {
	return &declaredStrategy{}
}

// declaredStrategy is a zero-cost fast path: if v implements apis.Declarer,
// return its DispatchID(). An empty DispatchID falls through.
type declaredStrategy struct{}

// Ensure declaredStrategy implements apis.Strategy.
var _ apis.Strategy = (*declaredStrategy)(nil)

// TryIdentify checks if v implements apis.Declarer and returns its DispatchID().
func (*declaredStrategy) TryIdentify(v any, _ apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	d, ok := v.(apis.Declarer)
	if !ok {
		return "", false
	}
	// A nil *T whose DispatchID has a value receiver would panic; the
	// identifier does not depend on instance state, so ask the zero T.
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		et := rv.Type().Elem()
		if !et.Implements(declarerType) {
			return declared(d)
		}
		d = reflect.Zero(et).Interface().(apis.Declarer)
	}
	return declared(d)
}

var declarerType = reflect.TypeFor[apis.Declarer]()

func declared(d apis.Declarer) (string, bool) {
	if id := d.DispatchID(); id != "" {
		return id, true
	}
	return "", false
}

// TryIdentifyType always returns false: Declarer requires an instance.
func (*declaredStrategy) TryIdentifyType(_ reflect.Type, _ apis.Config) (string, bool) {
	return "", false
}
