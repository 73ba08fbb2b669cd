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
	"dirpx.dev/ddx/apis"
)

// Compose returns a resolver that asks each of rs in order and uses the first
// handler found. Nil resolvers are ignored. It lets a partial resolver fall
// back to a more general one.
func Compose(rs ...apis.Resolver) apis.Resolver {
	out := make(composite, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

type composite []apis.Resolver

func (c composite) Lookup(method string) (apis.Handler, bool) {
	for _, r := range c {
		if h, ok := r.Lookup(method); ok {
			return h, true
		}
	}
	return nil, false
}
