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

// Handler handles one variant for one operation. It receives the dispatched
// object followed by the caller's extra arguments, in the caller's order.
type Handler func(obj any, args ...any) (any, error)

// Resolver exposes handlers by composed name ("<operation><sep><identifier>").
// Resolvers may be partial and cover only some variants.
type Resolver interface {
	// Lookup returns the handler registered under method.
	Lookup(method string) (Handler, bool)
}
