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

import "reflect"

// Registry stores explicit dispatch identifiers per variant.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Register associates the variant of t with id.
	// A later call for the same variant overwrites the earlier identifier.
	Register(t reflect.Type, id string) error
	// Lookup returns the identifier registered for the variant of t.
	Lookup(t reflect.Type) (id string, ok bool)
	// Unregister removes the identifier for the variant of t.
	// It reports whether an identifier was present.
	Unregister(t reflect.Type) bool
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (variant, identifier) association in a Registry snapshot.
type Entry struct {
	// Type is the registered variant.
	Type reflect.Type
	// Identifier is the associated dispatch identifier.
	Identifier string
}
