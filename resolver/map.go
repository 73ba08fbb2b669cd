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
	"errors"
	"sort"
	"sync"

	"dirpx.dev/ddx/apis"
)

var (
	// ErrObjectType is returned by typed handlers when the dispatched object
	// does not have the handler's parameter type.
	ErrObjectType = errors.New("ddx(resolver): unexpected object type")
	// ErrArgumentMismatch is returned by method-backed handlers when the call
	// arguments do not fit the method signature.
	ErrArgumentMismatch = errors.New("ddx(resolver): arguments do not match handler signature")
	// ErrNilReceiver is returned when FromMethods is given a nil value.
	ErrNilReceiver = errors.New("ddx(resolver): nil receiver")
)

// New returns an empty handler table.
func New() *Map {
	return &Map{handlers: make(map[string]apis.Handler)}
}

// Map is an apis.Resolver backed by a table of handlers keyed by composed
// method name. It is safe for concurrent use.
type Map struct {
	mu       sync.RWMutex
	handlers map[string]apis.Handler
}

// Ensure Map implements apis.Resolver.
var _ apis.Resolver = (*Map)(nil)

// Handle registers h under method, replacing any previous handler.
// A nil handler removes the method. Handle returns m for chaining.
func (m *Map) Handle(method string, h apis.Handler) *Map {
	m.mu.Lock()
	defer m.mu.Unlock()
	if h == nil {
		delete(m.handlers, method)
		return m
	}
	m.handlers[method] = h
	return m
}

// Lookup returns the handler registered under method.
func (m *Map) Lookup(method string) (apis.Handler, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.handlers[method]
	return h, ok
}

// Methods returns the registered method names, sorted.
func (m *Map) Methods() []string {
	m.mu.RLock()
	out := make([]string, 0, len(m.handlers))
	for name := range m.handlers {
		out = append(out, name)
	}
	m.mu.RUnlock()
	sort.Strings(out)
	return out
}
