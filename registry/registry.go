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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/ddx/apis"
	"dirpx.dev/ddx/config"
	uref "dirpx.dev/ddx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("ddx(registry): nil reflect.Type provided")
	// ErrEmptyIdentifier is returned when an empty dispatch identifier is provided.
	ErrEmptyIdentifier = errors.New("ddx(registry): empty dispatch identifier provided")
	// ErrTypeNotNamed is returned when a type has no named base to register,
	// such as an anonymous struct or a slice. It also matches
	// reflect.ErrReflectTypeNotNamed.
	ErrTypeNotNamed = errors.New("ddx(registry): type is not a named variant")
)

// New constructs a Registry that normalizes variants according to cfg.
// Only MaxUnwrap is used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu serializes writers and guards count.
	mu sync.Mutex
	// m maps the variant reflect.Type to its dispatch identifier.
	m sync.Map // map[reflect.Type]string
	// count tracks the number of registered entries.
	count int
}

// Register associates the variant of t with id. Re-registering a variant
// replaces its identifier; the last completed write wins.
func (r *registry) Register(t reflect.Type, id string) error {
	if t == nil {
		return ErrNilType
	}
	if id == "" {
		return ErrEmptyIdentifier
	}

	b, err := uref.Normalize(t, r.cfg)
	if errors.Is(err, uref.ErrReflectTypeNotNamed) {
		return fmt.Errorf("%w: %s: %w", ErrTypeNotNamed, t, err)
	}
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, loaded := r.m.Swap(b, id); !loaded {
		r.count++
	}
	return nil
}

// Lookup returns the identifier registered for the variant of t.
func (r *registry) Lookup(t reflect.Type) (id string, ok bool) {
	if t == nil {
		return "", false
	}
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return "", false
	}
	if v, ok := r.m.Load(b); ok {
		return v.(string), true
	}
	return "", false
}

// Unregister removes the identifier for the variant of t.
func (r *registry) Unregister(t reflect.Type) bool {
	if t == nil {
		return false
	}
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, loaded := r.m.LoadAndDelete(b); loaded {
		r.count--
		return true
	}
	return false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type:       key.(reflect.Type),
			Identifier: value.(string),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
