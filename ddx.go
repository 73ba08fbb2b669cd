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

package ddx

import (
	"context"
	"errors"
	"os"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"

	"dirpx.dev/ddx/apis"
	"dirpx.dev/ddx/builder"
	"dirpx.dev/ddx/config"
	"dirpx.dev/ddx/dispatcher"
)

func init() {
	s := &state{
		cfg: config.DefaultConfig(),
		bld: builder.New(),
		log: logr.Discard(),
	}
	s.reg = s.bld.BuildRegistry(s.cfg, nil, nil)
	s.prov = s.bld.BuildProvider(s.cfg, s.reg, nil, nil)
	s.disp = s.dispatcher()
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("ddx: builder returned nil registry")
	// ErrNilProvider is returned when a builder returns a nil provider.
	ErrNilProvider = errors.New("ddx: builder returned nil provider")
)

// ByTypeName is embedded by variants whose dispatch identifier is derived
// from their type name:
//
//	type Human struct {
//		ddx.ByTypeName
//		Name string
//	}
//
// Human dispatches as "human" with the default naming.
type ByTypeName struct{}

// DispatchByTypeName implements apis.NameDeriver.
func (ByTypeName) DispatchByTypeName() {}

// Register associates the variant T with id in the global registry.
// A later registration of the same variant replaces id.
func Register[T any](id string) error {
	return RegisterType(reflect.TypeFor[T](), id)
}

// RegisterType associates the variant t with id in the global registry.
// Writes are serialized with rebuilds, so a registration is never lost to a
// concurrent SetConfig migrating the registry. Writing through Registry()
// directly gives no such guarantee.
func RegisterType(t reflect.Type, id string) error {
	buildMu.Lock()
	defer buildMu.Unlock()
	return st.Load().reg.Register(t, id)
}

// Unregister removes the explicit identifier of T from the global registry.
// It reports whether one was present.
func Unregister[T any]() bool {
	buildMu.Lock()
	defer buildMu.Unlock()
	return st.Load().reg.Unregister(reflect.TypeFor[T]())
}

// Identifier returns the dispatch identifier of v's variant.
// It fails with *apis.ConfigurationError when the variant has none.
func Identifier(v any) (string, error) {
	s := st.Load()
	return s.prov.Identify(v, s.cfg)
}

// IdentifierFor returns the dispatch identifier of the variant T.
// Identifiers declared through DispatchID need a value; use Identifier.
func IdentifierFor[T any]() (string, error) {
	s := st.Load()
	return s.prov.IdentifyType(reflect.TypeFor[T](), s.cfg)
}

// Dispatch invokes the handler "<op>_<id>" of res with obj followed by args,
// where id is the dispatch identifier of obj's variant.
func Dispatch(obj any, op string, res apis.Resolver, args ...any) (any, error) {
	return st.Load().disp.DispatchContext(context.Background(), obj, op, res, args...)
}

// DispatchContext is Dispatch with a context visible to middleware.
func DispatchContext(ctx context.Context, obj any, op string, res apis.Resolver, args ...any) (any, error) {
	return st.Load().disp.DispatchContext(ctx, obj, op, res, args...)
}

// MethodName returns the handler name obj would be dispatched to for op.
func MethodName(obj any, op string) (string, error) {
	return st.Load().disp.MethodName(obj, op)
}

// Use appends middleware to the global dispatcher.
func Use(mws ...apis.Middleware) {
	update(false, false, func(s *state) {
		s.mws = append(append([]apis.Middleware(nil), s.mws...), mws...)
	})
}

// SetLogger sets the logger of the global dispatcher.
func SetLogger(log logr.Logger) {
	update(false, false, func(s *state) {
		s.log = log
	})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the global configuration and rebuilds the layers that
// are not pinned.
func SetConfig(cfg apis.Config) {
	update(true, true, func(s *state) {
		s.cfg = cfg
	})
}

// ConfigureFromEnv overlays DDX_* environment variables on the global
// configuration.
func ConfigureFromEnv() error {
	cfg, err := config.FromEnv(Config(), os.LookupEnv)
	if err != nil {
		return err
	}
	SetConfig(cfg)
	return nil
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs reg as the global registry and pins it.
// The provider is rebuilt unless pinned.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	update(false, true, func(s *state) {
		s.reg = reg
		s.preg = true
	})
}

// IsRegistryPinned reports whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// UnpinRegistry lets the builder rebuild the global registry again.
func UnpinRegistry() {
	update(false, false, func(s *state) {
		s.preg = false
	})
}

// Provider returns the global identifier provider.
func Provider() apis.Provider {
	return st.Load().prov
}

// SetProvider installs prov as the global provider and pins it.
func SetProvider(prov apis.Provider) {
	if prov == nil {
		return
	}
	update(false, false, func(s *state) {
		s.prov = prov
		s.pprov = true
	})
}

// IsProviderPinned reports whether the global provider is pinned.
func IsProviderPinned() bool {
	return st.Load().pprov
}

// UnpinProvider lets the builder rebuild the global provider again.
func UnpinProvider() {
	update(false, false, func(s *state) {
		s.pprov = false
	})
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the global builder and rebuilds the layers that are
// not pinned with it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(true, true, func(s *state) {
		s.bld = b
	})
}

// SetExt replaces the extension value handed to the builder and rebuilds the
// layers that are not pinned.
func SetExt[T any](ext T) {
	update(true, true, func(s *state) {
		s.ext = ext
	})
}

// ExtAs returns the global extension value as T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// SetAll replaces the global state in one step. Nil cfg or bld keep the
// current value; ext is always replaced. A nil reg is built (migrating the
// current entries) and unpinned, a non-nil reg is pinned. The provider is
// always rebuilt and unpinned, middleware is cleared and the logger reset.
// Mainly for tests.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := &state{
		cfg: old.cfg,
		ext: ext,
		bld: old.bld,
		log: logr.Discard(),
	}
	if cfg != nil {
		next.cfg = *cfg
	}
	if bld != nil {
		next.bld = bld
	}
	if reg != nil {
		next.reg = reg
		next.preg = true
	} else {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg, next.ext)
	}
	next.prov = next.bld.BuildProvider(next.cfg, next.reg, old.prov, next.ext)
	publish(next)
}

// update derives a new snapshot from the current one with edit, rebuilds the
// registry and provider when asked and not pinned, and publishes it.
func update(rebuildReg, rebuildProv bool, edit func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	edit(&next)

	if rebuildReg && !next.preg {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg, next.ext)
	}
	if rebuildProv && !next.pprov {
		next.prov = next.bld.BuildProvider(next.cfg, next.reg, old.prov, next.ext)
	}
	publish(&next)
}

// publish checks s and stores it. Callers hold buildMu.
func publish(s *state) {
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.prov == nil {
		panic(ErrNilProvider)
	}
	s.disp = s.dispatcher()
	st.Store(s)
}

// buildMu serializes writers so a partially built snapshot is never published.
var buildMu sync.Mutex

// st is the current snapshot.
var st atomic.Pointer[state]

// state is an immutable snapshot of the global dispatch setup. Writers copy
// it, change the copy and swap it in.
type state struct {
	cfg  apis.Config
	ext  any
	reg  apis.Registry
	prov apis.Provider
	bld  apis.Builder
	mws  []apis.Middleware
	log  logr.Logger
	// disp is derived from the fields above on publish.
	disp *dispatcher.Dispatcher
	// preg and pprov mark layers installed by hand; builders leave them alone.
	preg  bool
	pprov bool
}

func (s *state) dispatcher() *dispatcher.Dispatcher {
	return dispatcher.New(s.prov,
		dispatcher.WithConfig(s.cfg),
		dispatcher.WithMiddleware(s.mws...),
		dispatcher.WithLogger(s.log),
	)
}
