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

// Package dispatcher performs double dispatch: it resolves the dispatch
// identifier of an object's variant, composes "<operation><sep><identifier>"
// and invokes that handler on a resolver with the object followed by the
// caller's extra arguments.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"dirpx.dev/ddx/apis"
	"dirpx.dev/ddx/config"
	uref "dirpx.dev/ddx/utils/reflect"
)

// ErrNilProvider is returned when a Dispatcher has no identifier provider.
var ErrNilProvider = errors.New("ddx(dispatcher): nil provider")

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConfig sets the configuration passed to the provider and used for
// composing handler names. An empty separator falls back to the default.
func WithConfig(cfg apis.Config) Option {
	return func(d *Dispatcher) {
		if cfg.Separator == "" {
			cfg.Separator = config.DefaultSeparator
		}
		d.cfg = cfg
	}
}

// WithMiddleware appends middleware. The first one is the outermost.
func WithMiddleware(mws ...apis.Middleware) Option {
	return func(d *Dispatcher) {
		for _, mw := range mws {
			if mw != nil {
				d.mws = append(d.mws, mw)
			}
		}
	}
}

// WithLogger sets the logger for dispatch failures. Defaults to logr.Discard().
func WithLogger(log logr.Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// Dispatcher is the stateless invoker. It is safe for concurrent use when
// its provider and the resolvers it is given are.
type Dispatcher struct {
	prov apis.Provider
	cfg  apis.Config
	mws  []apis.Middleware
	log  logr.Logger
}

// New returns a Dispatcher that identifies variants with p.
func New(p apis.Provider, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		prov: p,
		cfg:  config.DefaultConfig(),
		log:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Config returns the configuration in use.
func (d *Dispatcher) Config() apis.Config {
	return d.cfg
}

// Dispatch is DispatchContext with context.Background().
func (d *Dispatcher) Dispatch(obj any, op string, res apis.Resolver, args ...any) (any, error) {
	return d.DispatchContext(context.Background(), obj, op, res, args...)
}

// DispatchContext invokes the handler "<op><sep><id>" of res with (obj, args...),
// where id is the dispatch identifier of obj's variant. The handler's result
// and error are returned as is.
//
// It fails with *apis.ConfigurationError when obj's variant has no identifier
// and with *apis.MethodNotFoundError when res has no such handler. ctx is only
// seen by middleware.
func (d *Dispatcher) DispatchContext(ctx context.Context, obj any, op string, res apis.Resolver, args ...any) (any, error) {
	id, method, err := d.compose(obj, op)
	if err != nil {
		d.log.V(1).Info("dispatch identifier unresolved", "operation", op, "error", err.Error())
		return nil, err
	}

	var h apis.Handler
	ok := false
	if res != nil {
		h, ok = res.Lookup(method)
	}
	if !ok || h == nil {
		err := &apis.MethodNotFoundError{Method: method, Resolver: fmt.Sprintf("%T", res)}
		d.log.V(1).Info("dispatch handler missing", "method", method, "resolver", err.Resolver)
		return nil, err
	}

	if len(d.mws) == 0 {
		return h(obj, args...)
	}

	call := &apis.Call{
		ID:         uuid.New(),
		Operation:  op,
		Identifier: id,
		Method:     method,
		Variant:    variantName(obj, d.cfg),
		Resolver:   fmt.Sprintf("%T", res),
		Object:     obj,
		Args:       args,
	}
	return d.invoke(ctx, call, 0, func(context.Context, *apis.Call) (any, error) {
		return h(obj, args...)
	})
}

// MethodName returns the handler name obj would be dispatched to for op.
func (d *Dispatcher) MethodName(obj any, op string) (string, error) {
	_, method, err := d.compose(obj, op)
	return method, err
}

// compose resolves the identifier and builds the handler name.
func (d *Dispatcher) compose(obj any, op string) (id, method string, err error) {
	if d.prov == nil {
		return "", "", ErrNilProvider
	}
	id, err = d.prov.Identify(obj, d.cfg)
	if err != nil {
		return "", "", err
	}
	return id, op + d.cfg.Separator + id, nil
}

// invoke runs middleware i..n around final.
func (d *Dispatcher) invoke(ctx context.Context, call *apis.Call, i int, final apis.Invocation) (any, error) {
	if i == len(d.mws) {
		return final(ctx, call)
	}
	return d.mws[i](ctx, call, func(ctx context.Context, call *apis.Call) (any, error) {
		return d.invoke(ctx, call, i+1, final)
	})
}

func variantName(obj any, cfg apis.Config) string {
	t := reflect.TypeOf(obj)
	if base, err := uref.Normalize(t, cfg); err == nil {
		return uref.QualifiedName(base)
	}
	return uref.QualifiedName(t)
}
