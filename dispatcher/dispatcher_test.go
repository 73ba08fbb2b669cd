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

package dispatcher_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/ddx/apis"
	"dirpx.dev/ddx/config"
	"dirpx.dev/ddx/dispatcher"
	"dirpx.dev/ddx/registry"
	"dirpx.dev/ddx/resolver"
	"dirpx.dev/ddx/strategy"
)

type Dog struct{ Name string }

type Cat struct{}

type byName struct{}

func (byName) DispatchByTypeName() {}

type Human struct{ byName }

type Unconfigured struct{}

type fixture struct {
	reg apis.Registry
	d   *dispatcher.Dispatcher
}

func newFixture(t *testing.T, opts ...dispatcher.Option) fixture {
	t.Helper()

	cfg := config.DefaultConfig()
	reg := registry.New(cfg)
	require.NoError(t, reg.Register(reflect.TypeOf(Dog{}), "dog"))
	prov := strategy.NewProvider(
		strategy.NewRegistryStrategy(reg),
		strategy.NewDeclaredStrategy(),
		strategy.NewDerivedStrategy(),
	)
	return fixture{reg: reg, d: dispatcher.New(prov, append([]dispatcher.Option{dispatcher.WithConfig(cfg)}, opts...)...)}
}

func animalResolver() *resolver.Map {
	return resolver.New().
		Handle("perform_for_dog", func(obj any, args ...any) (any, error) {
			if args == nil {
				args = []any{}
			}
			return []any{obj, args}, nil
		}).
		Handle("perform_for_not_a_dog", func(any, ...any) (any, error) {
			return "Not a dog", nil
		}).
		Handle("test_for_human", func(any, ...any) (any, error) {
			return true, nil
		})
}

func TestDispatch_NoExtraArgs(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	dog := &Dog{Name: "rex"}

	got, err := f.d.Dispatch(dog, "perform_for", animalResolver())
	require.NoError(t, err)
	assert.Equal(t, []any{dog, []any{}}, got)
}

func TestDispatch_ExtraArgsKeepOrder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	dog := &Dog{Name: "rex"}

	got, err := f.d.Dispatch(dog, "perform_for", animalResolver(), 2, "other")
	require.NoError(t, err)
	assert.Equal(t, []any{dog, []any{2, "other"}}, got)
}

func TestDispatch_HandlerReceivesExactArguments(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	dog := Dog{Name: "rex"}

	var gotObj any
	var gotArgs []any
	calls := 0
	res := resolver.New().Handle("op_dog", func(obj any, args ...any) (any, error) {
		calls++
		gotObj, gotArgs = obj, args
		return nil, nil
	})

	_, err := f.d.Dispatch(dog, "op", res)
	require.NoError(t, err)
	assert.Equal(t, dog, gotObj)
	assert.Len(t, gotArgs, 0)

	_, err = f.d.Dispatch(dog, "op", res, 3, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []any{3, 1, 2}, gotArgs)
	assert.Equal(t, 2, calls)
}

func TestDispatch_Reregistration(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	res := animalResolver()
	require.NoError(t, f.reg.Register(reflect.TypeOf(Cat{}), "cat"))

	require.NoError(t, f.reg.Register(reflect.TypeOf(Dog{}), "not_a_dog"))
	got, err := f.d.Dispatch(Dog{}, "perform_for", res)
	require.NoError(t, err)
	assert.Equal(t, "Not a dog", got)

	name, err := f.d.MethodName(Cat{}, "perform_for")
	require.NoError(t, err)
	assert.Equal(t, "perform_for_cat", name, "other variants keep their identifier")

	require.NoError(t, f.reg.Register(reflect.TypeOf(Dog{}), "dog"))
	got, err = f.d.Dispatch(Dog{}, "perform_for", res)
	require.NoError(t, err)
	assert.Equal(t, []any{Dog{}, []any{}}, got)
}

func TestDispatch_DerivedIdentifier(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	got, err := f.d.Dispatch(Human{}, "test_for", animalResolver())
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestDispatch_ConfigurationError(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	got, err := f.d.Dispatch(Unconfigured{}, "please_fail", animalResolver())
	require.ErrorIs(t, err, apis.ErrConfiguration)
	assert.Nil(t, got)

	var cerr *apis.ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "dispatcher_test.Unconfigured", cerr.Variant)

	// The resolver is never consulted, even a nil one.
	_, err = f.d.Dispatch(Unconfigured{}, "please_fail", nil)
	require.ErrorIs(t, err, apis.ErrConfiguration)
}

func TestDispatch_MethodNotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.d.Dispatch(Dog{}, "wash", animalResolver())
	require.ErrorIs(t, err, apis.ErrMethodNotFound)

	var merr *apis.MethodNotFoundError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, "wash_dog", merr.Method)
	assert.Equal(t, "*resolver.Map", merr.Resolver)

	_, err = f.d.Dispatch(Dog{}, "perform_for", nil)
	require.ErrorIs(t, err, apis.ErrMethodNotFound)
}

func TestDispatch_HandlerErrorPassesThrough(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := newFixture(t, dispatcher.WithMiddleware(func(ctx context.Context, c *apis.Call, next apis.Invocation) (any, error) {
		return next(ctx, c)
	}))
	res := resolver.New().Handle("op_dog", func(any, ...any) (any, error) { return "partial", boom })

	got, err := f.d.Dispatch(Dog{}, "op", res)
	assert.Same(t, boom, err)
	assert.Equal(t, "partial", got)
}

func TestDispatch_CustomSeparator(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig(config.WithSeparator("."))
	reg := registry.New(cfg)
	require.NoError(t, reg.Register(reflect.TypeOf(Dog{}), "dog"))
	d := dispatcher.New(strategy.NewProvider(strategy.NewRegistryStrategy(reg)), dispatcher.WithConfig(cfg))

	res := resolver.New().Handle("bark.dog", func(any, ...any) (any, error) { return "woof", nil })
	got, err := d.Dispatch(&Dog{}, "bark", res)
	require.NoError(t, err)
	assert.Equal(t, "woof", got)
}

func TestDispatch_NilProvider(t *testing.T) {
	t.Parallel()

	d := dispatcher.New(nil)
	_, err := d.Dispatch(Dog{}, "op", animalResolver())
	require.ErrorIs(t, err, dispatcher.ErrNilProvider)
}

func TestDispatch_MiddlewareOrderAndCall(t *testing.T) {
	t.Parallel()

	var trail []string
	var seen *apis.Call
	mw := func(name string) apis.Middleware {
		return func(ctx context.Context, c *apis.Call, next apis.Invocation) (any, error) {
			trail = append(trail, name+">")
			seen = c
			out, err := next(ctx, c)
			trail = append(trail, "<"+name)
			return out, err
		}
	}
	f := newFixture(t, dispatcher.WithMiddleware(mw("outer"), nil, mw("inner")))

	res := resolver.New().Handle("op_dog", func(any, ...any) (any, error) {
		trail = append(trail, "handler")
		return 42, nil
	})

	got, err := f.d.DispatchContext(context.Background(), &Dog{}, "op", res, "a")
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, []string{"outer>", "inner>", "handler", "<inner", "<outer"}, trail)

	require.NotNil(t, seen)
	assert.Equal(t, "op", seen.Operation)
	assert.Equal(t, "dog", seen.Identifier)
	assert.Equal(t, "op_dog", seen.Method)
	assert.Equal(t, "dispatcher_test.Dog", seen.Variant)
	assert.Equal(t, "*resolver.Map", seen.Resolver)
	assert.Equal(t, []any{"a"}, seen.Args)
	assert.NotEqual(t, [16]byte{}, [16]byte(seen.ID))
}

func TestDispatch_FromMethodsResolver(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	res, err := resolver.FromMethods(methodResolver{})
	require.NoError(t, err)

	got, err := f.d.Dispatch(Human{}, "test_for", res)
	require.NoError(t, err)
	assert.Equal(t, true, got)

	got, err = f.d.Dispatch(Dog{Name: "rex"}, "greet", res, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello rex", got)
}

type methodResolver struct{}

func (methodResolver) TestForHuman(Human) bool { return true }

func (methodResolver) GreetDog(d Dog, greeting string) string { return greeting + " " + d.Name }
