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

package reflect_test

import (
	"errors"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/ddx/apis"
	uref "dirpx.dev/ddx/utils/reflect"
)

// Local test types.
type A struct{}
type G[T any] struct{}
type PA *A

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{
		Separator: "_",
		Naming:    apis.NamingLower,
		MaxUnwrap: 8,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func TestNormalize_Pointers(t *testing.T) {
	conf := cfg()

	type PP = **A

	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"plain", reflect.TypeOf(A{}), reflect.TypeOf(A{})},
		{"ptr", reflect.TypeOf(&A{}), reflect.TypeOf(A{})},
		{"ptr ptr", reflect.TypeOf((*PP)(nil)).Elem(), reflect.TypeOf(A{})},
		{"generic", reflect.TypeOf(&G[int]{}), reflect.TypeOf(G[int]{})},
		{"builtin", reflect.TypeOf(0), reflect.TypeOf(0)},
		{"named pointer kept", reflect.TypeOf(PA(nil)), reflect.TypeOf(PA(nil))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ, conf)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestNormalize_NotNamed(t *testing.T) {
	conf := cfg()

	cases := []struct {
		name string
		typ  reflect.Type
	}{
		{"anonymous struct", reflect.TypeOf(struct{}{})},
		{"slice", reflect.TypeOf([]A{})},
		{"map", reflect.TypeOf(map[string]A{})},
		{"func", reflect.TypeOf(func() {})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uref.Normalize(tc.typ, conf); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
				t.Fatalf("Normalize(%v): want ErrReflectTypeNotNamed, got %v", tc.typ, err)
			}
		})
	}
}

func TestNormalize_Nil(t *testing.T) {
	if _, err := uref.Normalize(nil, cfg()); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("Normalize(nil): want ErrReflectNilType, got %v", err)
	}
}

func TestNormalize_MaxUnwrap(t *testing.T) {
	type PPP = ***A
	tt := reflect.TypeOf((*PPP)(nil)).Elem()

	if _, err := uref.Normalize(tt, cfg(func(c *apis.Config) { c.MaxUnwrap = 2 })); err == nil {
		t.Fatal("MaxUnwrap=2: expected error for ***A")
	}
	got, err := uref.Normalize(tt, cfg(func(c *apis.Config) { c.MaxUnwrap = 3 }))
	if err != nil || got != reflect.TypeOf(A{}) {
		t.Fatalf("MaxUnwrap=3: got (%v,%v), want (A,nil)", got, err)
	}
	// Zero falls back to the default depth.
	got, err = uref.Normalize(tt, cfg(func(c *apis.Config) { c.MaxUnwrap = 0 }))
	if err != nil || got != reflect.TypeOf(A{}) {
		t.Fatalf("MaxUnwrap=0: got (%v,%v), want (A,nil)", got, err)
	}
}

func TestNormalize_Concurrent(t *testing.T) {
	conf := cfg()
	types := []reflect.Type{reflect.TypeOf(A{}), reflect.TypeOf(&A{}), reflect.TypeOf(G[int]{})}
	want := []reflect.Type{reflect.TypeOf(A{}), reflect.TypeOf(A{}), reflect.TypeOf(G[int]{})}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				idx := i % len(types)
				got, err := uref.Normalize(types[idx], conf)
				if err != nil || got != want[idx] {
					t.Errorf("Normalize(%v) = (%v,%v)", types[idx], got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
