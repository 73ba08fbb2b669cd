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
	"reflect"
	"testing"

	"dirpx.dev/ddx/apis"
	uref "dirpx.dev/ddx/utils/reflect"
)

type HotDog struct{}

func TestBaseName(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"plain", reflect.TypeOf(A{}), "A"},
		{"generic", reflect.TypeOf(G[int]{}), "G"},
		{"unnamed", reflect.TypeOf([]A{}), ""},
		{"nil", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uref.BaseName(tc.typ); got != tc.want {
				t.Fatalf("BaseName(%v) = %q, want %q", tc.typ, got, tc.want)
			}
		})
	}
}

func TestQualifiedName(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"user type", reflect.TypeOf(A{}), "reflect_test.A"},
		{"generic", reflect.TypeOf(G[string]{}), "reflect_test.G"},
		{"builtin", reflect.TypeOf(0), "int"},
		{"unnamed", reflect.TypeOf([]int{}), "[]int"},
		{"nil", nil, "<nil>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uref.QualifiedName(tc.typ); got != tc.want {
				t.Fatalf("QualifiedName(%v) = %q, want %q", tc.typ, got, tc.want)
			}
		})
	}
}

func TestDerive(t *testing.T) {
	cases := []struct {
		in     string
		naming apis.Naming
		want   string
	}{
		{"Human", apis.NamingLower, "human"},
		{"HotDog", apis.NamingLower, "hotdog"},
		{"HotDog", apis.NamingSnake, "hot_dog"},
		{"HotDog", apis.NamingExact, "HotDog"},
		{"Human", "", "human"},
	}
	for _, tc := range cases {
		t.Run(tc.in+"/"+string(tc.naming), func(t *testing.T) {
			if got := uref.Derive(tc.in, tc.naming); got != tc.want {
				t.Fatalf("Derive(%q,%q) = %q, want %q", tc.in, tc.naming, got, tc.want)
			}
		})
	}
	// Derive is fed from BaseName in practice.
	if got := uref.Derive(uref.BaseName(reflect.TypeOf(HotDog{})), apis.NamingSnake); got != "hot_dog" {
		t.Fatalf("Derive(BaseName(HotDog)) = %q, want hot_dog", got)
	}
}
