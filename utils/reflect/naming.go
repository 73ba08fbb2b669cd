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

package reflect

import (
	"path"
	"reflect"
	"strings"

	"github.com/serenize/snaker"

	"dirpx.dev/ddx/apis"
)

// BaseName returns the unqualified name of t with generic instantiation
// parameters stripped: "pkg.Box[int]" -> "Box".
func BaseName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return stripTypeParams(t.Name())
}

// QualifiedName returns "pkg.Type" for diagnostics, "<nil>" for a nil type,
// and t.String() for unnamed or builtin types.
func QualifiedName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	name := BaseName(t)
	if name == "" {
		return t.String()
	}
	if p := t.PkgPath(); p != "" {
		return path.Base(p) + "." + name
	}
	return name
}

// Derive converts an unqualified type name into a dispatch identifier.
// Unknown naming styles fall back to apis.NamingLower.
func Derive(name string, naming apis.Naming) string {
	switch naming {
	case apis.NamingExact:
		return name
	case apis.NamingSnake:
		return snaker.CamelToSnake(name)
	default:
		return strings.ToLower(name)
	}
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
