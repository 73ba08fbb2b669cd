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

// Naming selects how a derived dispatch identifier is produced from a type name.
type Naming string

const (
	// NamingLower lower-cases the unqualified type name ("HotDog" -> "hotdog").
	NamingLower Naming = "lower"
	// NamingSnake converts the unqualified type name to snake case ("HotDog" -> "hot_dog").
	NamingSnake Naming = "snake"
	// NamingExact keeps the unqualified type name as is ("HotDog" -> "HotDog").
	NamingExact Naming = "exact"
)

// Config carries read-only dispatch knobs that influence strategies and the invoker.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Separator joins the operation prefix and the dispatch identifier
	// when composing a handler name ("perform_for" + "_" + "dog").
	Separator string `yaml:"separator" envconfig:"DDX_SEPARATOR"`

	// Naming controls how derived identifiers are computed from type names.
	Naming Naming `yaml:"naming" envconfig:"DDX_NAMING"`

	// MaxUnwrap limits pointer unwrapping depth when locating the variant
	// of a value (**Dog -> Dog). Acts as a safety guard.
	MaxUnwrap int `yaml:"max_unwrap" envconfig:"DDX_MAX_UNWRAP"`

	// DeriveAll makes every named type derive its identifier from its name,
	// even when it did not opt in. When false only opted-in variants derive.
	DeriveAll bool `yaml:"derive_all" envconfig:"DDX_DERIVE_ALL"`
}
