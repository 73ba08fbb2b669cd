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

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mstoykov/envconfig"
	"gopkg.in/yaml.v3"

	"dirpx.dev/ddx/apis"
)

// Load reads a YAML document from r on top of DefaultConfig.
// Keys that are absent keep their default value. An empty document yields
// the default configuration.
//
//	separator: "_"
//	naming: snake
//	max_unwrap: 4
//	derive_all: false
func Load(r io.Reader) (apis.Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return apis.Config{}, fmt.Errorf("ddx(config): decode: %w", err)
	}
	return finish(cfg)
}

// LoadFile is Load for a file on disk.
func LoadFile(path string) (apis.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("ddx(config): %w", err)
	}
	defer f.Close()
	return Load(f)
}

// FromEnv overlays DDX_SEPARATOR, DDX_NAMING, DDX_MAX_UNWRAP and DDX_DERIVE_ALL
// on top of base. Unset variables keep the value from base.
// lookup replaces os.LookupEnv when non-nil.
func FromEnv(base apis.Config, lookup func(key string) (string, bool)) (apis.Config, error) {
	cfg := base
	var err error
	if lookup != nil {
		err = envconfig.Process("", &cfg, lookup)
	} else {
		err = envconfig.Process("", &cfg)
	}
	if err != nil {
		return apis.Config{}, fmt.Errorf("ddx(config): env: %w", err)
	}
	return finish(cfg)
}

// finish canonicalizes the naming style of a decoded cfg and validates it.
func finish(cfg apis.Config) (apis.Config, error) {
	n, err := ParseNaming(string(cfg.Naming))
	if err != nil {
		return apis.Config{}, err
	}
	cfg.Naming = n
	if err := Validate(cfg); err != nil {
		return apis.Config{}, err
	}
	return cfg, nil
}
