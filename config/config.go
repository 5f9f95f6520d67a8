// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads [lazyjson.ParseOption] and [lazyjson.WriterOption]
// sets from a YAML document, for deployments that want limits and writer
// formatting configurable without a recompile (e.g. one limits file shared
// across a fleet of parser workers).
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/quantjson/lazyjson"
	"github.com/quantjson/lazyjson/internal/hash"
)

// LimitsConfig is the YAML shape of a [lazyjson.Limits] override. Zero
// fields are left at [lazyjson.DefaultLimits]'s value.
type LimitsConfig struct {
	MaxDepth         int `yaml:"max_depth"`
	MaxStringBytes   int `yaml:"max_string_bytes"`
	MaxNumberBytes   int `yaml:"max_number_bytes"`
	MaxArrayElements int `yaml:"max_array_elements"`
	MaxObjectFields  int `yaml:"max_object_fields"`
}

// WriterConfig is the YAML shape of [lazyjson.WriterOption] overrides.
type WriterConfig struct {
	Indent string `yaml:"indent"`
}

// Config is a loaded configuration document. [Load] does not validate its
// values beyond YAML decoding.
type Config struct {
	Limits LimitsConfig `yaml:"limits"`
	Writer WriterConfig `yaml:"writer"`

	fingerprint hash.Keyed128
}

// Fixed, process-local siphash key used only to fingerprint configuration
// documents for change detection; unrelated to the parser's own unkeyed
// field-name hash.
const (
	fingerprintKey0 = 0x6c617a796a736f6e
	fingerprintKey1 = 0x71756e746a736f6e
)

// Load parses a YAML configuration document.
func Load(data []byte) (*Config, error) {
	var raw struct {
		Limits LimitsConfig `yaml:"limits"`
		Writer WriterConfig `yaml:"writer"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parsing limits document: %w", err)
	}

	cfg := &Config{Limits: raw.Limits, Writer: raw.Writer}
	cfg.fingerprint = hash.FingerprintConfig(fingerprintKey0, fingerprintKey1, data)
	return cfg, nil
}

// Fingerprint returns a keyed fingerprint of the document this Config was
// loaded from, so a caller hot-reloading configuration on a timer can
// detect a no-op reload and skip rebuilding its option slices.
func (c *Config) Fingerprint() hash.Keyed128 { return c.fingerprint }

// ParseOptions builds the [lazyjson.ParseOption] slice described by c,
// starting from [lazyjson.DefaultLimits] and overriding only the fields c
// set.
func (c *Config) ParseOptions() []lazyjson.ParseOption {
	limits := lazyjson.DefaultLimits()
	if c.Limits.MaxDepth > 0 {
		limits.MaxDepth = c.Limits.MaxDepth
	}
	if c.Limits.MaxStringBytes > 0 {
		limits.MaxStringBytes = c.Limits.MaxStringBytes
	}
	if c.Limits.MaxNumberBytes > 0 {
		limits.MaxNumberBytes = c.Limits.MaxNumberBytes
	}
	if c.Limits.MaxArrayElements > 0 {
		limits.MaxArrayElements = c.Limits.MaxArrayElements
	}
	if c.Limits.MaxObjectFields > 0 {
		limits.MaxObjectFields = c.Limits.MaxObjectFields
	}
	return []lazyjson.ParseOption{lazyjson.WithLimits(limits)}
}

// WriterOptions builds the [lazyjson.WriterOption] slice described by c.
func (c *Config) WriterOptions() []lazyjson.WriterOption {
	var opts []lazyjson.WriterOption
	if c.Writer.Indent != "" {
		opts = append(opts, lazyjson.WithIndent(c.Writer.Indent))
	}
	return opts
}
