// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file. Zero values mean
// "not set" and leave the flag defaults in place.
type Config struct {
	Dim     int      `yaml:"dim"`
	Depth   int      `yaml:"depth"`
	Format  string   `yaml:"format"`
	Verbose bool     `yaml:"verbose"`
	Records []Record `yaml:"records"`
}

var errNotFinite = errors.New("not a finite number")

// Record is one data item to load into a store. Exactly one of Point
// and Address must be set. Data may be any YAML value; mappings are
// loaded with string keys so results can be written as JSON.
type Record struct {
	Point   []float64 `yaml:"point,omitempty"`
	Address string    `yaml:"address,omitempty"`
	Data    any       `yaml:"data"`
}

func (r *Record) validate() error {
	if len(r.Point) > 0 && r.Address != "" {
		return errors.New("record has both point and address")
	}
	if len(r.Point) == 0 && r.Address == "" {
		return errors.New("record has neither point nor address")
	}
	data, err := normalizeData(r.Data)
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	r.Data = data
	return nil
}

// normalizeData rewrites the map[interface{}]interface{} values yaml.v3
// produces for mappings with non-string keys as map[string]interface{},
// and rejects NaN and infinite numbers. Both would fail JSON encoding.
func normalizeData(v any) (any, error) {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			n, err := normalizeData(e)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			v[k] = n
		}
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			key := fmt.Sprint(k)
			if _, dup := m[key]; dup {
				return nil, fmt.Errorf("duplicate key %q", key)
			}
			n, err := normalizeData(e)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			m[key] = n
		}
		return m, nil
	case []any:
		for i, e := range v {
			n, err := normalizeData(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			v[i] = n
		}
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%v: %w", v, errNotFinite)
		}
	}
	return v, nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	for i := range c.Records {
		if err := c.Records[i].validate(); err != nil {
			return nil, fmt.Errorf("config %s: record %d: %w", path, i, err)
		}
	}
	return &c, nil
}

// LoadRecords reads a YAML file holding a list of records.
func LoadRecords(path string) ([]Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	var rs []Record
	if err := yaml.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("parsing records %s: %w", path, err)
	}
	for i := range rs {
		if err := rs[i].validate(); err != nil {
			return nil, fmt.Errorf("records %s: record %d: %w", path, i, err)
		}
	}
	return rs, nil
}
