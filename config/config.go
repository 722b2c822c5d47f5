// SPDX-License-Identifier: GPL-2.0-or-later

// Package config applies YAML files and command line overrides to the
// registered cvars. Precedence is defaults < file < overrides.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"goball/cvar"
	"goball/cvars"
)

// File is the on-disk layout.
type File struct {
	Cvars   map[string]yaml.Node `yaml:"cvars,omitempty"`
	Logging *Logging             `yaml:"logging,omitempty"`
}

// Logging is a friendlier spelling of the log_* cvars.
type Logging struct {
	Level   string `yaml:"level,omitempty"`
	File    string `yaml:"file,omitempty"`
	MaxSize int    `yaml:"max_size,omitempty"`
}

// Load reads the YAML file at path and applies it.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	if err := Apply(data); err != nil {
		return errors.Wrapf(err, "config %s", path)
	}
	return nil
}

// Apply decodes a YAML document and sets the cvars it names. Unknown
// keys and unknown cvars are errors.
func Apply(data []byte) error {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil
		}
		return errors.Wrap(err, "decoding")
	}

	if lg := f.Logging; lg != nil {
		if lg.Level != "" {
			cvars.LogLevel.SetByString(lg.Level)
		}
		if lg.File != "" {
			cvars.LogFile.SetByString(lg.File)
		}
		if lg.MaxSize > 0 {
			cvars.LogMaxSize.SetValue(float32(lg.MaxSize))
		}
	}

	names := make([]string, 0, len(f.Cvars))
	for n := range f.Cvars {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		node := f.Cvars[n]
		if node.Kind != yaml.ScalarNode {
			return errors.Errorf("cvar %q: line %d: value is not a scalar", n, node.Line)
		}
		if err := cvar.Set(n, node.Value); err != nil {
			return errors.Wrapf(err, "line %d", node.Line)
		}
	}
	return nil
}

// Override applies name=value assignments as given on the command
// line.
func Override(sets []string) error {
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return errors.Errorf("override %q: want name=value", s)
		}
		if err := cvar.Set(strings.TrimSpace(name), strings.TrimSpace(value)); err != nil {
			return errors.Wrap(err, "override")
		}
	}
	return nil
}

// Save writes all archived cvars to path.
func Save(path string) error {
	f := File{Cvars: make(map[string]yaml.Node)}
	for _, cv := range cvar.All() {
		if !cv.Archive() {
			continue
		}
		var n yaml.Node
		n.SetString(cv.String())
		if _, err := strconv.ParseFloat(cv.String(), 32); err == nil {
			n.Tag = "!!float"
			if _, err := strconv.Atoi(cv.String()); err == nil {
				n.Tag = "!!int"
			}
		}
		f.Cvars[cv.Name()] = n
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "creating config dir")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "writing config")
	}
	return nil
}
