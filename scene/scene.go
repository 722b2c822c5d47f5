// SPDX-License-Identifier: GPL-2.0-or-later

// Package scene holds the built-in levels, in registration order.
package scene

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/pkg/errors"

	"goball/solid"
)

type Scene struct {
	Name        string
	Description string
	// Build creates a fresh level. Ball 0 is the one being simulated.
	Build func() (*solid.Level, error)
}

var registry = orderedmap.NewOrderedMap[string, Scene]()

func Register(s Scene) error {
	if s.Name == "" || s.Build == nil {
		return errors.New("scene needs a name and a builder")
	}
	if _, ok := registry.Get(s.Name); ok {
		return errors.Errorf("scene %q already registered", s.Name)
	}
	registry.Set(s.Name, s)
	return nil
}

func mustRegister(s Scene) {
	if err := Register(s); err != nil {
		panic(err)
	}
}

func Get(name string) (Scene, bool) {
	return registry.Get(name)
}

// Load builds the scene called name.
func Load(name string) (*solid.Level, error) {
	s, ok := Get(name)
	if !ok {
		return nil, errors.Errorf("unknown scene %q", name)
	}
	l, err := s.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", name)
	}
	return l, nil
}

func All() []Scene {
	scenes := make([]Scene, 0, registry.Len())
	for el := registry.Front(); el != nil; el = el.Next() {
		scenes = append(scenes, el.Value)
	}
	return scenes
}
