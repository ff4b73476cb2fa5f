// Package order models a card order: an ordered list of slots, each
// referencing a front image resource and an optional back image resource.
package order

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Slot is one position in the card order. Back may be nil, in which case the
// order's default back resource is used.
type Slot struct {
	Index int     `yaml:"index"`
	Front string  `yaml:"front"`
	Back  *string `yaml:"back,omitempty"`
}

// CardOrder is an ordered collection of slots plus the shared default back.
type CardOrder struct {
	Name        string `yaml:"name"`
	DefaultBack string `yaml:"default_back"`
	Slots       []Slot `yaml:"slots"`
}

// Load reads a card order from a YAML file.
func Load(path string) (*CardOrder, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided order file
	if err != nil {
		return nil, fmt.Errorf("could not read order file: %w", err)
	}

	var o CardOrder
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("could not parse order file: %w", err)
	}

	return &o, nil
}
