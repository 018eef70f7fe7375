// Package netfilter selects configured networks by name using doublestar patterns.
package netfilter

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jokarl/nearacct/internal/types"
)

// Filter holds the include and exclude patterns for network selection
type Filter struct {
	include []string
	exclude []string
}

// New creates a new Filter with the given include and exclude patterns.
// An empty include list selects every network.
func New(include, exclude []string) *Filter {
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// DefaultFilter returns a filter that selects every network
func DefaultFilter() *Filter {
	return New([]string{"*"}, nil)
}

// Validate checks that every pattern is well formed
func (f *Filter) Validate() error {
	for _, pattern := range append(append([]string{}, f.include...), f.exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid network pattern: %q", pattern)
		}
	}
	return nil
}

// Match checks if a single network name matches the filter criteria
func (f *Filter) Match(name string) (bool, error) {
	included := len(f.include) == 0
	for _, pattern := range f.include {
		match, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, err
		}
		if match {
			included = true
			break
		}
	}

	if !included {
		return false, nil
	}

	for _, pattern := range f.exclude {
		match, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, err
		}
		if match {
			return false, nil
		}
	}

	return true, nil
}

// Select returns the networks that match, preserving their configured order
func (f *Filter) Select(networks []types.Network) ([]types.Network, error) {
	result := make([]types.Network, 0, len(networks))
	for _, n := range networks {
		match, err := f.Match(n.Name)
		if err != nil {
			return nil, err
		}
		if match {
			result = append(result, n)
		}
	}
	return result, nil
}
