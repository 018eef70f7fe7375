package policy

import (
	"strings"
	"sync"
)

// Registry holds naming rules in evaluation order
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
	order []string // evaluation order
}

// NewRegistry creates a new empty Registry
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]Rule),
		order: make([]string, 0),
	}
}

// Register adds a rule to the end of the evaluation order
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := rule.ID()
	if _, exists := r.rules[id]; !exists {
		r.order = append(r.order, id)
	}
	r.rules[id] = rule
}

// Get returns a rule by ID
func (r *Registry) Get(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[id]
	return rule, ok
}

// All returns all registered rules in evaluation order
func (r *Registry) All() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.rules[id])
	}
	return result
}

// IDs returns all rule IDs in evaluation order
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, len(r.order))
	copy(result, r.order)
	return result
}

// GetByName returns a rule by its human-readable name
func (r *Registry) GetByName(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rule := range r.rules {
		if rule.Name() == name {
			return rule, true
		}
	}
	return nil, false
}

// Lookup returns a rule by ID (case-insensitive) or name
func (r *Registry) Lookup(idOrName string) (Rule, bool) {
	if rule, ok := r.Get(strings.ToUpper(idOrName)); ok {
		return rule, true
	}
	return r.GetByName(idOrName)
}

// DefaultRegistry holds the built-in rules, first match wins:
// existence is checked before the length and parent rules.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&AlreadyExists{})
	r.Register(&TopLevelTooShort{})
	r.Register(&ParentMissing{})
	return r
}

// IsKnownRule reports whether the default registry has a rule with this ID or name
func IsKnownRule(idOrName string) bool {
	_, ok := DefaultRegistry.Lookup(idOrName)
	return ok
}
