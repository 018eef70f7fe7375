package policy

import "github.com/jokarl/nearacct/internal/types"

// RuleDoc contains documentation for a rule
type RuleDoc struct {
	ID          string
	Name        string
	Kind        types.ViolationKind
	Description string
	Example     string
	Remediation string
}

// Documentable is implemented by rules that provide documentation
type Documentable interface {
	Documentation() *RuleDoc
}

// GetDocumentation returns the documentation for a rule ID or name if available
func GetDocumentation(idOrName string) *RuleDoc {
	r, ok := DefaultRegistry.Lookup(idOrName)
	if !ok {
		return nil
	}

	if doc, ok := r.(Documentable); ok {
		return doc.Documentation()
	}

	return &RuleDoc{
		ID:          r.ID(),
		Name:        r.Name(),
		Kind:        r.Kind(),
		Description: r.Description(),
	}
}
