// Package admin exposes the declarative resource definitions behind the
// admin panel: per-entity field lists with types, validation rules and
// select options, consumed by a generic form/table renderer.
package admin

// Field describes one form field of a resource.
type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"` // "text", "textarea", "email", "url", "number", "select", "boolean", "date", "time", "password"
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	MaxLen   int      `json:"max_length,omitempty"`
	Sortable bool     `json:"sortable,omitempty"`
	ReadOnly bool     `json:"read_only,omitempty"`
}

// Resource is one admin-panel entity definition.
type Resource struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"` // attribute used to label a record
	Searchable []string `json:"searchable"`
	Fields     []Field  `json:"fields"`
}

// Lookup returns the resource definition registered under name.
func Lookup(name string) (Resource, bool) {
	for _, r := range registry {
		if r.Name == name {
			return r, true
		}
	}
	return Resource{}, false
}

// Resources lists every registered resource definition.
func Resources() []Resource {
	out := make([]Resource, len(registry))
	copy(out, registry)
	return out
}
