package normalize

import (
	"encoding/json"
	"sync"

	"github.com/variantkit/enumlabel"
)

// Binding ties one JSON field name to an enum type registered with the
// enumlabel package. Construct bindings with Field.
type Binding struct {
	field string
	canon func(raw string) (string, bool)
}

// Field returns a Binding that normalizes the named field against the
// registered labels of E. The enum type is captured at binding time; its
// members are looked up at normalization time, so Field may be called before
// the type is registered.
func Field[E enumlabel.Ordinal](name string) Binding {
	return Binding{
		field: name,
		canon: func(raw string) (string, bool) {
			m, err := enumlabel.ParseFold[E](raw)
			if err != nil {
				return "", false
			}
			return enumlabel.Label(m)
		},
	}
}

// bindings is the global binding table: document kind -> field name -> Binding.
var (
	bindings = make(map[string]map[string]Binding)
	mu       sync.RWMutex
)

// Bind registers field bindings for a document kind.
// kind: the name of the document kind (e.g., "palette")
// fields: the bound fields, built with Field.
// Binding the same field again for a kind replaces the previous binding.
func Bind(kind string, fields ...Binding) {
	mu.Lock()
	defer mu.Unlock()

	if bindings[kind] == nil {
		bindings[kind] = make(map[string]Binding)
	}
	for _, b := range fields {
		bindings[kind][b.field] = b
	}
}

// Document applies the kind's bindings to a JSON document, returning the
// document with each bound field rewritten to its canonical label.
// If any error occurs, or a value matches no registered label, the affected
// input is returned or passed through unchanged.
func Document(kind, inputJSON string) string {
	mu.RLock()
	kindBindings, exists := bindings[kind]
	mu.RUnlock()

	// No bindings for this kind, return unchanged
	if !exists || len(kindBindings) == 0 {
		return inputJSON
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(inputJSON), &data); err != nil {
		// Return original if parsing fails
		return inputJSON
	}

	mu.RLock()
	for name, b := range kindBindings {
		value, ok := data[name]
		if !ok {
			continue
		}

		// Skip non-string values
		raw, ok := value.(string)
		if !ok {
			continue
		}

		if label, found := b.canon(raw); found {
			data[name] = label
		}
	}
	mu.RUnlock()

	normalized, err := json.Marshal(data)
	if err != nil {
		// Return original if serialization fails
		return inputJSON
	}

	return string(normalized)
}

// Fields returns the names of the bound fields for a document kind.
// Returns nil if the kind has no bindings.
func Fields(kind string) []string {
	mu.RLock()
	defer mu.RUnlock()

	kindBindings, exists := bindings[kind]
	if !exists {
		return nil
	}

	out := make([]string, 0, len(kindBindings))
	for name := range kindBindings {
		out = append(out, name)
	}
	return out
}

// Clear resets the entire binding table.
// This is primarily useful for testing.
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	bindings = make(map[string]map[string]Binding)
}
