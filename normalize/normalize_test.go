package normalize

import (
	"encoding/json"
	"sort"
	"sync"
	"testing"

	"github.com/variantkit/enumlabel"
)

type color int

const (
	colorRed color = iota
	colorGreen
	colorBlue
)

type severity int

const (
	severityLow severity = iota
	severityHigh
)

func setup(t *testing.T) {
	t.Helper()
	Clear()
	enumlabel.Clear()
	enumlabel.MustRegister(
		enumlabel.Labeled(colorRed, "red"),
		enumlabel.Labeled(colorGreen, "green"),
		enumlabel.Unlabeled(colorBlue),
	)
	enumlabel.MustRegister(
		enumlabel.Labeled(severityLow, "low"),
		enumlabel.Labeled(severityHigh, "high"),
	)
}

func TestDocument(t *testing.T) {
	setup(t)

	Bind("palette",
		Field[color]("background"),
		Field[color]("foreground"),
	)

	input := `{"background": "RED", "foreground": "Green", "name": "warm"}`
	result := Document("palette", input)

	var data map[string]any
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}

	if got := data["background"]; got != "red" {
		t.Errorf("background = %v, want 'red'", got)
	}
	if got := data["foreground"]; got != "green" {
		t.Errorf("foreground = %v, want 'green'", got)
	}
	if got := data["name"]; got != "warm" {
		t.Errorf("unbound field changed: name = %v, want 'warm'", got)
	}
}

func TestDocumentMultipleKinds(t *testing.T) {
	setup(t)

	Bind("palette", Field[color]("background"))
	Bind("alert", Field[severity]("level"))

	result := Document("alert", `{"level": "HIGH"}`)

	var data map[string]any
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if got := data["level"]; got != "high" {
		t.Errorf("level = %v, want 'high'", got)
	}

	// The palette bindings must not apply to alert documents.
	result = Document("alert", `{"background": "RED"}`)
	var other map[string]any
	if err := json.Unmarshal([]byte(result), &other); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if got := other["background"]; got != "RED" {
		t.Errorf("background = %v, want unchanged 'RED'", got)
	}
}

func TestDocumentPassThrough(t *testing.T) {
	setup(t)

	Bind("palette", Field[color]("background"))

	tests := []struct {
		name  string
		kind  string
		input string
	}{
		{
			name:  "unknown kind",
			kind:  "unknown",
			input: `{"background": "RED"}`,
		},
		{
			name:  "label matches no member",
			kind:  "palette",
			input: `{"background": "teal"}`,
		},
		{
			name:  "non-string value",
			kind:  "palette",
			input: `{"background": 3}`,
		},
		{
			name:  "bound field absent",
			kind:  "palette",
			input: `{"name": "warm"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Document(tt.kind, tt.input)

			var want, got map[string]any
			if err := json.Unmarshal([]byte(tt.input), &want); err != nil {
				t.Fatalf("bad test input: %v", err)
			}
			if err := json.Unmarshal([]byte(result), &got); err != nil {
				t.Fatalf("result is not valid JSON: %v", err)
			}
			for k, v := range want {
				if got[k] != v {
					t.Errorf("field %q = %v, want unchanged %v", k, got[k], v)
				}
			}
		})
	}
}

func TestDocumentInvalidJSON(t *testing.T) {
	setup(t)

	Bind("palette", Field[color]("background"))

	inputs := []string{
		`{invalid json`,
		``,
		`[1, 2, 3]`,
		`"just a string"`,
	}

	for _, input := range inputs {
		if result := Document("palette", input); result != input {
			t.Errorf("Document(%q) = %q, want input unchanged", input, result)
		}
	}
}

func TestDocumentUnregisteredEnum(t *testing.T) {
	setup(t)

	// Binding happens before registration is checked; an unregistered enum
	// type simply never matches, leaving values unchanged.
	enumlabel.Clear()
	Bind("palette", Field[color]("background"))

	input := `{"background": "red"}`
	result := Document("palette", input)

	var data map[string]any
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if got := data["background"]; got != "red" {
		t.Errorf("background = %v, want unchanged 'red'", got)
	}
}

func TestFields(t *testing.T) {
	setup(t)

	Bind("palette",
		Field[color]("background"),
		Field[color]("foreground"),
	)

	fields := Fields("palette")
	sort.Strings(fields)
	if len(fields) != 2 || fields[0] != "background" || fields[1] != "foreground" {
		t.Errorf("Fields = %v, want [background foreground]", fields)
	}

	if got := Fields("unknown"); got != nil {
		t.Errorf("Fields for unknown kind = %v, want nil", got)
	}
}

func TestClear(t *testing.T) {
	setup(t)

	Bind("palette", Field[color]("background"))
	Clear()

	input := `{"background": "RED"}`
	if result := Document("palette", input); result != input {
		t.Errorf("Document after Clear = %q, want input unchanged", result)
	}
	if got := Fields("palette"); got != nil {
		t.Errorf("Fields after Clear = %v, want nil", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	setup(t)

	Bind("palette", Field[color]("background"))

	const goroutines = 10
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				result := Document("palette", `{"background": "RED"}`)
				if result == "" {
					t.Error("Document returned empty string under concurrency")
					return
				}
			}
		}()

		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				Bind("alert", Field[severity]("level"))
			}
		}()
	}

	wg.Wait()
}
