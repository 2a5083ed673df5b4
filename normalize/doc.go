// Package normalize rewrites enum labels inside JSON documents to their
// canonical form.
//
// Systems that accept JSON from users or other services often receive enum
// fields in whatever casing the sender chose: "Red", "RED", "red". This
// package binds document fields to enum types registered with the enumlabel
// package and rewrites each bound field to the canonical label, so the rest
// of the program only ever sees one spelling.
//
// # Usage
//
// Bind fields for a document kind, then normalize incoming documents:
//
//	normalize.Bind("palette",
//	    normalize.Field[Color]("background"),
//	    normalize.Field[Color]("foreground"),
//	)
//
//	input := `{"background": "RED", "name": "warm"}`
//	out := normalize.Document("palette", input)
//	// Result: {"background":"red","name":"warm"}
//
// # Thread Safety
//
// All operations are thread-safe and can be called concurrently from
// multiple goroutines. The binding table uses sync.RWMutex for efficient
// concurrent access.
//
// # Matching
//
// Field values are matched against labels case-insensitively; the output is
// always the exact label as registered with enumlabel.
//
// # Error Handling
//
// Document is designed to be fail-safe. Unknown document kinds, unbound
// fields, non-string values, labels matching no member, and invalid JSON all
// leave the input unchanged rather than producing an error. This ensures
// malformed input never breaks the caller's pipeline.
package normalize
