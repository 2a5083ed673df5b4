// Package enumlabel associates string labels with enumeration members and
// converts between them.
//
// Go has no enum metadata: a defined integer type and a block of constants
// carry no attached strings. This package fills that gap with an explicit,
// process-wide registry. An enum type registers its members once, in
// declaration order, each with an optional label; afterwards callers can look
// up the label for a member, parse a label back into a member
// (case-sensitively or not), and validate raw integers into members.
//
// # Registration
//
// Register members in declaration order, typically from an init function:
//
//	type Color int
//
//	const (
//		ColorRed Color = iota
//		ColorGreen
//		ColorBlue
//	)
//
//	func init() {
//		enumlabel.MustRegister(
//			enumlabel.Labeled(ColorRed, "red"),
//			enumlabel.Labeled(ColorGreen, "green"),
//			enumlabel.Unlabeled(ColorBlue),
//		)
//	}
//
// A label is any string, including the empty string; a member registered with
// Unlabeled has no label at all, which is distinct from an empty one.
// Registering a type again replaces its previous registration.
//
// # Lookup and parsing
//
//	label, ok := enumlabel.Label(ColorRed)        // "red", true
//	_, ok = enumlabel.Label(ColorBlue)            // "", false
//
//	c, err := enumlabel.Parse[Color]("red")       // ColorRed
//	c, err = enumlabel.ParseFold[Color]("RED")    // ColorRed, case-insensitive
//	c, err = enumlabel.FromOrdinal[Color](2)      // ColorBlue
//
// When two members share a label, parsing returns the first one in
// registration order. A label that matches no member is a NotFound error, not
// a zero value: check with errors.Is against ErrUnknownLabel.
//
// # Errors
//
// All failures are *Error values that wrap a sentinel error and carry the
// operation and an error kind. Use errors.Is for both:
//
//	_, err := enumlabel.Parse[Color]("teal")
//	errors.Is(err, enumlabel.ErrUnknownLabel) // true
//
// Looking up the label of a member that has none is not an error; Label
// reports absence through its second return value.
//
// # Thread safety
//
// The registry is guarded by a sync.RWMutex. Registration is expected at
// initialization time; after that every operation is a read and is safe to
// call concurrently without synchronization.
//
// # Wire formats
//
// The Value wrapper carries a registered enum by its label through JSON, YAML,
// and any text-based format, see Value. The normalize subpackage rewrites
// label aliases inside JSON documents to their canonical form.
package enumlabel
