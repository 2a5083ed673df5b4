package enumlabel

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Value carries a registered enum member across text-based wire formats by
// its label. It implements fmt.Stringer, encoding.TextMarshaler and
// encoding.TextUnmarshaler (which encoding/json honors, so no separate JSON
// methods are needed), and the yaml.Marshaler and yaml.Unmarshaler
// interfaces from gopkg.in/yaml.v3.
//
//	type Config struct {
//		Mode enumlabel.Value[Color] `json:"mode" yaml:"mode"`
//	}
//
// Marshaling a member that has no label fails: a label is the only wire
// representation this wrapper knows. Unmarshaling uses strict, case-sensitive
// Parse semantics so that wire formats stay unambiguous.
type Value[E Ordinal] struct {
	Member E
}

// Wrap returns a Value carrying member.
func Wrap[E Ordinal](member E) Value[E] {
	return Value[E]{Member: member}
}

// String returns the member's label, or a Type(ordinal) placeholder when the
// member has none.
func (v Value[E]) String() string {
	if label, ok := Label(v.Member); ok {
		return label
	}
	return fmt.Sprintf("%s(%d)", reflect.TypeOf((*E)(nil)).Elem(), int64(v.Member))
}

// MarshalText implements encoding.TextMarshaler, emitting the member's label.
// It returns a KindInvalidOperation error wrapping ErrNoLabel when the member
// has no label attached, and a KindInvalidArgument error when the enum type
// has not been registered.
func (v Value[E]) MarshalText() ([]byte, error) {
	t := reflect.TypeOf((*E)(nil)).Elem()
	if !IsRegistered[E]() {
		return nil, errNotRegistered("Value.MarshalText", t)
	}

	label, ok := Label(v.Member)
	if !ok {
		err := NewInvalidOperationError("Value.MarshalText",
			fmt.Errorf("%w: %s member %d", ErrNoLabel, t, int64(v.Member)))
		return nil, err.WithContext(map[string]any{
			"type":    t.String(),
			"ordinal": int64(v.Member),
		})
	}
	return []byte(label), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with Parse semantics.
func (v *Value[E]) UnmarshalText(text []byte) error {
	m, err := Parse[E](string(text))
	if err != nil {
		return err
	}
	v.Member = m
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the member's label as a
// scalar node.
func (v Value[E]) MarshalYAML() (any, error) {
	text, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with Parse semantics.
func (v *Value[E]) UnmarshalYAML(node *yaml.Node) error {
	var label string
	if err := node.Decode(&label); err != nil {
		return err
	}
	return v.UnmarshalText([]byte(label))
}
