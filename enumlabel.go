package enumlabel

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
)

// Ordinal constrains enum types to defined integer types. Using a defined
// type (rather than plain int) is what makes members of different enums
// distinct at compile time, so a non-enum type can never reach the registry.
type Ordinal interface {
	constraints.Integer
}

// Member describes one enum member for registration: a value and an optional
// label. Construct members with Labeled and Unlabeled.
type Member[E Ordinal] struct {
	value   E
	label   string
	labeled bool
}

// Labeled returns a Member that attaches the given label to value.
// Any string is accepted, including the empty string; no validation is
// performed at attachment time.
func Labeled[E Ordinal](value E, label string) Member[E] {
	return Member[E]{value: value, label: label, labeled: true}
}

// Unlabeled returns a Member with no label attached. An unlabeled member is
// still a valid member: FromOrdinal accepts its value, and Label reports
// absence for it rather than an empty string.
func Unlabeled[E Ordinal](value E) Member[E] {
	return Member[E]{value: value}
}

// member is the stored form of a registered member. Each member carries its
// own label state, so a label can never leak from an earlier member to a
// later unlabeled one during lookup.
type member struct {
	ordinal int64
	label   string
	labeled bool
}

// enumSet holds the registered members of one enum type, in registration
// order, with lookup indexes built once at registration time.
type enumSet struct {
	members   []member
	byOrdinal map[int64]int
	byLabel   map[string]int // exact label -> index of first member carrying it
	byFold    map[string]int // lowercased label -> index of first member carrying it
}

// labelRegistry is the process-wide store of registered enum types.
// Reads vastly outnumber writes, so it uses sync.RWMutex.
type labelRegistry struct {
	mu   sync.RWMutex
	sets map[reflect.Type]*enumSet
}

// global is the package-level registry instance used by Register and all
// lookup functions. Enum types register their members at initialization time.
var global = &labelRegistry{
	sets: make(map[reflect.Type]*enumSet),
}

func (r *labelRegistry) lookup(t reflect.Type) *enumSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sets[t]
}

// Register records the members of enum type E, replacing any previous
// registration for E. Members are stored in the order given, and that order
// is significant: when two members carry the same label (exactly, or
// case-insensitively under ParseFold), parsing returns the first one.
//
// Register returns an error if the same member value appears more than once.
// It is safe to call concurrently, though registration is normally done from
// init functions before any lookups.
func Register[E Ordinal](members ...Member[E]) error {
	t := reflect.TypeOf((*E)(nil)).Elem()

	set := &enumSet{
		byOrdinal: make(map[int64]int, len(members)),
		byLabel:   make(map[string]int, len(members)),
		byFold:    make(map[string]int, len(members)),
	}

	for _, m := range members {
		ord := int64(m.value)
		if _, dup := set.byOrdinal[ord]; dup {
			err := NewInvalidArgumentError("Register",
				fmt.Errorf("%w: %s value %d", ErrDuplicateMember, t, ord))
			return err.WithContext(map[string]any{
				"type":    t.String(),
				"ordinal": ord,
			})
		}

		idx := len(set.members)
		set.byOrdinal[ord] = idx
		if m.labeled {
			if _, taken := set.byLabel[m.label]; !taken {
				set.byLabel[m.label] = idx
			}
			folded := strings.ToLower(m.label)
			if _, taken := set.byFold[folded]; !taken {
				set.byFold[folded] = idx
			}
		}
		set.members = append(set.members, member{ordinal: ord, label: m.label, labeled: m.labeled})
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	global.sets[t] = set
	return nil
}

// MustRegister is like Register but panics on error. It is intended for use
// in init functions and package-level variable initialization.
func MustRegister[E Ordinal](members ...Member[E]) {
	if err := Register(members...); err != nil {
		panic(err)
	}
}

// Label returns the label attached to member, and whether one is attached.
// The second return value is false when the member was registered without a
// label, when the value is not a registered member, or when the type has not
// been registered at all. Absence is distinct from an empty label: a member
// registered with Labeled(v, "") yields ("", true).
func Label[E Ordinal](member E) (string, bool) {
	set := global.lookup(reflect.TypeOf((*E)(nil)).Elem())
	if set == nil {
		return "", false
	}

	idx, ok := set.byOrdinal[int64(member)]
	if !ok || !set.members[idx].labeled {
		return "", false
	}
	return set.members[idx].label, true
}

// Parse returns the first registered member of E whose label equals label,
// compared byte-wise and case-sensitively.
//
// It returns a KindInvalidArgument error wrapping ErrNotRegistered if E has
// not been registered, and a KindNotFound error wrapping ErrUnknownLabel if
// no member carries the label. The zero value of E accompanies any error and
// must not be mistaken for a match.
func Parse[E Ordinal](label string) (E, error) {
	return parse[E]("Parse", label, false)
}

// ParseFold is Parse with case-insensitive label comparison, in the manner of
// strings.EqualFold. Among members whose labels are equal under folding, the
// first in registration order wins.
func ParseFold[E Ordinal](label string) (E, error) {
	return parse[E]("ParseFold", label, true)
}

func parse[E Ordinal](op, label string, fold bool) (E, error) {
	var zero E
	t := reflect.TypeOf((*E)(nil)).Elem()

	set := global.lookup(t)
	if set == nil {
		return zero, errNotRegistered(op, t)
	}

	var idx int
	var ok bool
	if fold {
		idx, ok = set.byFold[strings.ToLower(label)]
	} else {
		idx, ok = set.byLabel[label]
	}
	if !ok {
		err := NewNotFoundError(op,
			fmt.Errorf("%w: no %s member labeled %q", ErrUnknownLabel, t, label))
		return zero, err.WithContext(map[string]any{
			"type":  t.String(),
			"label": label,
		})
	}

	return E(set.members[idx].ordinal), nil
}

// FromOrdinal validates value against the registered members of E and returns
// the corresponding member.
//
// It returns a KindInvalidArgument error wrapping ErrNotRegistered if E has
// not been registered, and a KindInvalidOperation error wrapping
// ErrUnknownOrdinal if value is not the ordinal of any registered member.
func FromOrdinal[E Ordinal](value int64) (E, error) {
	var zero E
	t := reflect.TypeOf((*E)(nil)).Elem()

	set := global.lookup(t)
	if set == nil {
		return zero, errNotRegistered("FromOrdinal", t)
	}

	if _, ok := set.byOrdinal[value]; !ok {
		err := NewInvalidOperationError("FromOrdinal",
			fmt.Errorf("%w: %d is not a defined %s value", ErrUnknownOrdinal, value, t))
		return zero, err.WithContext(map[string]any{
			"type":    t.String(),
			"ordinal": value,
		})
	}

	return E(value), nil
}

// Members returns the registered members of E in registration order.
// It returns nil if E has not been registered.
func Members[E Ordinal]() []E {
	set := global.lookup(reflect.TypeOf((*E)(nil)).Elem())
	if set == nil {
		return nil
	}

	out := make([]E, len(set.members))
	for i, m := range set.members {
		out[i] = E(m.ordinal)
	}
	return out
}

// Labels returns the labels of the labeled members of E in registration
// order. Unlabeled members contribute nothing. It returns nil if E has not
// been registered.
func Labels[E Ordinal]() []string {
	set := global.lookup(reflect.TypeOf((*E)(nil)).Elem())
	if set == nil {
		return nil
	}

	var out []string
	for _, m := range set.members {
		if m.labeled {
			out = append(out, m.label)
		}
	}
	return out
}

// IsRegistered reports whether enum type E has been registered.
func IsRegistered[E Ordinal]() bool {
	return global.lookup(reflect.TypeOf((*E)(nil)).Elem()) != nil
}

// Clear resets the entire registry.
// This is primarily useful for testing.
func Clear() {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.sets = make(map[reflect.Type]*enumSet)
}

func errNotRegistered(op string, t reflect.Type) *Error {
	err := NewInvalidArgumentError(op,
		fmt.Errorf("%w: %s", ErrNotRegistered, t))
	return err.WithContext(map[string]any{"type": t.String()})
}
