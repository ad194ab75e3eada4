package binstream

import "fmt"

// EnumFormat selects the wire representation of an enumeration value.
type EnumFormat uint8

const (
	// EnumOrdinal encodes a constant as its 0-based position in the
	// declared list, written as a 4-byte integer.
	EnumOrdinal EnumFormat = iota
	// EnumName encodes a constant as its NUL-terminated name.
	EnumName
)

func (f EnumFormat) String() string {
	switch f {
	case EnumOrdinal:
		return "ordinal"
	case EnumName:
		return "name"
	default:
		return fmt.Sprintf("EnumFormat(%d)", uint8(f))
	}
}

// An EnumSet is the closed, ordered constant list of an enumeration.
// The wire ordinal of a constant is its position in the declared order;
// its wire name is the declared string, matched exactly.
type EnumSet struct {
	name      string
	constants []string
	ordinals  map[string]int
}

// NewEnumSet declares an enumeration. The name identifies the set in
// error messages; the constants are its members in wire order. If a
// constant is declared more than once, its first position wins for name
// lookups.
func NewEnumSet(name string, constants ...string) *EnumSet {
	s := &EnumSet{
		name:      name,
		constants: append([]string(nil), constants...),
		ordinals:  make(map[string]int, len(constants)),
	}
	for i, c := range constants {
		if _, ok := s.ordinals[c]; !ok {
			s.ordinals[c] = i
		}
	}
	return s
}

// Name returns the name the set was declared with.
func (s *EnumSet) Name() string { return s.name }

// Len returns the number of declared constants.
func (s *EnumSet) Len() int { return len(s.constants) }

// Constant returns the constant at the given ordinal, or an
// *EnumRangeError if the ordinal lies outside the declared list.
func (s *EnumSet) Constant(ordinal int) (string, error) {
	if ordinal < 0 || ordinal >= len(s.constants) {
		return "", &EnumRangeError{Enum: s.name, Ordinal: ordinal, Size: len(s.constants)}
	}
	return s.constants[ordinal], nil
}

// Ordinal returns the position of the named constant, or an
// *EnumNameError if no constant matches exactly.
func (s *EnumSet) Ordinal(constant string) (int, error) {
	i, ok := s.ordinals[constant]
	if !ok {
		return 0, &EnumNameError{Enum: s.name, Name: constant}
	}
	return i, nil
}
