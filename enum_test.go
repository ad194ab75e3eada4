package binstream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnumSetDeclaration(t *testing.T) {
	set := NewEnumSet("Color", "RED", "GREEN", "BLUE")
	require.Equal(t, "Color", set.Name())
	require.Equal(t, 3, set.Len())

	for i, want := range []string{"RED", "GREEN", "BLUE"} {
		c, err := set.Constant(i)
		require.NoError(t, err)
		require.Equal(t, want, c)

		ord, err := set.Ordinal(want)
		require.NoError(t, err)
		require.Equal(t, i, ord)
	}
}

func TestEnumSetRange(t *testing.T) {
	set := NewEnumSet("Color", "RED", "GREEN", "BLUE")
	for _, ordinal := range []int{-1, 3, 42} {
		_, err := set.Constant(ordinal)
		var rangeErr *EnumRangeError
		require.ErrorAs(t, err, &rangeErr)
		require.Equal(t, "Color", rangeErr.Enum)
		require.Equal(t, ordinal, rangeErr.Ordinal)
		require.Equal(t, 3, rangeErr.Size)
	}
	_, err := set.Constant(4)
	require.EqualError(t, err, "binstream: enum Color: ordinal 4 out of range [0, 3)")
}

func TestEnumSetUnknownName(t *testing.T) {
	set := NewEnumSet("Color", "RED", "GREEN", "BLUE")
	for _, name := range []string{"", "red", "YELLOW"} {
		_, err := set.Ordinal(name)
		var nameErr *EnumNameError
		require.ErrorAs(t, err, &nameErr)
		require.Equal(t, "Color", nameErr.Enum)
		require.Equal(t, name, nameErr.Name)
	}
	_, err := set.Ordinal("YELLOW")
	require.EqualError(t, err, `binstream: enum Color: unknown constant "YELLOW"`)
}

func TestEnumSetDuplicateConstants(t *testing.T) {
	set := NewEnumSet("Dup", "A", "B", "A")
	require.Equal(t, 3, set.Len())
	c, err := set.Constant(2)
	require.NoError(t, err)
	require.Equal(t, "A", c)
	// The first declaration wins for name lookups.
	ord, err := set.Ordinal("A")
	require.NoError(t, err)
	require.Equal(t, 0, ord)
}

func TestEnumSetEmpty(t *testing.T) {
	set := NewEnumSet("Empty")
	require.Equal(t, 0, set.Len())
	_, err := set.Constant(0)
	var rangeErr *EnumRangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestEnumFormatString(t *testing.T) {
	require.Equal(t, "ordinal", EnumOrdinal.String())
	require.Equal(t, "name", EnumName.String())
	require.Equal(t, "EnumFormat(9)", EnumFormat(9).String())
}
