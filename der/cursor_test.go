package der

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkip(t *testing.T) {
	crs := Cursor([]byte{0x02, 0x01, 0x2a, 0x04, 0x00})
	require.NoError(t, Skip(&crs))
	require.Equal(t, Cursor([]byte{0x04, 0x00}), crs)
}

func TestSkip_Error(t *testing.T) {
	crs := Cursor([]byte{0x02})
	err := Skip(&crs)
	require.Error(t, err)
	require.Nil(t, crs)
}

func TestEnter(t *testing.T) {
	crs := Cursor([]byte{0x30, 0x03, 0x02, 0x01, 0x2a})
	require.NoError(t, Enter(&crs))
	require.Equal(t, Cursor([]byte{0x02, 0x01, 0x2a}), crs)
}

func TestEnter_BitStringSkipsUnusedByte(t *testing.T) {
	crs := Cursor([]byte{0x03, 0x02, 0x00, 0xF0})
	require.NoError(t, Enter(&crs))
	require.Equal(t, Cursor([]byte{0xF0}), crs)
}

func TestEnter_EmptyBitStringIsError(t *testing.T) {
	crs := Cursor([]byte{0x03, 0x00})
	err := Enter(&crs)
	require.Error(t, err)
}

func TestFocus(t *testing.T) {
	crs := Cursor([]byte{0x02, 0x01, 0x2a, 0x02, 0x01, 0x2b})
	require.NoError(t, Focus(&crs))
	require.Equal(t, Cursor([]byte{0x02, 0x01, 0x2a}), crs)
}

func TestIterate(t *testing.T) {
	container := Cursor([]byte{
		0x02, 0x01, 0x01,
		0x02, 0x01, 0x02,
		0x02, 0x01, 0x03,
	})
	require.Equal(t, 3, Count(container))

	var iter Cursor
	require.True(t, IterateFirst(container, &iter))
	var vals []byte
	for {
		elem := iter
		require.NoError(t, Focus(&elem))
		require.NoError(t, Enter(&elem))
		vals = append(vals, elem[0])
		if !IterateNext(&iter) {
			break
		}
	}
	require.Equal(t, []byte{0x01, 0x02, 0x03}, vals)
}

func TestIterateFirst_EmptyContainer(t *testing.T) {
	var iter Cursor
	require.False(t, IterateFirst(nil, &iter))
	require.Equal(t, 0, Count(nil))
}

func TestConstructedPrimitive(t *testing.T) {
	require.True(t, Constructed(Cursor([]byte{0x30, 0x00})))
	require.False(t, Constructed(Cursor([]byte{0x02, 0x00})))
	require.True(t, Primitive(Cursor([]byte{0x02, 0x00})))
	require.False(t, Primitive(nil))
	require.False(t, Constructed(nil))
}

func TestNonEmptyIsAbsent(t *testing.T) {
	require.True(t, NonEmpty(Cursor([]byte{0x00})))
	require.False(t, NonEmpty(nil))
	require.True(t, IsAbsent(nil))
	require.False(t, IsAbsent(Cursor([]byte{0x00})))
}
