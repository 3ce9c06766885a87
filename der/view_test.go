package der

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestView_Bytes(t *testing.T) {
	v := Bytes([]byte{0x01, 0x02})
	require.False(t, v.IsAbsent())
	require.False(t, v.IsPrepacked())
	require.False(t, v.IsRepeated())
	require.Equal(t, []byte{0x01, 0x02}, v.Data())
	require.Equal(t, 2, v.Len())
}

func TestView_Absent(t *testing.T) {
	require.True(t, Absent.IsAbsent())
	require.Equal(t, 0, Absent.Len())

	var zero View
	require.True(t, zero.IsAbsent())
}

func TestView_Prepack(t *testing.T) {
	children := []View{Bytes([]byte{0x01}), Bytes([]byte{0x02})}
	v := Prepack(children)
	require.True(t, v.IsPrepacked())
	require.False(t, v.IsAbsent())
	require.Equal(t, 0, v.Len())
	require.Equal(t, children, v.Children())
}

func TestView_DataPanicsOnNonByte(t *testing.T) {
	require.Panics(t, func() { Prepack(nil).Data() })
	require.Panics(t, func() { Bytes(nil).Children() })
}

func TestView_Repeated(t *testing.T) {
	children := []View{
		Bytes([]byte{0x01}), Bytes([]byte{0x02}),
		Bytes([]byte{0x03}), Bytes([]byte{0x04}),
	}
	v := Repeated(children, 2)
	require.True(t, v.IsRepeated())
	require.Equal(t, 2, v.Count())
	require.Equal(t, []View{Bytes([]byte{0x01}), Bytes([]byte{0x02})}, v.Element(0))
	require.Equal(t, []View{Bytes([]byte{0x03}), Bytes([]byte{0x04})}, v.Element(1))
}

func TestView_RepeatedEmpty(t *testing.T) {
	v := Repeated(nil, 3)
	require.Equal(t, 0, v.Count())
}

func TestView_RepeatedPanicsOnWrongKind(t *testing.T) {
	require.Panics(t, func() { Bytes(nil).Count() })
	require.Panics(t, func() { Bytes(nil).Element(0) })
}
