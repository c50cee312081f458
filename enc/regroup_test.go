package enc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NextSymbol(t *testing.T) {
	src := []byte{0x66, 0x6F} // 01100110 01101111

	v, pos := nextSymbol(src, 8, 6, 0)
	require.Equal(t, byte(0x19), v) // 011001
	require.Equal(t, 6, pos)

	v, pos = nextSymbol(src, 8, 6, pos)
	require.Equal(t, byte(0x26), v) // 10 0110
	require.Equal(t, 12, pos)

	v, pos = nextSymbol(src, 8, 6, pos)
	require.Equal(t, byte(0x3C), v) // 1111 + two zero bits past the end
	require.Equal(t, 18, pos)

	v, _ = nextSymbol(src, 8, 6, pos)
	require.Equal(t, byte(0), v)
}

func Test_Regroup_BothWays(t *testing.T) {
	src := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01}

	for _, width := range []int{4, 5, 6} {
		count := (len(src)*8 + width - 1) / width
		chunks := make([]byte, count)
		regroup(chunks, src, 8, width, count)
		for _, c := range chunks {
			require.Less(t, int(c), 1<<uint(width))
		}

		back := make([]byte, count*width/8)
		regroup(back, chunks, width, 8, len(back))
		require.Equal(t, src, back[:len(src)], "width %d", width)
	}
}

func Test_Regroup_Empty(t *testing.T) {
	regroup(nil, nil, 8, 6, 0)
	v, pos := nextSymbol(nil, 5, 8, 0)
	require.Equal(t, byte(0), v)
	require.Equal(t, 8, pos)
}
