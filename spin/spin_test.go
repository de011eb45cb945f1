package spin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"Single", 1},
		{"Small", 5},
		{"Byte", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.n, c.Len())
			assert.Equal(t, 0, c.CountOn())
			assert.Equal(t, tt.n, c.CountOff())
			for i := 0; i < tt.n; i++ {
				assert.Equal(t, uint8(0), c.Bit(i))
			}
		})
	}
}

func TestNewInvalid(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := New(n)
		assert.ErrorIs(t, err, ErrInvalidArgument, "n=%d", n)
	}
}

func TestFlip(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)

	require.NoError(t, c.Flip(2))
	assert.Equal(t, uint8(1), c.Bit(2))
	assert.Equal(t, 1, c.CountOn())

	// Flipping twice restores the original bits.
	require.NoError(t, c.Flip(2))
	assert.Equal(t, uint8(0), c.Bit(2))
	assert.Equal(t, 0, c.CountOn())
}

func TestFlipOutOfRange(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)

	for _, i := range []int{-1, 4, 100} {
		err := c.Flip(i)
		var oor *ErrIndexOutOfRange
		require.ErrorAs(t, err, &oor, "i=%d", i)
		assert.Equal(t, i, oor.Index)
		assert.Equal(t, 4, oor.Length)
	}
}

func TestSetBits(t *testing.T) {
	c, err := New(5)
	require.NoError(t, err)

	in := []uint8{1, 0, 0, 1, 0}
	require.NoError(t, c.SetBits(in))
	assert.Equal(t, in, c.Bits())
	assert.Equal(t, 2, c.CountOn())
	assert.Equal(t, 3, c.CountOff())
}

func TestSetBitsErrors(t *testing.T) {
	c, err := New(3)
	require.NoError(t, err)

	var dm *ErrDimensionMismatch
	require.ErrorAs(t, c.SetBits([]uint8{1, 0}), &dm)
	assert.Equal(t, 3, dm.Expected)
	assert.Equal(t, 2, dm.Actual)

	assert.ErrorIs(t, c.SetBits([]uint8{1, 0, 2}), ErrInvalidArgument)
}

func TestIntegerRoundTrip(t *testing.T) {
	const n = 6
	c, err := New(n)
	require.NoError(t, err)

	for d := uint64(0); d < 1<<n; d++ {
		require.NoError(t, c.FromInteger(d))
		got, err := c.ToInteger()
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}

func TestFromInteger(t *testing.T) {
	tests := []struct {
		name string
		n    int
		d    uint64
		want []uint8
	}{
		{"Zero", 4, 0, []uint8{0, 0, 0, 0}},
		{"Ten", 4, 10, []uint8{1, 0, 1, 0}},
		{"Max", 3, 7, []uint8{1, 1, 1}},
		// 97 = 0b01100001, MSB first.
		{"NinetySeven", 8, 97, []uint8{0, 1, 1, 0, 0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.n)
			require.NoError(t, err)
			require.NoError(t, c.FromInteger(tt.d))
			assert.Equal(t, tt.want, c.Bits())
		})
	}
}

func TestFromIntegerOutOfRange(t *testing.T) {
	c, err := New(3)
	require.NoError(t, err)

	assert.ErrorIs(t, c.FromInteger(8), ErrInvalidArgument)
	assert.ErrorIs(t, c.FromInteger(1<<40), ErrInvalidArgument)
	require.NoError(t, c.FromInteger(7))
}

func TestCodecTooLong(t *testing.T) {
	c, err := New(64)
	require.NoError(t, err)

	_, err = c.ToInteger()
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, c.FromInteger(0), ErrInvalidArgument)
}

func TestEqual(t *testing.T) {
	a, err := New(4)
	require.NoError(t, err)
	b, err := New(4)
	require.NoError(t, err)

	// Reflexive and symmetric.
	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	require.NoError(t, b.Flip(1))
	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))

	short, err := New(3)
	require.NoError(t, err)
	assert.False(t, a.Equal(short))
	assert.False(t, a.Equal(nil))
}

func TestString(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)
	require.NoError(t, c.SetBits([]uint8{1, 0, 1, 0}))

	assert.Equal(t, "[ 1 0 1 0 ]", c.String())
}

func TestMagnetization(t *testing.T) {
	tests := []struct {
		name string
		bits []uint8
		want int
	}{
		{"AllDown", []uint8{0, 0, 0}, -3},
		{"AllUp", []uint8{1, 1, 1}, 3},
		{"Balanced", []uint8{1, 0, 1, 0}, 0},
		{"Mixed", []uint8{1, 1, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(len(tt.bits))
			require.NoError(t, err)
			require.NoError(t, c.SetBits(tt.bits))
			assert.Equal(t, tt.want, c.Magnetization())
		})
	}
}

func TestClone(t *testing.T) {
	a, err := New(3)
	require.NoError(t, err)
	require.NoError(t, a.SetBits([]uint8{1, 0, 1}))

	b := a.Clone()
	assert.True(t, a.Equal(b))

	// Clones are independent.
	require.NoError(t, b.Flip(0))
	assert.False(t, a.Equal(b))
	assert.Equal(t, uint8(1), a.Bit(0))
}

func TestSpin(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)
	require.NoError(t, c.SetBits([]uint8{0, 1}))

	assert.Equal(t, -1, c.Spin(0))
	assert.Equal(t, 1, c.Spin(1))
}

func TestErrorMessages(t *testing.T) {
	_, err := New(0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "length must be positive")

	oor := &ErrIndexOutOfRange{Index: 7, Length: 4}
	assert.Equal(t, "index out of range: 7 not in [0, 4)", oor.Error())

	dm := &ErrDimensionMismatch{Expected: 4, Actual: 2}
	assert.Equal(t, "dimension mismatch: expected 4, got 2", dm.Error())
}
