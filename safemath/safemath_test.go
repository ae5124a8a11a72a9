package safemath

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func maxUint256() *uint256.Int {
	return new(uint256.Int).SetAllOne()
}

func pow2(n uint) *uint256.Int {
	return new(uint256.Int).Lsh(uint256.NewInt(1), n)
}

func TestAdd(t *testing.T) {
	sum, err := Add(uint256.NewInt(2), uint256.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(5), sum)

	sum, err = Add(maxUint256(), uint256.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, maxUint256(), sum)

	_, err = Add(maxUint256(), uint256.NewInt(1))
	require.ErrorIs(t, err, ErrOverflow)

	_, err = Add(maxUint256(), maxUint256())
	require.ErrorIs(t, err, ErrOverflow)
}

func TestAddDoesNotModifyArguments(t *testing.T) {
	a := uint256.NewInt(7)
	b := uint256.NewInt(8)

	_, err := Add(a, b)
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(7), a)
	require.Equal(t, uint256.NewInt(8), b)
}

func TestSub(t *testing.T) {
	diff, err := Sub(uint256.NewInt(5), uint256.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(2), diff)

	diff, err = Sub(uint256.NewInt(5), uint256.NewInt(5))
	require.NoError(t, err)
	require.True(t, diff.IsZero())

	diff, err = Sub(maxUint256(), uint256.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, new(uint256.Int).Sub(maxUint256(), uint256.NewInt(1)), diff)

	_, err = Sub(uint256.NewInt(3), uint256.NewInt(5))
	require.ErrorIs(t, err, ErrUnderflow)

	_, err = Sub(uint256.NewInt(0), uint256.NewInt(1))
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestMul(t *testing.T) {
	product, err := Mul(uint256.NewInt(6), uint256.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(42), product)

	// Zero multiplicand short-circuits, even against the maximum value.
	product, err = Mul(uint256.NewInt(0), maxUint256())
	require.NoError(t, err)
	require.True(t, product.IsZero())

	product, err = Mul(maxUint256(), uint256.NewInt(0))
	require.NoError(t, err)
	require.True(t, product.IsZero())

	product, err = Mul(maxUint256(), uint256.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, maxUint256(), product)

	_, err = Mul(maxUint256(), uint256.NewInt(2))
	require.ErrorIs(t, err, ErrOverflow)

	// 2^128 * 2^128 == 2^256, one past the width.
	_, err = Mul(pow2(128), pow2(128))
	require.ErrorIs(t, err, ErrOverflow)

	// (2^128-1)^2 still fits.
	almost := new(uint256.Int).Sub(pow2(128), uint256.NewInt(1))
	_, err = Mul(almost, almost)
	require.NoError(t, err)
}

func TestDiv(t *testing.T) {
	quo, err := Div(uint256.NewInt(7), uint256.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(3), quo)

	quo, err = Div(uint256.NewInt(0), uint256.NewInt(3))
	require.NoError(t, err)
	require.True(t, quo.IsZero())

	_, err = Div(uint256.NewInt(7), uint256.NewInt(0))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestMod(t *testing.T) {
	rem, err := Mod(uint256.NewInt(7), uint256.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(1), rem)

	_, err = Mod(uint256.NewInt(7), uint256.NewInt(0))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivModIdentity(t *testing.T) {
	cases := [][2]*uint256.Int{
		{uint256.NewInt(7), uint256.NewInt(2)},
		{uint256.NewInt(100), uint256.NewInt(100)},
		{uint256.NewInt(5), uint256.NewInt(100)},
		{maxUint256(), uint256.NewInt(3)},
		{maxUint256(), maxUint256()},
		{pow2(255), pow2(13)},
	}

	for _, c := range cases {
		a, b := c[0], c[1]

		quo, err := Div(a, b)
		require.NoError(t, err)

		rem, err := Mod(a, b)
		require.NoError(t, err)
		require.True(t, rem.Lt(b))

		product, err := Mul(b, quo)
		require.NoError(t, err)

		sum, err := Add(product, rem)
		require.NoError(t, err)
		require.Equal(t, a, sum, "a == b*(a/b) + a%%b must hold")
	}
}

func TestErrorsAreDistinguishable(t *testing.T) {
	_, addErr := Add(maxUint256(), uint256.NewInt(1))
	_, subErr := Sub(uint256.NewInt(0), uint256.NewInt(1))
	_, divErr := Div(uint256.NewInt(1), uint256.NewInt(0))

	require.False(t, errors.Is(addErr, subErr))
	require.False(t, errors.Is(addErr, divErr))
	require.False(t, errors.Is(subErr, divErr))
}
