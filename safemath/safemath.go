// Package safemath provides checked arithmetic over fixed-width 256-bit
// unsigned integers. Every operation either returns the exact mathematical
// result or an explicit error, results are never silently wrapped or
// truncated. It is used by the native client layer where Go integers wrap
// silently; contract-side arithmetic is bounded by the VM itself.
package safemath

import (
	"errors"

	"github.com/holiman/uint256"
)

var (
	// ErrOverflow is returned when the exact result exceeds 2^256-1.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrUnderflow is returned when a subtraction result is negative.
	ErrUnderflow = errors.New("arithmetic underflow")
	// ErrDivisionByZero is returned on division or modulo by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Add returns a+b or ErrOverflow if the sum exceeds the integer width.
// Arguments are never modified.
func Add(a, b *uint256.Int) (*uint256.Int, error) {
	sum, carry := new(uint256.Int).AddOverflow(a, b)
	if carry {
		return nil, ErrOverflow
	}

	return sum, nil
}

// Sub returns a-b or ErrUnderflow if b is greater than a.
func Sub(a, b *uint256.Int) (*uint256.Int, error) {
	if b.Gt(a) {
		return nil, ErrUnderflow
	}

	return new(uint256.Int).Sub(a, b), nil
}

// Mul returns a*b or ErrOverflow if the product exceeds the integer width.
// A zero multiplicand short-circuits to zero.
func Mul(a, b *uint256.Int) (*uint256.Int, error) {
	if a.IsZero() {
		return new(uint256.Int), nil
	}

	product, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return nil, ErrOverflow
	}

	return product, nil
}

// Div returns a/b truncated towards zero or ErrDivisionByZero if b is zero.
func Div(a, b *uint256.Int) (*uint256.Int, error) {
	if b.IsZero() {
		return nil, ErrDivisionByZero
	}

	return new(uint256.Int).Div(a, b), nil
}

// Mod returns the remainder of a/b or ErrDivisionByZero if b is zero.
func Mod(a, b *uint256.Int) (*uint256.Int, error) {
	if b.IsZero() {
		return nil, ErrDivisionByZero
	}

	return new(uint256.Int).Mod(a, b), nil
}
