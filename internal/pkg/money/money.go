// Package money provides precise decimal arithmetic for monetary values.
// Amounts are stored as rational numbers (big.Rat) so prices and totals
// never accumulate floating-point error.
package money

import (
	"fmt"
	"math/big"
)

// Money represents a monetary value as a rational number.
type Money struct {
	rat *big.Rat
}

// New creates a Money from numerator and denominator.
// Example: New(349, 100) represents $3.49.
func New(numerator, denominator int64) (*Money, error) {
	if denominator <= 0 {
		return nil, fmt.Errorf("denominator must be positive, got %d", denominator)
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// FromRat creates a Money from a big.Rat.
func FromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// Zero returns a zero-valued Money.
func Zero() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Parse creates a Money from a decimal string such as "3.49" or "12".
func Parse(s string) (*Money, error) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid money amount %q", s)
	}
	return &Money{rat: rat}, nil
}

// Numerator returns the numerator of the reduced rational value.
func (m *Money) Numerator() int64 {
	return m.rat.Num().Int64()
}

// Denominator returns the denominator of the reduced rational value.
func (m *Money) Denominator() int64 {
	return m.rat.Denom().Int64()
}

// Rat returns a copy of the underlying rational value.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

// Add returns m + other as a new Money.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract returns m - other as a new Money.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// Multiply returns m * other as a new Money.
func (m *Money) Multiply(other *Money) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, other.rat)}
}

// MultiplyInt returns m * n as a new Money. Used for line totals
// (unit price times quantity).
func (m *Money) MultiplyInt(n int64) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, new(big.Rat).SetInt64(n))}
}

// IsZero returns true if the value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive returns true if the value is positive.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// LessThan returns true if m < other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if m > other.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if m and other represent the same value.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// IsSafeForStorage returns true if the reduced numerator and denominator
// both fit in int64 columns.
func (m *Money) IsSafeForStorage() bool {
	return m.rat.Num().IsInt64() && m.rat.Denom().IsInt64()
}

// Float64 returns an approximate float64 representation (for display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns the value formatted with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
