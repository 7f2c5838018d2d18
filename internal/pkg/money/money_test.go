package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := New(349, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(349), m.Numerator())
		assert.Equal(t, int64(100), m.Denominator())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := New(100, 0)
		assert.Error(t, err)
	})

	t.Run("negative denominator returns error", func(t *testing.T) {
		_, err := New(100, -1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "positive")
	})

	t.Run("negative numerator allowed", func(t *testing.T) {
		m, err := New(-100, 1)
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})

	t.Run("value is reduced", func(t *testing.T) {
		m, err := New(200, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(100), m.Numerator())
		assert.Equal(t, int64(1), m.Denominator())
	})
}

func TestParse(t *testing.T) {
	t.Run("decimal string", func(t *testing.T) {
		m, err := Parse("3.49")
		require.NoError(t, err)
		assert.Equal(t, "3.49", m.String())
	})

	t.Run("integer string", func(t *testing.T) {
		m, err := Parse("12")
		require.NoError(t, err)
		assert.Equal(t, "12.00", m.String())
	})

	t.Run("garbage returns error", func(t *testing.T) {
		_, err := Parse("not-a-price")
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	m1, _ := New(100, 1)
	m2, _ := New(50, 1)

	assert.Equal(t, 150.0, m1.Add(m2).Float64())
	assert.Equal(t, 50.0, m1.Subtract(m2).Float64())

	half, _ := New(3, 2)
	assert.Equal(t, 150.0, m1.Multiply(half).Float64())
	assert.Equal(t, 300.0, m1.MultiplyInt(3).Float64())
}

func TestMoney_Comparisons(t *testing.T) {
	m1, _ := New(100, 1)
	m2, _ := New(50, 1)
	m3, _ := New(100, 1)

	assert.True(t, m1.GreaterThan(m2))
	assert.False(t, m2.GreaterThan(m1))

	assert.True(t, m2.LessThan(m1))
	assert.False(t, m1.LessThan(m2))

	assert.True(t, m1.Equals(m3))
	assert.False(t, m1.Equals(m2))
}

// Line totals must accumulate exactly: 1.99*3 + 4.99*1 = 10.96, with no
// floating-point drift.
func TestMoney_OrderTotalPrecision(t *testing.T) {
	pasta, _ := Parse("1.99")
	apples, _ := Parse("4.99")

	total := Zero().
		Add(pasta.MultiplyInt(3)).
		Add(apples.MultiplyInt(1))

	expected, _ := Parse("10.96")
	assert.True(t, total.Equals(expected), "total was %s", total)
	assert.Equal(t, "10.96", total.String())
}

func TestMoney_Copy(t *testing.T) {
	m1, _ := New(100, 1)
	m2 := m1.Copy()

	m2 = m2.Add(m2)
	assert.Equal(t, 100.0, m1.Float64())
	assert.Equal(t, 200.0, m2.Float64())
}

func TestMoney_StorageBounds(t *testing.T) {
	m, _ := New(349, 100)
	assert.True(t, m.IsSafeForStorage())

	big1, _ := Parse("9223372036854775807")
	overflow := big1.MultiplyInt(10)
	assert.False(t, overflow.IsSafeForStorage())
}
