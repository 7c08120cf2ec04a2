package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimator_Quote_ResolvesRegionByFirstDigit(t *testing.T) {
	e := NewEstimator(DefaultRates())

	q, err := e.Quote("01310-100", 1)
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", q.Region)
	assert.Equal(t, 2, q.ETADays)

	q, err = e.Quote("90010000", 1)
	require.NoError(t, err)
	assert.Equal(t, "Sul", q.Region)
}

func TestEstimator_Quote_CostGrowsPerItem(t *testing.T) {
	e := NewEstimator([]RegionRate{
		{Region: "Test", Digits: "0", BaseCost: 10, PerItem: 2, ETADays: 1},
	})

	one, err := e.Quote("01310100", 1)
	require.NoError(t, err)
	assert.InDelta(t, 12, one.Cost, 1e-9)

	three, err := e.Quote("01310100", 3)
	require.NoError(t, err)
	assert.InDelta(t, 16, three.Cost, 1e-9)
}

func TestEstimator_Quote_InvalidPostalCode(t *testing.T) {
	e := NewEstimator(DefaultRates())

	_, err := e.Quote("1234", 1)
	assert.ErrorIs(t, err, ErrInvalidPostalCode)

	_, err = e.Quote("abcdefgh", 1)
	assert.ErrorIs(t, err, ErrInvalidPostalCode)
}

func TestEstimator_Quote_InvalidItemCount(t *testing.T) {
	e := NewEstimator(DefaultRates())

	_, err := e.Quote("01310100", 0)
	assert.ErrorIs(t, err, ErrInvalidItemCount)
}

func TestEstimator_Quote_UnknownRegion(t *testing.T) {
	e := NewEstimator([]RegionRate{
		{Region: "Only Zero", Digits: "0", BaseCost: 10, PerItem: 1, ETADays: 1},
	})

	_, err := e.Quote("90010000", 1)
	assert.ErrorIs(t, err, ErrNoRateForRegion)
}

func TestDefaultRates_CoverEveryLeadingDigit(t *testing.T) {
	e := NewEstimator(DefaultRates())

	for d := byte('0'); d <= '9'; d++ {
		cep := string(d) + "1310100"
		_, err := e.Quote(cep, 1)
		assert.NoError(t, err, "digit %c", d)
	}
}
