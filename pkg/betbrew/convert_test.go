package betbrew

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalToFractional(t *testing.T) {
	calc := New()

	tests := []struct {
		decimalOdds float64
		want        string
	}{
		{2.5, "1.5/1"},
		{3, "2/1"},
		{1.1, "0.1/1"},
		{11, "10/1"},
		{1, "0/1"},
		{0.5, "-0.5/1"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.decimalOdds), func(t *testing.T) {
			got, err := calc.DecimalToFractional(tt.decimalOdds)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := calc.DecimalToFractional(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFractionalToDecimal(t *testing.T) {
	calc := New()

	tests := []struct {
		fraction string
		want     float64
	}{
		{"1.5/1", 2.5},
		{"5/2", 3.5},
		{"1/3", 4.0 / 3.0},
		{" 10 / 1 ", 11},
		{"0/1", 1},
		{"-1/2", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.fraction, func(t *testing.T) {
			got, err := calc.FractionalToDecimal(tt.fraction)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}
}

func TestFractionalToDecimalInvalid(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		fraction string
		wantKind error
	}{
		{"empty", "", ErrInvalidType},
		{"whitespace", "   ", ErrInvalidType},
		{"no slash", "5", ErrInvalidType},
		{"two slashes", "1/2/3", ErrInvalidType},
		{"not a number", "abc/2", ErrInvalidType},
		{"bad denominator", "1/x", ErrInvalidType},
		{"zero denominator", "5/0", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.FractionalToDecimal(tt.fraction)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, "fraction", FieldOf(err))
		})
	}
}

func TestFractionalRoundTrip(t *testing.T) {
	calc := New()

	for _, d := range []float64{1.25, 2.5, 3, 7.5, 101} {
		fraction, err := calc.DecimalToFractional(d)
		require.NoError(t, err)
		back, err := calc.FractionalToDecimal(fraction)
		require.NoError(t, err)
		assert.InDelta(t, d, back, tolerance, "fraction %s", fraction)
	}
}

func TestDecimalToMoneyline(t *testing.T) {
	calc := New()

	tests := []struct {
		decimalOdds float64
		want        float64
	}{
		{2.5, 150},
		{2, 100},
		{3, 200},
		{1.5, -200},
		{1.25, -400},
		{0.5, 200},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.decimalOdds), func(t *testing.T) {
			got, err := calc.DecimalToMoneyline(tt.decimalOdds)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}

	_, err := calc.DecimalToMoneyline(1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = calc.DecimalToMoneyline(-2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestMoneylineToDecimal(t *testing.T) {
	calc := New()

	tests := []struct {
		moneyline float64
		want      float64
	}{
		{150, 2.5},
		{100, 2},
		{-200, 1.5},
		{-110, 1.909090909},
		{50, 1.5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.moneyline), func(t *testing.T) {
			got, err := calc.MoneylineToDecimal(tt.moneyline)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}

	_, err := calc.MoneylineToDecimal(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, "moneyline", FieldOf(err))
}

func TestMoneylineRoundTrip(t *testing.T) {
	calc := New()

	// Both sides of the 2.0 branch point
	for _, d := range []float64{1.01, 1.5, 1.909, 1.9999, 2, 2.0001, 2.5, 10} {
		moneyline, err := calc.DecimalToMoneyline(d)
		require.NoError(t, err)
		back, err := calc.MoneylineToDecimal(moneyline)
		require.NoError(t, err)
		assert.InDelta(t, d, back, tolerance, "moneyline %v", moneyline)
	}
}

func TestImpliedProbability(t *testing.T) {
	calc := New()

	got, err := calc.ImpliedProbability(4)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got, tolerance)

	_, err = calc.ImpliedProbability(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
