package utils

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", 15*time.Minute)

	token, err := m.GenerateToken(7, "priya", "staff")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "priya", claims.Username)
	assert.Equal(t, "staff", claims.Role)
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("secret", 15*time.Minute)
	issued := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, err := m.GenerateToken(1, "admin", "admin")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(16 * time.Minute) }
	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("one", time.Minute).GenerateToken(1, "a", "staff")
	require.NoError(t, err)

	_, err = NewJWTManager("two", time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("om-namah")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("om-namah", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestLeadingDecimal(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"150", "150", true},
		{"150abc", "150", true},
		{" 12.5", "12.5", true},
		{"-20", "-20", true},
		{".5", "0.5", true},
		{"7.", "7", true},
		{"abc", "0", false},
		{"", "0", false},
		{"-", "0", false},
		{".", "0", false},
		{"1e3", "1000", true},
		{"2.5E-1", "0.25", true},
		{"7.e2", "700", true},
		{"1e", "1", true},
		{"1e+", "1", true},
		{"3e400", "3", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := LeadingDecimal(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestLeadingInt(t *testing.T) {
	n, ok := LeadingInt("42abc")
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	_, ok = LeadingInt("abc")
	assert.False(t, ok)

	_, ok = LeadingInt("-3")
	assert.False(t, ok)

	n, ok = LeadingInt("9223372036854775807")
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), n)

	for _, in := range []string{"9223372036854775808", "99999999999999999999"} {
		n, ok = LeadingInt(in)
		assert.False(t, ok, in)
		assert.Zero(t, n, in)
	}
}
