package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSigner(secret string, at time.Time) *Signer {
	s := NewSigner(secret)
	s.now = func() time.Time { return at }
	return s
}

func TestSignAndParse(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	signer := fixedSigner("top-secret", issued)

	signed, err := signer.Sign(SubscriptionClaims{
		NameCompany:             "Riyadh Parking",
		CountParking:            12,
		Subscription:            "gold",
		CompanyParkingLocations: []string{"olaya"},
		EmailCompany:            "ops@riyadhparking.sa",
	}, time.Hour)
	require.NoError(t, err)

	claims, err := signer.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "Riyadh Parking", claims.NameCompany)
	assert.Equal(t, float64(12), claims.CountParking)
	assert.Equal(t, "gold", claims.Subscription)
	assert.Equal(t, []string{"olaya"}, claims.CompanyParkingLocations)
	assert.Equal(t, issued.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())

	parsed, _, err := jwt.NewParser().ParseUnverified(signed, jwt.MapClaims{})
	require.NoError(t, err)
	assert.Equal(t, "HS256", parsed.Method.Alg())
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	signed, err := fixedSigner("k", issued).Sign(SubscriptionClaims{NameCompany: "x"}, time.Minute)
	require.NoError(t, err)

	_, err = fixedSigner("k", issued.Add(2*time.Minute)).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	now := time.Now()
	signed, err := fixedSigner("a", now).Sign(SubscriptionClaims{NameCompany: "x"}, time.Hour)
	require.NoError(t, err)

	_, err = fixedSigner("b", now).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseExpiresIn(t *testing.T) {
	tests := []struct {
		name    string
		in      interface{}
		want    time.Duration
		wantErr bool
	}{
		{"json number is seconds", float64(3600), time.Hour, false},
		{"numeric string is milliseconds", "60000", time.Minute, false},
		{"milliseconds unit", "1500ms", 1500 * time.Millisecond, false},
		{"zero string", "0", 0, true},
		{"days", "30d", 30 * 24 * time.Hour, false},
		{"hours", "12h", 12 * time.Hour, false},
		{"spelled unit", "2 weeks", 14 * 24 * time.Hour, false},
		{"year", "1y", 365 * 24 * time.Hour, false},
		{"zero", float64(0), 0, true},
		{"negative", float64(-5), 0, true},
		{"unknown unit", "3 fortnights", 0, true},
		{"garbage", "soon", 0, true},
		{"bool", true, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExpiresIn(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidExpiresIn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
