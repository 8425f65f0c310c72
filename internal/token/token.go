// Package token issues and verifies company subscription tokens.
package token

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("invalid subscription token")
	ErrInvalidExpiresIn = errors.New("invalid expiresIn")
)

// SubscriptionClaims are the company fields embedded in a subscription token.
type SubscriptionClaims struct {
	NameCompany             string      `json:"nameCompany"`
	CountParking            interface{} `json:"countParking"`
	Subscription            string      `json:"Subscription"`
	CompanyParkingLocations []string    `json:"CompanyParkingLocations"`
	EmailCompany            string      `json:"emailCompany"`
	jwt.RegisteredClaims
}

// Signer signs and parses HS256 subscription tokens with a shared secret.
type Signer struct {
	secret []byte
	now    func() time.Time
}

// NewSigner returns a Signer keyed by secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret), now: time.Now}
}

// Sign issues a token valid for ttl from now.
func (s *Signer) Sign(claims SubscriptionClaims, ttl time.Duration) (string, error) {
	issuedAt := s.now()
	claims.IssuedAt = jwt.NewNumericDate(issuedAt)
	claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(ttl))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign subscription token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry of tokenString.
func (s *Signer) Parse(tokenString string) (*SubscriptionClaims, error) {
	var claims SubscriptionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return &claims, nil
}

var unitDurations = map[string]time.Duration{
	"ms": time.Millisecond, "msec": time.Millisecond, "msecs": time.Millisecond,
	"millisecond": time.Millisecond, "milliseconds": time.Millisecond,
	"s": time.Second, "sec": time.Second, "secs": time.Second, "second": time.Second, "seconds": time.Second,
	"m": time.Minute, "min": time.Minute, "mins": time.Minute, "minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hrs": time.Hour, "hour": time.Hour, "hours": time.Hour,
	"d": 24 * time.Hour, "day": 24 * time.Hour, "days": 24 * time.Hour,
	"w": 7 * 24 * time.Hour, "week": 7 * 24 * time.Hour, "weeks": 7 * 24 * time.Hour,
	"y": 365 * 24 * time.Hour, "year": 365 * 24 * time.Hour, "years": 365 * 24 * time.Hour,
}

// ParseExpiresIn converts a JSON expiresIn value into a duration. Numbers are
// seconds. Strings are either plain milliseconds ("60000") or a number followed
// by a unit ("30d", "12h", "2 weeks").
func ParseExpiresIn(v interface{}) (time.Duration, error) {
	switch val := v.(type) {
	case float64:
		return secondsToDuration(val)
	case int:
		return secondsToDuration(float64(val))
	case int64:
		return secondsToDuration(float64(val))
	case string:
		return parseExpiresInString(val)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidExpiresIn, v)
	}
}

func secondsToDuration(seconds float64) (time.Duration, error) {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidExpiresIn, seconds)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

func parseExpiresInString(raw string) (time.Duration, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidExpiresIn)
	}
	split := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if split == -1 {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidExpiresIn, raw)
		}
		return time.Duration(n * float64(time.Millisecond)), nil
	}
	n, err := strconv.ParseFloat(s[:split], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExpiresIn, raw)
	}
	unit, ok := unitDurations[strings.TrimSpace(s[split:])]
	if !ok || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExpiresIn, raw)
	}
	return time.Duration(n * float64(unit)), nil
}
