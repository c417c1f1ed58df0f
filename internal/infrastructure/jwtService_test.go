package infrastructure

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key")

func TestParseToken_RoundTrip(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	token, err := IssueToken("alice", testSecret, now, 15*time.Minute)
	require.NoError(t, err)

	subject, err := ParseToken(token, testSecret, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestParseToken_Expired(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	token, err := IssueToken("alice", testSecret, now, 15*time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret, now.Add(16*time.Minute))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_WrongSecret(t *testing.T) {
	now := time.Now()
	token, err := IssueToken("alice", testSecret, now, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("another-secret"), now)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Malformed(t *testing.T) {
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := ParseToken(token, testSecret, time.Now())
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", token)
	}
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret, now)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_RequiresExpiry(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "alice"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret, time.Now())
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_RequiresSubject(t *testing.T) {
	now := time.Now()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret, now)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestIssueToken_EmptySubject(t *testing.T) {
	_, err := IssueToken("", testSecret, time.Now(), time.Hour)
	assert.Error(t, err)
}

func TestJWTService_UsesClock(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	current := issuedAt

	svc := NewJWTService("secret", time.Hour).WithClock(func() time.Time { return current })
	token, err := svc.GenerateToken("bob")
	require.NoError(t, err)

	subject, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "bob", subject)

	current = issuedAt.Add(2 * time.Hour)
	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
