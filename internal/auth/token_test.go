package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, token, secret string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	return claims
}

func TestNewTokenManager_Validation(t *testing.T) {
	_, err := NewTokenManager("", "issuer", time.Hour)
	assert.Error(t, err)
	_, err = NewTokenManager("secret", "issuer", 0)
	assert.Error(t, err)
}

func TestTokenManager_Issue(t *testing.T) {
	tm, err := NewTokenManager("secret", "accounts-test", time.Hour)
	require.NoError(t, err)
	fixed := time.Now().Truncate(time.Second)
	tm.now = func() time.Time { return fixed }

	token, err := tm.Issue(Claims{ID: 42, Email: "a@b.com", Username: "ana1"})
	require.NoError(t, err)

	claims := parse(t, token, "secret")
	assert.Equal(t, "accounts-test", claims["iss"])
	assert.Equal(t, "42", claims["sub"])
	assert.EqualValues(t, 42, claims["id"])
	assert.Equal(t, "a@b.com", claims["email"])
	assert.Equal(t, "ana1", claims["username"])
	assert.EqualValues(t, fixed.Add(time.Hour).Unix(), claims["exp"])
	assert.NotEmpty(t, claims["jti"])
}

func TestTokenManager_IssueDistinctTokens(t *testing.T) {
	tm, err := NewTokenManager("secret", "accounts-test", time.Hour)
	require.NoError(t, err)

	first, err := tm.Issue(Claims{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)
	second, err := tm.Issue(Claims{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	parse(t, first, "secret")
	parse(t, second, "secret")
}

func TestTokenManager_WrongSecretRejected(t *testing.T) {
	tm, err := NewTokenManager("secret", "accounts-test", time.Hour)
	require.NoError(t, err)
	token, err := tm.Issue(Claims{ID: 1})
	require.NoError(t, err)

	_, err = jwt.Parse(token, func(*jwt.Token) (any, error) { return []byte("other"), nil })
	assert.Error(t, err)
}
