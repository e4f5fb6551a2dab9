package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", 15*time.Minute)

	token, err := m.GenerateAccessToken("user-1", "asha.rao@itbhu.ac.in")
	require.NoError(t, err)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "asha.rao@itbhu.ac.in", claims.Email)
}

func TestJWTWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", 15*time.Minute)
	other := NewJWTManager("different-secret", 15*time.Minute)

	token, err := m.GenerateAccessToken("user-1", "a@b.c")
	require.NoError(t, err)

	_, err = other.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.GenerateAccessToken("user-1", "a@b.c")
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestAllowlist(t *testing.T) {
	a := NewAllowlist([]string{"Dean@itbhu.ac.in", " registrar@itbhu.ac.in "})

	assert.True(t, a.Contains("dean@itbhu.ac.in"))
	assert.True(t, a.Contains("DEAN@ITBHU.AC.IN"))
	assert.True(t, a.Contains("registrar@itbhu.ac.in"))
	assert.False(t, a.Contains("student@itbhu.ac.in"))
	assert.False(t, a.Contains(""))
}

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasherWithCost(4) // low cost keeps the test fast

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, h.Compare(hash, "correct horse battery staple"))
	assert.Error(t, h.Compare(hash, "wrong password"))
}
