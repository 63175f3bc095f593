package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer() *Issuer {
	return NewIssuer(Config{
		Secret:   []byte("test-secret"),
		Issuer:   "awards-test",
		Audience: "awards",
		TTL:      time.Hour,
	})
}

func TestIssueParseRoundTrip(t *testing.T) {
	issuer := newTestIssuer()

	token, err := issuer.Issue("a1", "voter@example.com")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "a1", claims.Subject)
	assert.Equal(t, "voter@example.com", claims.Email)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := newTestIssuer().Issue("a1", "voter@example.com")
	require.NoError(t, err)

	other := NewIssuer(Config{Secret: []byte("another-secret"), Issuer: "awards-test", Audience: "awards", TTL: time.Hour})
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsWrongAudience(t *testing.T) {
	foreign := NewIssuer(Config{Secret: []byte("test-secret"), Issuer: "awards-test", Audience: "elsewhere", TTL: time.Hour})
	token, err := foreign.Issue("a1", "voter@example.com")
	require.NoError(t, err)

	_, err = newTestIssuer().Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := newTestIssuer().Parse("not-a-token")
	assert.Error(t, err)
}
