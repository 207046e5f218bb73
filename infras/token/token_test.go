package token_test

import (
	"strings"
	"testing"
	"time"

	"travelog/config"
	"travelog/infras/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "travelog"
	cfg.Session.Secret = secret
	cfg.Session.MaxAgeDays = 7

	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	svc := token.New(newTestConfig("round-trip-secret"))

	signed, err := svc.Issue("demo@ejemplo.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	email, err := svc.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "demo@ejemplo.com", email)
}

func TestTokenRejectsTampering(t *testing.T) {
	svc := token.New(newTestConfig("tamper-secret"))

	signed, err := svc.Issue("demo@ejemplo.com")
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)

	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = svc.Parse(tampered)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestTokenRejectsForeignSecret(t *testing.T) {
	issuer := token.New(newTestConfig("secret-one"))
	verifier := token.New(newTestConfig("secret-two"))

	signed, err := issuer.Issue("demo@ejemplo.com")
	require.NoError(t, err)

	_, err = verifier.Parse(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestTokenRejectsGarbage(t *testing.T) {
	svc := token.New(newTestConfig("garbage-secret"))

	_, err := svc.Parse("not-a-token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestTokenMaxAgeDefaultsToOneWeek(t *testing.T) {
	cfg := newTestConfig("maxage-secret")
	cfg.Session.MaxAgeDays = 0

	svc := token.New(cfg)
	assert.Equal(t, 7*24*time.Hour, svc.MaxAge())
}
