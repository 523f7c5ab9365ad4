package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/QuangTung97/donation-ledger/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func newConf() config.AuthConfig {
	return config.AuthConfig{
		Secret:     "test-secret",
		Issuer:     "donation-ledger",
		TTLSeconds: 3600,
	}
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newIssuer(conf config.AuthConfig, now time.Time) *Issuer {
	i := NewIssuer(conf)
	i.now = func() time.Time { return now }
	return i
}

func TestIssueAndVerify(t *testing.T) {
	now := newTime("2026-10-17T10:00:00Z")
	token, err := newIssuer(newConf(), now).Issue("ngo-user-1")
	assert.Equal(t, nil, err)

	v := NewVerifier(newConf(), WithTimeFunc(func() time.Time {
		return now.Add(30 * time.Minute)
	}))

	userID, err := v.Verify(token)
	assert.Equal(t, nil, err)
	assert.Equal(t, "ngo-user-1", userID)
}

func TestIssue_EmptyUser(t *testing.T) {
	_, err := NewIssuer(newConf()).Issue("")
	assert.Equal(t, "empty user id", err.Error())
}

func TestVerify_Rejected(t *testing.T) {
	now := newTime("2026-10-17T10:00:00Z")

	otherSecret := newConf()
	otherSecret.Secret = "another-secret"

	otherIssuer := newConf()
	otherIssuer.Issuer = "someone-else"

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "ngo-user-1",
		Issuer:    "donation-ledger",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.Equal(t, nil, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "ngo-user-1",
		Issuer:  "donation-ledger",
	}).SignedString([]byte("test-secret"))
	assert.Equal(t, nil, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "donation-ledger",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	assert.Equal(t, nil, err)

	valid, err := newIssuer(newConf(), now).Issue("ngo-user-1")
	assert.Equal(t, nil, err)

	wrongSecret, err := newIssuer(otherSecret, now).Issue("ngo-user-1")
	assert.Equal(t, nil, err)

	wrongIssuer, err := newIssuer(otherIssuer, now).Issue("ngo-user-1")
	assert.Equal(t, nil, err)

	table := []struct {
		name  string
		token string
		now   time.Time
	}{
		{name: "garbage", token: "not-a-token", now: now},
		{name: "expired", token: valid, now: now.Add(2 * time.Hour)},
		{name: "wrong-secret", token: wrongSecret, now: now},
		{name: "wrong-issuer", token: wrongIssuer, now: now},
		{name: "none-method", token: noneToken, now: now},
		{name: "no-expiry", token: noExpiry, now: now},
		{name: "no-subject", token: noSubject, now: now},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			checkTime := e.now
			v := NewVerifier(newConf(), WithTimeFunc(func() time.Time { return checkTime }))

			userID, err := v.Verify(e.token)
			assert.True(t, errors.Is(err, ErrUnauthenticated))
			assert.Equal(t, "", userID)
		})
	}
}
