package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/QuangTung97/donation-ledger/config"
	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthenticated when a bearer token is missing or cannot be verified
var ErrUnauthenticated = errors.New("unauthenticated")

// Claims of an operator token, Subject is the NGO user id
type Claims struct {
	jwt.RegisteredClaims
}

// Issuer signs operator tokens
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer ...
func NewIssuer(conf config.AuthConfig) *Issuer {
	return &Issuer{
		secret: []byte(conf.Secret),
		issuer: conf.Issuer,
		ttl:    time.Duration(conf.TTLSeconds) * time.Second,
		now:    time.Now,
	}
}

// Issue returns a HS256 token for the user
func (i *Issuer) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("empty user id")
	}

	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})
	return token.SignedString(i.secret)
}

// Verifier checks operator tokens
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier ...
func NewVerifier(conf config.AuthConfig, options ...VerifierOption) *Verifier {
	opts := verifierOptions{now: time.Now}
	for _, fn := range options {
		fn(&opts)
	}

	return &Verifier{
		secret: []byte(conf.Secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(conf.Issuer),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(opts.now),
		),
	}
}

// Verify returns the user id of a valid token
func (v *Verifier) Verify(tokenString string) (string, error) {
	var claims Claims
	_, err := v.parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrUnauthenticated)
	}
	return claims.Subject, nil
}

type verifierOptions struct {
	now func() time.Time
}

// VerifierOption ...
type VerifierOption func(opts *verifierOptions)

// WithTimeFunc ...
func WithTimeFunc(now func() time.Time) VerifierOption {
	return func(opts *verifierOptions) {
		opts.now = now
	}
}
