package session

import (
	"time"

	"offer-console/internal/pkg/clock"
	"offer-console/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialsProvider supplies the bearer token for outgoing API calls.
// It is passed explicitly to every network-issuing component; nothing reads
// the token from ambient global state.
type CredentialsProvider interface {
	Token() (string, error)
}

// StaticProvider holds a token handed in at startup. Refresh and storage
// mechanics belong to whatever issued the token.
type StaticProvider struct {
	token string
	clock clock.Clock
}

func NewStaticProvider(token string, clk clock.Clock) *StaticProvider {
	return &StaticProvider{token: token, clock: clk}
}

func (p *StaticProvider) Token() (string, error) {
	if p.token == "" {
		return "", errs.ErrNoSessionToken
	}
	if expired, err := tokenExpired(p.token, p.clock.Now()); err == nil && expired {
		return "", errs.ErrSessionExpired
	}
	return p.token, nil
}

// tokenExpired inspects the exp claim without verifying the signature.
// The server is the authority; this only avoids issuing calls that are
// guaranteed to come back 401.
func tokenExpired(token string, now time.Time) (bool, error) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		// Opaque (non-JWT) tokens are fine; let the server decide
		return false, err
	}
	if claims.ExpiresAt == nil {
		return false, nil
	}
	return claims.ExpiresAt.Before(now), nil
}
