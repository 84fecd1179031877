package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// googleJWKSURL serves Google's current ID-token signing keys.
const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

var ErrOAuthVerification = errors.New("oauth token verification failed")

// Identity is the minimal verified claim set extracted from an ID token,
// enough to resolve or create a local user.
type Identity struct {
	SubjectID string
	Email     string
	GivenName string
}

// IdentityVerifier validates a third-party ID token and extracts the
// verified identity claims.
type IdentityVerifier interface {
	Verify(idToken string) (*Identity, error)
}

// GoogleVerifier validates Google-issued ID tokens against Google's JWKS.
// Keys are fetched once and refreshed in the background by keyfunc.
type GoogleVerifier struct {
	audience string
	keyfunc  jwt.Keyfunc
}

// NewGoogleVerifier fetches Google's signing keys and returns a verifier
// bound to the given OAuth client id. The context bounds the lifetime of
// the background key refresh.
func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{googleJWKSURL})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google jwks: %w", err)
	}
	return &GoogleVerifier{
		audience: clientID,
		keyfunc:  jwks.Keyfunc,
	}, nil
}

// Verify checks signature, audience and expiry of an ID token and returns
// the identity claims. Verification is synchronous against the cached key
// set; the key refresh runs under the constructor's context. Every failure
// mode comes back as an error wrapping ErrOAuthVerification.
func (v *GoogleVerifier) Verify(idToken string) (*Identity, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, v.keyfunc,
		jwt.WithValidMethods([]string{"RS256", "ES256"}),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOAuthVerification, err)
	}
	if !token.Valid {
		return nil, ErrOAuthVerification
	}

	issuer, err := claims.GetIssuer()
	if err != nil || !isGoogleIssuer(issuer) {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrOAuthVerification, issuer)
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrOAuthVerification)
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: missing email claim", ErrOAuthVerification)
	}
	givenName, _ := claims["given_name"].(string)

	return &Identity{
		SubjectID: subject,
		Email:     email,
		GivenName: givenName,
	}, nil
}

func isGoogleIssuer(issuer string) bool {
	for _, allowed := range googleIssuers {
		if issuer == allowed {
			return true
		}
	}
	return false
}
