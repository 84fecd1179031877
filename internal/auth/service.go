package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/plakhov/taskboard/internal/config"
	"github.com/plakhov/taskboard/internal/database/users"
	"github.com/plakhov/taskboard/internal/entities"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOAuthDisabled      = errors.New("oauth login is not configured")
)

// Service orchestrates signup and login over the credential store, the
// password hasher and the session issuer. All dependencies are injected at
// construction; nothing is read from ambient global state.
type Service struct {
	users    *users.Repository
	issuer   *TokenIssuer
	verifier IdentityVerifier
	config   config.Auth
}

// NewService creates a new authentication service. verifier may be nil,
// which disables the OAuth login method.
func NewService(repo *users.Repository, issuer *TokenIssuer, verifier IdentityVerifier, cfg config.Auth) *Service {
	return &Service{
		users:    repo,
		issuer:   issuer,
		verifier: verifier,
		config:   cfg,
	}
}

// Signup registers an internal account and returns a session token.
func (s *Service) Signup(email, username, password string) (string, error) {
	hash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return "", err
	}

	user, err := s.users.Create(email, username, hash, entities.AccountTypeInternal)
	if err != nil {
		return "", err
	}

	return s.issuer.Issue(user)
}

// Login authenticates an internal account by email and password. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issuer.Issue(user)
}

// LoginOAuth verifies a third-party ID token, creating a local account on
// first login, and returns a session token. A token that fails verification
// creates nothing.
func (s *Service) LoginOAuth(idToken string) (string, error) {
	if s.verifier == nil {
		return "", ErrOAuthDisabled
	}

	identity, err := s.verifier.Verify(idToken)
	if err != nil {
		// Verifier detail stays server-side; the client only learns that
		// authentication failed.
		log.Printf("OAuth verification failed: %v", err)
		return "", ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(identity.Email)
	if err != nil {
		if !errors.Is(err, users.ErrNotFound) {
			return "", fmt.Errorf("failed to look up user: %w", err)
		}
		user, err = s.users.Create(identity.Email, oauthUsername(identity), "", entities.AccountTypeOAuth)
		if err != nil {
			return "", fmt.Errorf("failed to create oauth user: %w", err)
		}
		log.Printf("Created OAuth account for %s", user.Email)
	}

	return s.issuer.Issue(user)
}

// oauthUsername derives a store-valid username from verified OAuth claims.
// Prefers the given name, falls back to the email local part, and clamps
// to the username bounds.
func oauthUsername(identity *Identity) string {
	name := strings.TrimSpace(identity.GivenName)
	if name == "" {
		name, _, _ = strings.Cut(identity.Email, "@")
	}
	if runes := []rune(name); len(runes) > users.MaxUsernameLength {
		name = string(runes[:users.MaxUsernameLength])
	}
	for utf8.RuneCountInString(name) < users.MinUsernameLength {
		name += "_"
	}
	return name
}
