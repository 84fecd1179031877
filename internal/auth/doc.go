// Package auth provides authentication and authorization for the application.
//
// It covers password accounts (bcrypt), Google OAuth ID-token login, and
// stateless JWT session tokens presented as Bearer credentials. Tokens are
// self-contained and never stored server-side; logout is client-side only.
//
// # Configuration
//
//	AUTH_JWT_SECRET=<secret>        # Required; startup fails without it
//	AUTH_TOKEN_LIFETIME=168h        # Session token lifetime (7 days default)
//	AUTH_BCRYPT_COST=10             # bcrypt cost factor
//	GOOGLE_OAUTH_CLIENT_ID=<id>     # Enables the oauth login method
//
// # Usage
//
// Initialize authentication in entrypoint:
//
//	issuer := auth.NewTokenIssuer(cfg.Auth)
//	service := auth.NewService(userRepo, issuer, verifier, cfg.Auth)
//	protected.Use(auth.NewMiddleware(issuer).Handler())
//
// Extract user in handlers:
//
//	ownerID := auth.GetUserID(c)
package auth
