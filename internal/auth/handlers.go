package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plakhov/taskboard/internal/database/users"
)

// Login methods accepted by the login endpoint.
const (
	MethodInternal = "internal"
	MethodOAuth    = "oauth"
)

// Controller handles the signup and login HTTP endpoints.
type Controller struct {
	service *Service
}

// NewController creates a new authentication controller.
func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Method     string `json:"method"`
	OAuthToken string `json:"oauth_token"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// Signup registers an internal account. The response body is the bare
// session token, matching what API clients of the v1 surface expect.
func (ctrl *Controller) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, username and password are required"})
		return
	}

	token, err := ctrl.service.Signup(req.Email, req.Username, req.Password)
	if err != nil {
		status, message := signupErrorStatus(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.String(http.StatusOK, token)
}

// Login authenticates with a password or an OAuth ID token and returns a
// session token.
func (ctrl *Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	method := req.Method
	if method == "" {
		method = MethodInternal
	}

	var token string
	var err error
	switch method {
	case MethodInternal:
		token, err = ctrl.service.Login(req.Email, req.Password)
	case MethodOAuth:
		if req.OAuthToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "oauth_token is required for oauth login"})
			return
		}
		token, err = ctrl.service.LoginOAuth(req.OAuthToken)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown login method"})
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		case errors.Is(err, ErrOAuthDisabled):
			c.JSON(http.StatusBadRequest, gin.H{"error": "oauth login is not configured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// signupErrorStatus maps signup failures to transport-level responses.
// Client mistakes are 400/409; anything else stays a generic 500.
func signupErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, users.ErrDuplicateEmail):
		return http.StatusConflict, err.Error()
	case errors.Is(err, users.ErrEmailInvalid),
		errors.Is(err, users.ErrUsernameInvalid),
		errors.Is(err, ErrPasswordTooShort),
		errors.Is(err, ErrPasswordTooLong):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
