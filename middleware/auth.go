package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"traffic-management-api/config"
	"traffic-management-api/services"

	"github.com/gin-gonic/gin"
)

// ErrValidatorUnreachable marks transport failures reaching a remote
// validator, so the gate can answer 500 instead of 403.
var ErrValidatorUnreachable = errors.New("unable to reach token validator")

// TokenValidator checks a full Authorization header value. A nil error
// means the bearer token is valid; claims are returned when the
// validator can decode them (the remote adapter cannot).
type TokenValidator interface {
	Validate(ctx context.Context, authHeader string) (*services.Claims, error)
}

// LocalValidator verifies tokens in-process through the AuthService.
type LocalValidator struct {
	auth *services.AuthService
}

func NewLocalValidator(auth *services.AuthService) *LocalValidator {
	return &LocalValidator{auth: auth}
}

func (v *LocalValidator) Validate(_ context.Context, authHeader string) (*services.Claims, error) {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 {
		return nil, errors.New("malformed authorization header")
	}
	return v.auth.ValidateToken(parts[1])
}

// RemoteValidator forwards the Authorization header to a validation
// endpoint (e.g. another instance's /auth/validate) and trusts its
// status code. Kept as an adapter for cross-service deployments; the
// in-process LocalValidator is the default.
type RemoteValidator struct {
	url    string
	client *http.Client
}

func NewRemoteValidator(cfg config.AuthConfig) *RemoteValidator {
	return &RemoteValidator{
		url: cfg.ValidateURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

func (v *RemoteValidator) Validate(ctx context.Context, authHeader string) (*services.Claims, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidatorUnreachable, err)
	}
	req.Header.Set("Authorization", authHeader)

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidatorUnreachable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("validator rejected token: status %d", resp.StatusCode)
	}
	return nil, nil
}

// ClaimsKey is where RequireAuth stores decoded claims on the gin
// context, when the validator produced any.
const ClaimsKey = "claims"

// RequireAuth is the gate every protected route runs before touching
// the database. Missing or blank credentials answer 401, a well-formed
// but rejected token answers 403, and a validator transport failure
// answers 500. Handlers behind it never re-interpret auth failures.
func RequireAuth(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.TrimSpace(authHeader) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  401,
				"message": "Unauthorized: Authorization token is required",
			})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  401,
				"message": "Unauthorized: Authorization token cannot be empty",
			})
			return
		}

		claims, err := v.Validate(c.Request.Context(), authHeader)
		if err != nil {
			if errors.Is(err, ErrValidatorUnreachable) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"status":  500,
					"message": "Internal Server Error: Unable to validate token",
					"error":   err.Error(),
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  403,
				"message": "Forbidden: Invalid Authorization token",
			})
			return
		}

		if claims != nil {
			c.Set(ClaimsKey, claims)
		}
		c.Next()
	}
}
