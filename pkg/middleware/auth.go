package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-social/pkg/jwt"
	"github.com/weiawesome/wes-social/pkg/log"
	"github.com/weiawesome/wes-social/pkg/response"
)

const (
	UserIDKey     = log.FieldUserID
	AuthHeaderKey = "Authorization"
)

// TokenVerifier resolves a token to the account id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddleware validates identity tokens with the token service.
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// ExtractToken returns the second space-separated segment of an Authorization
// header. Any scheme word is accepted.
func ExtractToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth returns a Gin middleware that rejects requests without a valid token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			response.Unauthorized(c, "user not logged in")
			return
		}

		token, ok := ExtractToken(authHeader)
		if !ok {
			response.Unauthorized(c, "user not logged in")
			return
		}

		accountID, err := m.verifier.Verify(token)
		if err != nil {
			l := log.Ctx(c.Request.Context())
			l.Debug().Str("reason", jwt.KindOf(err).String()).Msg("token rejected")
			response.Unauthorized(c, "invalid token")
			return
		}

		c.Set(UserIDKey, accountID)

		c.Request = c.Request.WithContext(log.WithActor(c.Request.Context(), accountID))

		c.Next()
	}
}

// GetUserID extracts the authenticated account id from Gin context.
func GetUserID(c *gin.Context) string {
	if id, exists := c.Get(UserIDKey); exists {
		return id.(string)
	}
	return ""
}
