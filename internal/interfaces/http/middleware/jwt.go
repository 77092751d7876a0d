package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kyrec/backend/internal/infrastructure/auth"
	"github.com/kyrec/backend/internal/interfaces/http/dto"
)

// JWT context keys
const (
	JWTClaimsKey      = "jwt_claims"
	JWTCompanyIDKey   = "jwt_company_id"
	JWTCompanyNameKey = "jwt_company_name"
	JWTIsAdminKey     = "jwt_is_admin"
	AuthHeaderKey     = "Authorization"
	BearerPrefix      = "Bearer "
)

// JWTAuthMiddleware validates the session token and stores its claims on
// the request context
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if err == auth.ErrExpiredToken {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTCompanyIDKey, claims.CompanyID)
		c.Set(JWTCompanyNameKey, claims.CompanyName)
		c.Set(JWTIsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin rejects requests whose session does not belong to an admin
// account. Must run after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetJWTIsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Admin access required"))
			return
		}
		c.Next()
	}
}

// GetJWTCompanyID returns the authenticated company ID, or ""
func GetJWTCompanyID(c *gin.Context) string {
	return c.GetString(JWTCompanyIDKey)
}

// GetJWTIsAdmin reports whether the session belongs to an admin account
func GetJWTIsAdmin(c *gin.Context) bool {
	return c.GetBool(JWTIsAdminKey)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}
