package middleware

import (
	"net/http"
	"os"
	"strings"
	"sync"

	"taxengine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Roles carried in the "role" claim of tokens issued by the identity service
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

var (
	// ReadRoles may query the tax catalog and run calculations
	ReadRoles = []string{RoleAdmin, RoleManager, RoleStaff}
	// WriteRoles may change the tax catalog
	WriteRoles = []string{RoleAdmin, RoleManager}
)

var (
	secretMu  sync.RWMutex
	jwtSecret []byte
)

// SetJWTSecret overrides the signing secret read from JWT_SECRET
func SetJWTSecret(secret []byte) {
	secretMu.Lock()
	jwtSecret = secret
	secretMu.Unlock()
}

func GetJWTSecret() []byte {
	secretMu.RLock()
	configured := jwtSecret
	secretMu.RUnlock()
	if len(configured) > 0 {
		return configured
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		secret = "default_super_secret_key" // Development fallback only
	}
	return []byte(secret)
}

// ParseToken validates an HMAC-signed token and returns its claims
func ParseToken(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// HasRole reports whether role is one of allowed
func HasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// RequireRole Middleware validates the JWT token and checks if the user's role exists in the allowedRoles list
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Try cookie first, fallback to Authorization header
		tokenString, cookieErr := c.Cookie("access_token")
		if cookieErr != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				abort(c, http.StatusUnauthorized, "Authorization is missing")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				abort(c, http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'")
				return
			}
			tokenString = parts[1]
		}

		claims, err := ParseToken(tokenString, GetJWTSecret())
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		userRole, ok := claims["role"].(string)
		if !ok {
			abort(c, http.StatusForbidden, "Role not found in token")
			return
		}
		if !HasRole(userRole, allowedRoles) {
			abort(c, http.StatusForbidden, "Access denied: insufficient permissions")
			return
		}

		userID, _ := claims["sub"].(string)
		c.Set("userID", userID)
		c.Set("userRole", userRole)

		c.Next()
	}
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, response.Fail(status, message))
}
