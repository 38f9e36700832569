package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return s
}

func newAuthRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetJWTSecret(testSecret)

	r := gin.New()
	r.GET("/protected", RequireRole(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString("userID"), "role": c.GetString("userRole")})
	})
	return r
}

func TestRequireRole(t *testing.T) {
	valid := func(role string) string {
		return signToken(t, jwt.MapClaims{"sub": "u-1", "role": role, "exp": time.Now().Add(time.Hour).Unix()}, testSecret)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + valid(RoleAdmin), http.StatusUnauthorized},
		{"bad signature", "Bearer " + signToken(t, jwt.MapClaims{"role": RoleAdmin}, []byte("other")), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, jwt.MapClaims{"role": RoleAdmin, "exp": time.Now().Add(-time.Minute).Unix()}, testSecret), http.StatusUnauthorized},
		{"no role", "Bearer " + signToken(t, jwt.MapClaims{"sub": "u-1"}, testSecret), http.StatusForbidden},
		{"staff on write route", "Bearer " + valid(RoleStaff), http.StatusForbidden},
		{"manager allowed", "Bearer " + valid(RoleManager), http.StatusOK},
	}

	router := newAuthRouter(WriteRoles...)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want != http.StatusOK {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, false, body["success"])
				assert.EqualValues(t, tt.want, body["status_code"])
			}
		})
	}
}

func TestRequireRole_CookieAndContext(t *testing.T) {
	router := newAuthRouter(ReadRoles...)
	token := signToken(t, jwt.MapClaims{"sub": "u-42", "role": RoleStaff}, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"u-42","role":"staff"}`, w.Body.String())
}

func TestParseToken_RejectsNonHMAC(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"role": RoleAdmin})
	s, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(s, testSecret)
	assert.Error(t, err)
}
