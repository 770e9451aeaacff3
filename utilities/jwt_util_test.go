package utilities

import (
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

func signToken(t *testing.T, secret []byte, claims SessionClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestValidateSessionToken(t *testing.T) {
	token := signToken(t, testSecret, SessionClaims{
		Email: "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := ValidateSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestValidateSessionTokenExpired(t *testing.T) {
	token := signToken(t, testSecret, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := ValidateSessionToken(token, testSecret)
	assert.Error(t, err)
}

func TestValidateSessionTokenWrongSecret(t *testing.T) {
	token := signToken(t, []byte("other-secret"), SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})

	_, err := ValidateSessionToken(token, testSecret)
	assert.Error(t, err)
}

func TestValidateSessionTokenGarbage(t *testing.T) {
	_, err := ValidateSessionToken("not-a-jwt", testSecret)
	assert.Error(t, err)
}

func identityProbe(t *testing.T, secret []byte, cookie *http.Cookie) (string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var userID, email string
	r := gin.New()
	r.Use(IdentityMiddleware(secret))
	r.GET("/probe", func(c *gin.Context) {
		userID = c.GetString("user_id")
		email = c.GetString("email")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return userID, email
}

func TestIdentityMiddlewareSetsIdentity(t *testing.T) {
	token := signToken(t, testSecret, SessionClaims{
		Email: "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	userID, email := identityProbe(t, testSecret, &http.Cookie{Name: SessionCookieName, Value: token})
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "ada@example.com", email)
}

func TestIdentityMiddlewarePassesThroughWithoutCookie(t *testing.T) {
	userID, email := identityProbe(t, testSecret, nil)
	assert.Empty(t, userID)
	assert.Empty(t, email)
}

func TestIdentityMiddlewarePassesThroughOnBadToken(t *testing.T) {
	userID, _ := identityProbe(t, testSecret, &http.Cookie{Name: SessionCookieName, Value: "stale"})
	assert.Empty(t, userID)
}
