package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnloop-backend/internal/service"
	"learnloop-backend/utilities"
)

const sessionCookieMaxAge = 60 * 60 * 24 * 7 // 7 days

type AuthController struct {
	AuthService   service.AuthService
	SecureCookies bool
}

func NewAuthController(authService service.AuthService, secureCookies bool) *AuthController {
	return &AuthController{
		AuthService:   authService,
		SecureCookies: secureCookies,
	}
}

// Callback handles GET /auth/callback: trades the authorization code for a
// session, stores the access token in the session cookie, and sends the user
// home. Anything that goes wrong also sends the user home, without a cookie.
func (ac *AuthController) Callback(c *gin.Context) {
	code := c.Query("code")
	if code != "" {
		session, err := ac.AuthService.ExchangeCode(c.Request.Context(), code)
		if err == nil {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(utilities.SessionCookieName, session.AccessToken, sessionCookieMaxAge, "/", "", ac.SecureCookies, true)
			c.Redirect(http.StatusFound, "/")
			return
		}
		utilities.Error("auth code exchange failed: %v", err)
	}

	c.Redirect(http.StatusFound, "/")
}

// Me handles GET /auth/me: resolves the session cookie to the signed-in user,
// or null. Never an error status; a broken session is just a signed-out user.
func (ac *AuthController) Me(c *gin.Context) {
	token, err := c.Cookie(utilities.SessionCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	user, err := ac.AuthService.ResolveUser(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"displayName": user.DisplayName(),
		},
	})
}

type signupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// Signup handles POST /auth/signup.
func (ac *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := ac.AuthService.Signup(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"displayName": user.DisplayName(),
		},
	})
}
