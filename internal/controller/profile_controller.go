package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"learnloop-backend/internal/service"
	"learnloop-backend/utilities"
)

type ProfileController struct {
	ProfileService service.ProfileService
}

func NewProfileController(profileService service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// Get handles GET /api/profile. A user without a profile gets a null profile,
// not an error.
func (pc *ProfileController) Get(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		userID = c.GetString("user_id")
	}
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	profile, err := pc.ProfileService.GetProfile(userID)
	if err != nil {
		utilities.Error("error fetching profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Post handles POST /api/profile; conflicts when the profile already exists.
func (pc *ProfileController) Post(c *gin.Context) {
	var req service.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	profile, err := pc.ProfileService.CreateProfile(req)
	if errors.Is(err, service.ErrProfileExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "Profile already exists. Use PUT to update."})
		return
	}
	if err != nil {
		utilities.Error("error creating profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

// Put handles PUT /api/profile: creates when absent, otherwise updates only
// the fields the client sent.
func (pc *ProfileController) Put(c *gin.Context) {
	var req service.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	profile, created, err := pc.ProfileService.UpsertProfile(req)
	if err != nil {
		utilities.Error("error updating profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"profile": profile})
}
