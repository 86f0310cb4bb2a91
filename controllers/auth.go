// controllers/auth.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solonest-backend/models"
	"solonest-backend/utils"
)

// AuthController implements the fake login. Any non-empty email and
// password pair succeeds; the only thing "logged in" means is that the
// profile blob exists. This is not a security boundary.
type AuthController struct {
	Sessions *utils.SessionStore
}

type RegisterInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// Register writes the same profile blob as Login; the password is
// checked against its confirmation and then discarded.
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	profile := models.UserProfile{
		Name:       input.Name,
		Email:      input.Email,
		Profession: utils.DefaultProfession,
		Avatar:     "/placeholder.svg",
	}

	if err := ac.Sessions.Save(profile); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save session")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully! Welcome to Solonest.",
		"user":    profile,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name := input.Name
	if name == "" {
		name = "John Doe"
	}
	profile := models.UserProfile{
		Name:       name,
		Email:      input.Email,
		Profession: utils.DefaultProfession,
		Avatar:     "/placeholder.svg",
	}

	if err := ac.Sessions.Save(profile); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome back! You're now logged in.",
		"user":    profile,
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	profile, ok, err := ac.Sessions.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read session")
		return
	}
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Sessions.Clear(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "You've been logged out successfully."})
}

// SessionRequired gates the API on the login blob being present. It
// checks nothing beyond existence: no token, no expiry.
func (ac *AuthController) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok, err := ac.Sessions.Load()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}

		c.Set("user", profile)
		c.Next()
	}
}
