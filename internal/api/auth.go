package api

import (
	"net/http" // HTTP status codes

	"villa_api/internal/dto"        // Wire-facing shapes
	"villa_api/internal/repository" // Auth service

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// LoginHandler authenticates a user and returns a signed token with the
// mapped user. Bad credentials produce a 400 envelope, never a token.
func LoginHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, err.Error()))
			return
		}
		resp, err := users.Login(&req) // Verify credentials and issue a token
		if err != nil {
			// Persistence or signing failure, return internal server error
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		// An empty result means the user is unknown or the password mismatched
		if resp.User == nil || resp.Token == "" {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "User or password is incorrect"))
			return
		}
		c.JSON(http.StatusOK, dto.OK(http.StatusOK, resp))
	}
}

// RegisterHandler registers a new user, rejecting duplicate usernames.
// Registration failures surface as errors instead of an empty success.
func RegisterHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegistrationRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, err.Error()))
			return
		}
		// Fast-path uniqueness check, case-insensitive like the login lookup
		unique, err := users.IsUniqueUser(req.UserName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		if !unique {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Username already exists"))
			return
		}
		user, err := users.Register(&req) // Create the user with a hashed password
		if err != nil {
			// Surface the failure; the unique index also lands here on a lost race
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Error while registering", err.Error()))
			return
		}
		// Log the registration with context
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // New user id
			"username": user.UserName, // Username
		}).Info("User registered")
		c.JSON(http.StatusOK, dto.OK(http.StatusOK, user))
	}
}
