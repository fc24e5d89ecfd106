package delivery

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"taskmanager-backend/internal/apperr"
	authdto "taskmanager-backend/internal/auth/dto"
	"taskmanager-backend/internal/auth/usecase"
	imagepkg "taskmanager-backend/pkg/image"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// allowedUserUpdates is the whitelist for PATCH /users/me. One disallowed key
// fails the whole request; no field is applied.
var allowedUserUpdates = map[string]bool{
	"name":     true,
	"age":      true,
	"email":    true,
	"password": true,
}

// AuthHandler handles account-related HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

func (h *AuthHandler) respondError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "fields": ve.Fields})
	case errors.Is(err, apperr.ErrAuth):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// Signup creates a new account
// POST /users
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Signup(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login verifies credentials and issues a session token
// POST /users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout revokes the token this request authenticated with
// POST /users/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	user := CurrentUser(c)
	token := c.GetString("token")

	if err := h.authUsecase.Logout(token); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %s has been logged out", user.Name)})
}

// LogoutAll revokes every token the user holds
// POST /users/logoutall
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	user := CurrentUser(c)

	if err := h.authUsecase.LogoutAll(user.ID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %s has been logged out on all devices", user.Name)})
}

// Me returns the authenticated user's profile
// GET /users/me
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentUser(c))
}

// UpdateMe applies a partial profile update
// PATCH /users/me
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	// Bind the raw key set first so a disallowed key rejects the request
	// before anything else happens.
	var raw map[string]interface{}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for key := range raw {
		if !allowedUserUpdates[key] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update inputs"})
			return
		}
	}

	var req authdto.UpdateUserRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := CurrentUser(c)
	if err := h.authUsecase.UpdateProfile(user, &req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteMe deletes the account and everything it owns
// DELETE /users/me
func (h *AuthHandler) DeleteMe(c *gin.Context) {
	user := CurrentUser(c)

	if err := h.authUsecase.DeleteAccount(user); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": fmt.Sprintf("User %s successfully deleted", user.Name)})
}

// UploadAvatar stores a normalized profile picture
// POST /users/me/avatar
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusNotAcceptable, gin.H{"error": "avatar file is required"})
		return
	}
	if fileHeader.Size > imagepkg.MaxUploadSize {
		c.JSON(http.StatusNotAcceptable, gin.H{"error": "image must be at most 1MB"})
		return
	}
	if !imagepkg.ValidFilename(fileHeader.Filename) {
		c.JSON(http.StatusNotAcceptable, gin.H{"error": "image files can only be .jpg, .jpeg or .png"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, imagepkg.MaxUploadSize+1))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if len(data) > imagepkg.MaxUploadSize {
		c.JSON(http.StatusNotAcceptable, gin.H{"error": "image must be at most 1MB"})
		return
	}

	// The extension check above is advisory only; the payload must
	// actually decode as an image.
	normalized, err := imagepkg.Normalize(data)
	if err != nil {
		c.JSON(http.StatusNotAcceptable, gin.H{"error": "uploaded file is not a valid image"})
		return
	}

	if err := h.authUsecase.SetAvatar(CurrentUser(c), normalized); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "your photo was uploaded successfully"})
}

// DeleteAvatar removes the profile picture
// DELETE /users/me/avatar
func (h *AuthHandler) DeleteAvatar(c *gin.Context) {
	if err := h.authUsecase.ClearAvatar(CurrentUser(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "your profile picture was removed"})
}

// GetAvatar serves a user's avatar publicly
// GET /users/:id/avatar
func (h *AuthHandler) GetAvatar(c *gin.Context) {
	avatar, err := h.authUsecase.GetAvatar(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", avatar)
}
