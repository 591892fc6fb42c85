package handlers

import (
	"errors"
	"net/http"
	"strings"

	"traffic-management-api/models"
	"traffic-management-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db          *gorm.DB
	authService *services.AuthService
}

func NewAuthHandler(db *gorm.DB, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{db: db, authService: authService}
}

type SignInRequest struct {
	EmailID  string `json:"email_id"`
	Password string `json:"password"`
}

// SignIn authenticates a user and issues a bearer token bound to the
// account email. Unknown email and wrong password are deliberately
// indistinguishable in the response.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmailID == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email_id and password are required"})
		return
	}

	var user models.User
	if err := h.db.Where("email_id = ?", req.EmailID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  401,
				"message": "failed",
				"Error":   "Access Denied",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "error": err.Error()})
		return
	}

	if !h.authService.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  401,
			"message": "failed",
			"Error":   "Access Denied",
		})
		return
	}

	token, err := h.authService.GenerateToken(user.UserID, user.EmailID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"credentials": gin.H{
			"id":    user.UserID,
			"email": user.EmailID,
			"token": token,
		},
	})
}

// Validate answers 200 when the Authorization header carries a valid
// bearer token. This is the endpoint the RemoteValidator adapter
// targets; it never touches the database.
func (h *AuthHandler) Validate(c *gin.Context) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
		return
	}

	if _, err := h.authService.ValidateToken(parts[1]); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
