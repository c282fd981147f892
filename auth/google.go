package auth

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"github.com/verdano-shop/storefront-api/models"
)

type googleLoginInput struct {
	IDToken string `json:"id_token" binding:"required"`
}

// POST /auth/google
//
// Verifies a Google ID token, finds or creates the user, and issues a
// session. First sign-ins are flagged with is_new_user for the welcome flow.
func GoogleLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input googleLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		payload, err := idtoken.Validate(c.Request.Context(), input.IDToken, os.Getenv("GOOGLE_CLIENT_ID"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
			return
		}

		email, _ := payload.Claims["email"].(string)
		name, _ := payload.Claims["name"].(string)
		picture, _ := payload.Claims["picture"].(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is missing an email claim"})
			return
		}

		var user models.User
		isNewUser := false

		err = db.Where("email = ?", email).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Google users never log in with this password; it only keeps
			// the not-null column satisfied.
			hash, hashErr := bcrypt.GenerateFromPassword([]byte("google-auth-"+payload.Subject), bcryptCost)
			if hashErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
			user = models.User{
				ID:       uuid.NewString(),
				Name:     name,
				Email:    email,
				Password: string(hash),
				Picture:  picture,
				Provider: "google",
				Role:     models.RoleUser,
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
			isNewUser = true
			log.Printf("✅ New Google user created: %s", user.Email)

		case err == nil:
			// Refresh profile fields on every sign-in.
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})

		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		token, err := IssueToken(user.ID, user.Role, isNewUser)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		setSessionCookie(c, token)

		c.JSON(http.StatusOK, gin.H{
			"message":     "Login successful",
			"user":        user,
			"token":       token,
			"is_new_user": isNewUser,
		})
	}
}
