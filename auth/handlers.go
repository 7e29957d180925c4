package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

// POST /auth/anonymous
//
// Auto-provisions an anonymous identity plus its empty cart and hands back a
// session token. Called on first visit, before any sign-up.
func AnonymousHandler(db *gorm.DB, svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := svc.CreateAnonymousIdentity(c.Request.Context())
		if err != nil {
			log.Printf("❌ Anonymous sign-in failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create anonymous identity"})
			return
		}

		user := models.User{
			ID:          uid,
			IsAnonymous: true,
			Cart:        models.Cart{UserID: uid},
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		token, err := IssueSessionToken(SessionClaims{UserID: uid, Anonymous: true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

type signupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

// POST /auth/signup
//
// With an anonymous bearer token the identity is upgraded in place: the same
// UID gains credentials, so the cart document needs no resync. Without one a
// fresh permanent identity is created.
func SignupHandler(db *gorm.DB, svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input signupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if sc, ok := bearerClaims(c); ok && sc.Anonymous {
			upgradeAnonymous(c, db, svc, sc.UserID, input)
			return
		}

		uid, err := svc.CreateIdentity(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			log.Printf("❌ Sign-up failed for %s: %v", input.Email, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create account"})
			return
		}

		user := models.User{
			ID:    uid,
			Email: input.Email,
			Name:  input.Name,
			Cart:  models.Cart{UserID: uid},
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		token, err := IssueSessionToken(SessionClaims{UserID: uid, Email: input.Email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
	}
}

func upgradeAnonymous(c *gin.Context, db *gorm.DB, svc *Service, uid string, input signupInput) {
	if err := svc.UpgradeIdentity(c.Request.Context(), uid, input.Email, input.Password); err != nil {
		log.Printf("❌ Upgrade failed for %s: %v", uid, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to attach credentials"})
		return
	}

	var user models.User
	if err := db.Preload("Cart.Items").First(&user, "id = ?", uid).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User not found"})
		return
	}
	updates := map[string]interface{}{"email": input.Email, "is_anonymous": false}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	token, err := IssueSessionToken(SessionClaims{UserID: uid, Email: input.Email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token, "upgraded": true})
}

// POST /auth/login
//
// The client completes the password flow against Firebase and sends the ID
// token; the server verifies it, reads the isAdmin custom claim and issues a
// session token carrying it.
func LoginHandler(db *gorm.DB, svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"idToken" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		token, err := svc.VerifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		isAdmin, _ := token.Claims["isAdmin"].(bool)

		var user models.User
		err = db.Preload("Cart.Items").First(&user, "id = ?", token.UID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				ID:    token.UID,
				Email: email,
				Name:  name,
				Cart:  models.Cart{UserID: token.UID},
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		case err == nil:
			db.Model(&user).Updates(map[string]interface{}{"email": email, "is_anonymous": false})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		sessionToken, err := IssueSessionToken(SessionClaims{
			UserID:  token.UID,
			Email:   email,
			IsAdmin: isAdmin,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  "Login successful",
			"user":     user,
			"is_admin": isAdmin,
			"token":    sessionToken,
		})
	}
}

// POST /auth/logout (authenticated)
func LogoutHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if err := svc.RevokeSessions(c.Request.Context(), userID); err != nil {
			log.Printf("❌ Failed to revoke sessions for %s: %v", userID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to sign out"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}

// bearerClaims parses an optional Authorization header into session claims.
func bearerClaims(c *gin.Context) (SessionClaims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return SessionClaims{}, false
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")
	sc, err := ParseSessionToken(tokenString)
	if err != nil {
		return SessionClaims{}, false
	}
	return sc, true
}
