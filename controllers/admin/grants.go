package adminController

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daraghmehsaleh9-dot/Saleh/auth"
	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

// CreateAdminGrant records an email as an admin and pushes the isAdmin claim
// to the identity provider right away. Guarded by the service API key, not a
// session: grants are provisioned by ops tooling, not from the storefront.
func CreateAdminGrant(db *gorm.DB, svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))

		grant := models.AdminGrant{Email: email}
		if err := db.Where("email = ?", email).FirstOrCreate(&grant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save grant"})
			return
		}

		if err := applyGrant(c.Request.Context(), db, svc, &grant); err != nil {
			// The account may not exist yet; the reconciler retries later.
			log.Println("⚠️ Admin claim not applied yet for", email, ":", err)
			c.JSON(http.StatusAccepted, gin.H{"message": "Grant recorded, claim pending", "data": grant})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Admin granted", "data": grant})
	}
}

// GetAdminGrants lists every grant row with its applied state.
func GetAdminGrants(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var grants []models.AdminGrant
		if err := db.Order("created_at desc").Find(&grants).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch grants"})
			return
		}
		c.JSON(http.StatusOK, grants)
	}
}

// DeleteAdminGrant removes a grant row. The custom claim stays on the account
// until its sessions are revoked; callers that need immediate demotion should
// revoke sessions through the identity provider as well.
func DeleteAdminGrant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.AdminGrant{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete grant"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Grant not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Grant deleted"})
	}
}

func applyGrant(ctx context.Context, db *gorm.DB, svc *auth.Service, grant *models.AdminGrant) error {
	if err := svc.SetAdminClaim(ctx, grant.Email); err != nil {
		return err
	}
	now := time.Now()
	return db.Model(grant).Updates(map[string]any{"granted": true, "granted_at": &now}).Error
}

// ReconcilePendingGrants retries claim propagation for grants created before
// their account existed. Runs until ctx is cancelled.
func ReconcilePendingGrants(ctx context.Context, db *gorm.DB, svc *auth.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var pending []models.AdminGrant
			if err := db.Where("granted = ?", false).Find(&pending).Error; err != nil {
				log.Println("❌ Failed to load pending grants:", err)
				continue
			}
			for i := range pending {
				if err := applyGrant(ctx, db, svc, &pending[i]); err != nil {
					log.Println("⚠️ Grant still pending for", pending[i].Email, ":", err)
					continue
				}
				log.Println("✅ Admin claim applied for", pending[i].Email)
			}
		}
	}
}
