package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daraghmehsaleh9-dot/Saleh/auth"
	"github.com/daraghmehsaleh9-dot/Saleh/cache"
	paymentControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/payment"
	"github.com/daraghmehsaleh9-dot/Saleh/gemini"
	"github.com/daraghmehsaleh9-dot/Saleh/i18n"
)

// Deps carries everything the handlers need. Built once in main and passed
// down explicitly; no package-level singletons.
type Deps struct {
	DB      *gorm.DB
	Auth    *auth.Service
	BuyNow  *cache.BuyNowStore
	Events  *cache.CartEvents
	Gateway *paymentControllers.Gateway
	Gemini  *gemini.Client
	I18n    *i18n.Store
}

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, d Deps) {
	// 1️⃣ Public routes (no middleware)
	SetupAuthRoutes(r, d)
	SetupCatalogRoutes(r, d)
	SetupChatRoutes(r, d)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, d)

	// 3️⃣ Payment routes (intent + checkout protected, callbacks public)
	SetupPaymentRoutes(r, d)

	// 4️⃣ Admin routes (admin claim / API-key protected)
	SetupAdminRoutes(r, d)
}
