package routes

import (
	"github.com/gin-gonic/gin"

	chatControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/chat"
)

// SetupChatRoutes registers the ChocoBot widget endpoints. Public: the widget
// works for browsing visitors before any sign-in happens.
func SetupChatRoutes(r *gin.Engine, d Deps) {
	r.GET("/chat/greeting", chatControllers.GreetingHandler(d.I18n)) // GET /chat/greeting?lang=
	r.POST("/chat", chatControllers.StreamHandler(d.Gemini, d.I18n)) // POST /chat (SSE stream)
}
