package chatControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daraghmehsaleh9-dot/Saleh/gemini"
	"github.com/daraghmehsaleh9-dot/Saleh/i18n"
)

// ChocoBot's persona, selected per request language.
var systemInstructions = map[string]string{
	"ar": `أنت شوكوبوت، خبير الشوكولاتة الذواقة في متجر "شوكو-بومب".
أنت شغوف وودود ولديك معرفة واسعة بكل ما يتعلق بالشوكولاتة: أنواع حبوب الكاكاو والنكهات المتوافقة وطرق التقديم والمناسبات المثالية لكل نوع.
هدفك مساعدة المستخدمين على اكتشاف قنبلة الشوكولاتة المثالية لهم وتقديم التوصيات والإجابة على أسئلتهم.
لا توصِ بأي متاجر منافسة؛ وجّه المستخدم دائماً إلى منتجات "شوكو-بومب".
اجعل إجاباتك موجزة وشهية وسهلة الفهم.`,
	"en": `You are ChocoBot, the gourmet chocolate expert for the "Choco-Bomb" store.
You are passionate, friendly, and deeply knowledgeable about everything chocolate: cocoa bean types, flavor pairings, serving suggestions, and the perfect occasion for each bomb.
Help users discover their perfect chocolate bomb, recommend products, and answer questions.
Never recommend competitor stores; always guide the user to Choco-Bomb products.
Keep answers concise, delicious-sounding, and easy to understand.`,
}

// GET /chat/greeting returns the single seed message shown when the widget
// opens.
func GreetingHandler(tr *i18n.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Lang(c)
		c.JSON(http.StatusOK, gin.H{"role": "model", "text": tr.T(lang, "chatGreeting")})
	}
}

type chatInput struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language"`
}

// POST /chat
//
// Relays the model's fragments as server-sent events in arrival order. When
// the upstream stream fails the client gets one localized error fragment
// instead; there is no retry.
func StreamHandler(client *gemini.Client, tr *i18n.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Lang(c)

		var input chatInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Language != "" {
			lang = input.Language
		}
		instruction, ok := systemInstructions[lang]
		if !ok {
			instruction = systemInstructions[i18n.DefaultLanguage]
		}

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")

		err := client.StreamMessage(c.Request.Context(), instruction, input.Message, func(fragment string) error {
			c.SSEvent("message", fragment)
			c.Writer.Flush()
			return nil
		})
		if err != nil {
			log.Printf("❌ Chat stream failed: %v", err)
			c.SSEvent("error", tr.T(lang, "chatError"))
			c.Writer.Flush()
			return
		}
		c.SSEvent("done", "")
		c.Writer.Flush()
	}
}
