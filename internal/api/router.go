package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visacrony-gateway/internal/webhook"
)

// Handlers groups everything the router mounts. Nil handlers leave their
// routes unmounted. The back office also needs Admin accounts.
type Handlers struct {
	Chat      *ChatHandler
	Catalog   *CatalogHandler
	Forms     *FormHandler
	Dashboard *DashboardHandler
	Webhook   *webhook.Handler
	Admin     gin.Accounts
}

// CORS allows the public site and the widget to call the API from any origin.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), CORS())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Webhook Routes
	if h.Webhook != nil {
		r.GET("/webhook", h.Webhook.VerifyWebhook)
		r.POST("/webhook", h.Webhook.HandleMessage)
	}

	apiGroup := r.Group("/api")

	if h.Chat != nil {
		chat := apiGroup.Group("/chat/sessions")
		{
			chat.POST("", h.Chat.CreateSession)
			chat.GET("/:id", h.Chat.GetSession)
			chat.DELETE("/:id", h.Chat.DeleteSession)
			chat.POST("/:id/messages", h.Chat.SendMessage)
			chat.POST("/:id/actions", h.Chat.DispatchAction)
			chat.POST("/:id/clear", h.Chat.Clear())
			chat.POST("/:id/close", h.Chat.Close())
			chat.POST("/:id/open", h.Chat.Open())
		}
		if h.Chat.Hub != nil {
			r.GET("/ws/chat/:id", h.Chat.ServeWs)
		}
	}

	if h.Catalog != nil {
		catalog := apiGroup.Group("/catalog")
		{
			catalog.GET("/visa-types", h.Catalog.GetVisaTypes)
			catalog.GET("/visa-types/:type/countries", h.Catalog.GetCountries)
			catalog.GET("/visa-types/:type/countries/:id", h.Catalog.GetCountry)
		}
	}

	if h.Forms != nil {
		forms := apiGroup.Group("/forms")
		{
			forms.POST("/visa-enquiry", h.Forms.VisaEnquiry())
			forms.POST("/general-enquiry", h.Forms.GeneralEnquiry())
			forms.POST("/fresh-passport", h.Forms.FreshPassport())
			forms.POST("/passport-renewal", h.Forms.PassportRenewal())
		}
	}

	// Back office
	if h.Dashboard != nil && len(h.Admin) > 0 {
		admin := apiGroup.Group("", gin.BasicAuth(h.Admin))
		{
			admin.GET("/submissions", h.Dashboard.GetSubmissions)
			admin.GET("/submissions/:reference", h.Dashboard.GetSubmission)
			admin.GET("/messages", h.Dashboard.GetMessages)
			admin.POST("/send", h.Dashboard.SendMessage)
		}
	}

	return r
}
