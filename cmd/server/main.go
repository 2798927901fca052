package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"visacrony-gateway/internal/api"
	"visacrony-gateway/internal/automation"
	"visacrony-gateway/internal/channel"
	"visacrony-gateway/internal/chatbot"
	"visacrony-gateway/internal/config"
	"visacrony-gateway/internal/database"
	"visacrony-gateway/internal/enquiry"
	"visacrony-gateway/internal/gemini"
	"visacrony-gateway/internal/message"
	"visacrony-gateway/internal/store"
	"visacrony-gateway/internal/webhook"
	"visacrony-gateway/internal/whatsapp"
	"visacrony-gateway/internal/ws"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("[CONFIG] %v", err)
	}
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logrus.SetLevel(level)
	if level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitGorm(cfg)
	if err != nil {
		logrus.Fatalf("[DATABASE] %v", err)
	}

	var (
		st       *store.Store
		ledger   enquiry.Ledger
		recorder whatsapp.Recorder
		inbound  webhook.MessageRecorder
	)
	if db != nil {
		st = store.New(db)
		ledger, recorder, inbound = st, st, st
	}

	// WhatsApp Cloud API is optional: without credentials the webhook still
	// records inbound traffic but nothing is sent.
	var sender channel.TextSender
	if cfg.WhatsAppConfigured() {
		sender = whatsapp.NewClient(cfg, recorder)
	} else {
		logrus.Warn("[WHATSAPP] WHATSAPP_TOKEN or PHONE_NUMBER_ID not set, outbound messages disabled")
	}

	var responder chatbot.Responder
	if cfg.GeminiAPIKey != "" {
		r, err := gemini.NewResponder(ctx, gemini.Config{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL})
		if err != nil {
			logrus.WithError(err).Warn("[GEMINI] responder disabled")
		} else {
			responder = r
		}
	}

	var typing func() time.Duration
	if cfg.TypingDelay {
		typing = chatbot.RandomTyping
	}

	catalog := chatbot.NewCatalog()
	sessions := chatbot.NewSessionStore(chatbot.Options{
		Catalog:   catalog,
		Contact:   chatbot.ContactInfo{Email: cfg.ContactEmail, Phone: cfg.ContactPhone, WhatsApp: cfg.ContactWhatsAppNumber},
		Responder: responder,
		Typing:    typing,
	}, cfg.SessionTTL)
	go sessions.Run(ctx, time.Minute)

	hub := ws.NewHub()
	go hub.Run(ctx)

	svc := enquiry.NewService(
		message.NewBuilder(cfg.Location()),
		channel.NewDispatcher(cfg.StaggerDelay),
		channel.NewSubmitter(cfg.SubmissionEndpoint),
		channel.NewNotifier(sender, cfg.NotifyNumber),
		ledger,
		enquiry.Routes{
			EnquiryMailTo:    cfg.EnquiryMailTo,
			PassportMailTo:   cfg.PassportMailTo,
			EnquiryWhatsApp:  cfg.EnquiryWhatsAppNumber,
			PassportWhatsApp: cfg.PassportWhatsAppNumber,
		},
	)

	handlers := api.Handlers{
		Chat:    api.NewChatHandler(sessions, hub),
		Catalog: api.NewCatalogHandler(catalog),
		Forms:   api.NewFormHandler(svc),
		Webhook: webhook.NewHandler(cfg, inbound, automation.NewEngine(sender)),
		Admin:   cfg.AdminAccounts(),
	}
	if st != nil && handlers.Admin != nil {
		handlers.Dashboard = api.NewDashboardHandler(st, sender)
	} else if st != nil {
		logrus.Warn("[SERVER] ADMIN_USER/ADMIN_PASSWORD not set, back office disabled")
	}
	if cfg.AppSecret == "" {
		logrus.Warn("[SERVER] WHATSAPP_APP_SECRET not set, webhook deliveries will be rejected")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.NewRouter(handlers),
	}

	go func() {
		logrus.Infof("[SERVER] starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("[SERVER] failed to run server: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("[SERVER] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("[SERVER] shutdown failed")
	}
}
