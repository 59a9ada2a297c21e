package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"

	"github.com/clearpath-mortgage/backend/internal/config"
	"github.com/clearpath-mortgage/backend/internal/handler"
	"github.com/clearpath-mortgage/backend/internal/logging"
	"github.com/clearpath-mortgage/backend/internal/notify"
	"github.com/clearpath-mortgage/backend/internal/repository"
	"github.com/clearpath-mortgage/backend/internal/service"
	"github.com/clearpath-mortgage/backend/pkg/auth"

	"log/slog"
)

const notifyQueueSize = 64

func main() {
	_ = godotenv.Load()
	logging.Setup("lead-api")

	cfg := config.Load()

	awsCfg, err := config.NewAWSConfig(context.Background(), cfg.AWSRegion)
	if err != nil {
		logging.Fatal("failed to load AWS config", "error", err)
	}

	ddb := repository.NewDynamoClient(awsCfg)
	inquiryRepo := repository.NewDynamoInquiryRepository(ddb, cfg.InquiriesTable)
	leadRepo := repository.NewDynamoLeadRepository(ddb, cfg.LeadsTable)

	sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), cfg.NotifyFrom, cfg.NotifyTo, cfg.NotifyCC)
	dispatcher := notify.NewDispatcher(sender, notifyQueueSize)

	tokenSecret := auth.SecretBytes(cfg.JWTSecret)

	inquiryService := service.NewInquiryService(inquiryRepo)
	leadService := service.NewLeadService(leadRepo, dispatcher)
	authService := service.NewAuthService(
		cip.NewFromConfig(awsCfg),
		cfg.CognitoClientID,
		cfg.CognitoClientSecret,
		tokenSecret,
		cfg.TokenTTL,
	)

	exposeDetails := !cfg.IsProduction()
	limiter := handler.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)

	router := handler.NewRouter(handler.RouterDeps{
		Inquiries:      handler.NewInquiryHandler(inquiryService, exposeDetails),
		Leads:          handler.NewLeadHandler(leadService, exposeDetails),
		Auth:           handler.NewAuthHandler(authService),
		Limiter:        limiter,
		AllowedOrigins: cfg.AllowedOrigins,
		TokenSecret:    tokenSecret,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}

	// Drain pending notification emails before exiting.
	dispatcher.Close()
	limiter.Stop()
}
