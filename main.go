package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pratikdhikale87/Social-media/auth"
	"github.com/pratikdhikale87/Social-media/config"
	"github.com/pratikdhikale87/Social-media/database"
	"github.com/pratikdhikale87/Social-media/handlers"
	"github.com/pratikdhikale87/Social-media/media"
	"github.com/pratikdhikale87/Social-media/routes"
	"github.com/pratikdhikale87/Social-media/service"
	"github.com/pratikdhikale87/Social-media/store"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	db, err := database.Connect(ctx, cfg, log)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}

	images, err := media.NewCloudinary(cfg.CloudinaryURL)
	if err != nil {
		log.WithError(err).Fatal("failed to configure image storage")
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	passwords := auth.NewPasswordService()

	svc := service.NewSocial(
		store.NewMongoUsers(db),
		store.NewMongoPosts(db),
		images,
		passwords,
		tokens,
		cfg.MaxAvatarBytes,
		log,
	)

	router := routes.Setup(handlers.New(svc, log), tokens, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		log.WithError(err).Error("mongo disconnect failed")
	}

	log.Info("server stopped")
}
