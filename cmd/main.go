package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventlottery/eventlottery-backend/config"
	"github.com/eventlottery/eventlottery-backend/database"
	"github.com/eventlottery/eventlottery-backend/internal/notification"
	"github.com/eventlottery/eventlottery-backend/routes"
	"github.com/eventlottery/eventlottery-backend/utils"
)

// @title Event Lottery API
// @version 1.0
// @description Role resolution, event forms and audit trail for the event lottery app.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB (audit trail)
	db := database.Connect(cfg)
	if db != nil {
		if err := database.Migrate(db); err != nil {
			panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
		}
	}

	// Init Redis
	rdb, err := utils.InitRedis(cfg)
	if err != nil {
		log.Fatalf("❌ Redis init failed: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// 🔥 Init Firebase - SINGLE INITIALIZATION POINT
	if err := utils.InitFirebase(cfg); err != nil {
		log.Printf("⚠️ Firebase initialization failed: %v", err)
		log.Println("ℹ️ Continuing without Firebase (every role resolves to entrant)")
	}
	defer utils.CloseFirebase()

	// Init Kafka (notifications)
	var notifier notification.Publisher = notification.NopPublisher{}
	if utils.KafkaEnabled(cfg) {
		writer := utils.NewNotificationWriter(cfg)
		publisher := notification.NewKafkaPublisher(writer)
		defer publisher.Close()
		notifier = publisher

		// a nil *messaging.Client must not reach the interface
		var channel notification.Channel
		if client := utils.GetMessagingClient(); client != nil {
			channel = notification.NewFCMChannel(client)
		} else {
			channel = notification.NewFCMChannel(nil)
		}
		notification.StartKafkaConsumer(ctx, utils.NewNotificationReader(cfg), channel)
	} else {
		log.Println("ℹ️ KAFKA_BROKERS not set, notifications will only be logged")
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(routes.CORS(cfg))

	routes.Setup(router, cfg, routes.Dependencies{
		DB:        db,
		Redis:     rdb,
		Firestore: utils.GetFirestoreClient(),
		Notifier:  notifier,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
		if utils.IsFCMEnabled() {
			fmt.Println("✅ Firebase Cloud Messaging enabled")
		} else {
			fmt.Println("ℹ️ Firebase Cloud Messaging disabled")
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Server shutdown: %v", err)
	}
}
