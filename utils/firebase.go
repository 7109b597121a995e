package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/eventlottery/eventlottery-backend/config"
)

var (
	FirebaseApp     *firebase.App
	FirestoreClient *firestore.Client
	MessagingClient *messaging.Client
	once            sync.Once
	initErr         error
)

// InitFirebase initializes the Firebase Admin SDK with its Firestore and FCM
// clients. Safe to call more than once; only the first call does work.
func InitFirebase(cfg *config.Config) error {
	once.Do(func() {
		ctx := context.Background()
		log.Println("🔄 Initializing Firebase...")

		credentialsPath := cfg.FirebaseCredentialsPath
		if credentialsPath == "" {
			credentialsPath = "./serviceAccountKey.json"
		}
		log.Printf("📂 Looking for Firebase credentials at: %s - FIREBASE_PROJECT_ID=%s",
			credentialsPath, cfg.FirebaseProjectID)

		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Printf("⚠️  Firebase credentials file not found at: %s", credentialsPath)
			initErr = fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
			return
		}

		var fbConfig *firebase.Config
		if cfg.FirebaseProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
		}

		app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(credentialsPath))
		if err != nil {
			log.Printf("❌ Error initializing Firebase app: %v", err)
			initErr = fmt.Errorf("firebase app initialization failed: %w", err)
			return
		}
		FirebaseApp = app
		log.Println("✅ Firebase app initialized")

		fsClient, err := app.Firestore(ctx)
		if err != nil {
			log.Printf("❌ Error getting Firestore client: %v", err)
			initErr = fmt.Errorf("firestore client initialization failed: %w", err)
			return
		}
		FirestoreClient = fsClient
		log.Println("✅ Firestore client initialized")

		// FCM is optional; role lookups work without it
		fcmClient, err := app.Messaging(ctx)
		if err != nil {
			log.Printf("⚠️ Error getting FCM client: %v", err)
			log.Println("ℹ️  Continuing without FCM (push notifications will be disabled)")
			return
		}
		MessagingClient = fcmClient
		log.Println("✅ FCM client initialized")
	})

	return initErr
}

// GetFirestoreClient returns the Firestore client, or nil when Firebase is down
func GetFirestoreClient() *firestore.Client {
	return FirestoreClient
}

// GetMessagingClient returns the FCM client instance
func GetMessagingClient() *messaging.Client {
	return MessagingClient
}

// IsFCMEnabled checks if FCM is available
func IsFCMEnabled() bool {
	return MessagingClient != nil
}

// CloseFirebase releases the Firestore connection
func CloseFirebase() {
	if FirestoreClient != nil {
		if err := FirestoreClient.Close(); err != nil {
			log.Printf("⚠️ Firestore close: %v", err)
		}
	}
}
