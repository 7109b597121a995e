package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultQRBaseURL is the placeholder link prefix for event QR codes
const DefaultQRBaseURL = "https://example.com/qr/"

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// ✅ Redis Config (form sessions + rate limit store)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ✅ Kafka Config (user notifications)
	KafkaBrokers           []string
	KafkaNotificationTopic string
	KafkaGroupID           string

	// ✅ Firebase Config
	FirebaseCredentialsPath string // Path to Firebase service account JSON
	FirebaseProjectID       string
	UsersCollection         string

	// ✅ Domain settings
	QRBaseURL          string
	RoleFetchTimeout   time.Duration
	FormTTL            time.Duration
	RateLimitPerMinute int64
	AllowedOrigins     []string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	credentialsPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credentialsPath == "" {
		credentialsPath = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}

	return &Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),

		KafkaBrokers:           splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaNotificationTopic: getEnv("KAFKA_NOTIFICATION_TOPIC", "user-notifications"),
		KafkaGroupID:           getEnv("KAFKA_GROUP_ID", "eventlottery-notifier"),

		FirebaseCredentialsPath: credentialsPath,
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		UsersCollection:         getEnv("USERS_COLLECTION", "users"),

		QRBaseURL:          getEnv("QR_BASE_URL", DefaultQRBaseURL),
		RoleFetchTimeout:   getDuration("ROLE_FETCH_TIMEOUT", 10*time.Second),
		FormTTL:            getDuration("FORM_TTL", 24*time.Hour),
		RateLimitPerMinute: int64(getInt("RATE_LIMIT_PER_MINUTE", 100)),
		AllowedOrigins:     splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
	}
}

// DSN builds the postgres connection string for gorm
func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=disable TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("⚠️ Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
