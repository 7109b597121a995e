package utils

import (
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/eventlottery/eventlottery-backend/config"
)

// KafkaEnabled reports whether any brokers are configured
func KafkaEnabled(cfg *config.Config) bool {
	return len(cfg.KafkaBrokers) > 0
}

// NewNotificationWriter builds the producer for the notifications topic
func NewNotificationWriter(cfg *config.Config) *kafka.Writer {
	log.Printf("🔌 Kafka writer -> %v topic=%s", cfg.KafkaBrokers, cfg.KafkaNotificationTopic)
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaNotificationTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// NewNotificationReader builds the consumer-group reader for the notifications topic
func NewNotificationReader(cfg *config.Config) *kafka.Reader {
	log.Printf("🔌 Kafka reader <- %v topic=%s group=%s", cfg.KafkaBrokers, cfg.KafkaNotificationTopic, cfg.KafkaGroupID)
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		Topic:    cfg.KafkaNotificationTopic,
		GroupID:  cfg.KafkaGroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}
