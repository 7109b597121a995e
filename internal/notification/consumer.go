package notification

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the subset of *kafka.Reader used by the consumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

const readErrorBackoff = time.Second

// StartKafkaConsumer delivers notifications from the topic until ctx is done.
func StartKafkaConsumer(ctx context.Context, reader MessageReader, channel Channel) {
	go func() {
		defer reader.Close()
		log.Println("🔄 Notification consumer started")
		Consume(ctx, reader, channel)
		log.Println("ℹ️ Notification consumer stopped")
	}()
}

// Consume runs the read loop in the calling goroutine. Delivery failures are
// logged and skipped; there is no redelivery.
func Consume(ctx context.Context, reader MessageReader, channel Channel) {
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return
			}
			log.Printf("❌ Kafka read error: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(readErrorBackoff):
			}
			continue
		}

		var n Notification
		if err := json.Unmarshal(msg.Value, &n); err != nil {
			log.Printf("⚠️ Skipping malformed notification at offset %d: %v", msg.Offset, err)
			continue
		}

		if err := channel.Send(ctx, n); err != nil {
			log.Printf("❌ Failed to deliver notification %s: %v", n.ID, err)
		}
	}
}
