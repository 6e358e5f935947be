//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type georeferenceChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	DocumentID int64     `json:"document_id"`
	Operation  string    `json:"operation"`
	Points     int       `json:"points"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Публикует тестовые события в stream:georeference:changed для проверки воркера.
// go run scripts/test_publish.go -redis localhost:6379 -doc 2 -count 3
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	documentID := flag.Int64("doc", 1, "document id")
	operation := flag.String("op", "set", "operation: set, update or delete")
	count := flag.Int("count", 1, "number of events")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	for i := 0; i < *count; i++ {
		event := georeferenceChangedEvent{
			EventID:    uuid.New(),
			DocumentID: *documentID,
			Operation:  *operation,
			Points:     1,
			OccurredAt: time.Now().UTC(),
		}
		data, err := json.Marshal(event)
		if err != nil {
			log.Fatalf("Failed to marshal event: %v", err)
		}

		id, err := client.XAdd(ctx, &redis.XAddArgs{
			Stream: "stream:georeference:changed",
			Values: map[string]interface{}{"data": string(data)},
		}).Result()
		if err != nil {
			log.Fatalf("Failed to publish: %v", err)
		}
		fmt.Printf("published %s (event %s)\n", id, event.EventID)
	}
}
