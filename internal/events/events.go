package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	ProductCreated = "product_created"
	ProductUpdated = "product_updated"
	ProductDeleted = "product_deleted"
)

type ProductEvent struct {
	Type      string `json:"type"`
	ProductID uint   `json:"productID"`
	Name      string `json:"name,omitempty"`
	ImageURL  string `json:"imagen_url,omitempty"`
}

func (e ProductEvent) Key() string {
	return strconv.FormatUint(uint64(e.ProductID), 10)
}

type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
	Close() error
}

type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }
func (Noop) Close() error                               { return nil }

type KafkaPublisher struct {
	w *kafka.Writer
}

// New returns a Kafka-backed publisher, or Noop when no brokers are configured.
func New(brokers []string, topic string) Publisher {
	if len(brokers) == 0 {
		return Noop{}
	}
	return &KafkaPublisher{w: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}}
}

func (p *KafkaPublisher) Publish(ctx context.Context, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := p.w.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data}); err != nil {
		return fmt.Errorf("kafka: write to %s failed: %w", p.w.Topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}
