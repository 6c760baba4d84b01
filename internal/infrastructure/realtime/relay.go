package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"homeservice.backend/pkg/logger"
	"homeservice.backend/pkg/metrics"
)

// Envelope is the relay wire format on the Redis channel
type Envelope struct {
	Room      string          `json:"room"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// Relay fans events out to every process through Redis pub/sub.
// Each process delivers only to the sockets it holds.
type Relay struct {
	rdb     *redis.Client
	channel string
	hub     *Hub

	mu     sync.Mutex
	pubsub *redis.PubSub
	done   chan struct{}
}

func NewRelay(rdb *redis.Client, channel string, hub *Hub) *Relay {
	return &Relay{rdb: rdb, channel: channel, hub: hub}
}

// Publish sends an event for room to every subscribed process.
func (r *Relay) Publish(ctx context.Context, room, eventType string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}
	data, err := json.Marshal(Envelope{Room: room, Type: eventType, Payload: raw, Timestamp: time.Now().UTC()})
	if err != nil {
		return err
	}
	if err := r.rdb.Publish(ctx, r.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	metrics.RealtimePublished.WithLabelValues(eventType).Inc()
	return nil
}

// Start subscribes to the channel and delivers envelopes to the local hub until Stop.
// It returns once the subscription is confirmed.
func (r *Relay) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pubsub != nil {
		return errors.New("relay already started")
	}

	pubsub := r.rdb.Subscribe(ctx, r.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}
	r.pubsub = pubsub
	r.done = make(chan struct{})

	go r.run(ctx, pubsub.Channel(), r.done)
	logger.Info(ctx, "Realtime relay subscribed", zap.String("channel", r.channel))
	return nil
}

func (r *Relay) run(ctx context.Context, ch <-chan *redis.Message, done chan struct{}) {
	defer close(done)
	for msg := range ch {
		var env Envelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			logger.Warn(ctx, "Discarding malformed relay envelope", zap.Error(err))
			continue
		}
		r.hub.Deliver(env.Room, Message{Type: env.Type, Payload: env.Payload, Timestamp: env.Timestamp})
	}
}

// Stop closes the subscription and waits for the delivery loop to exit.
func (r *Relay) Stop() error {
	r.mu.Lock()
	pubsub, done := r.pubsub, r.done
	r.pubsub, r.done = nil, nil
	r.mu.Unlock()

	if pubsub == nil {
		return nil
	}
	err := pubsub.Close()
	<-done
	return err
}
