package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/pubsub"
)

// PubSubEnqueuer publishes email tasks to a Pub/Sub topic. Publish results are
// collected on a background goroutine so the login path never waits on the
// broker.
type PubSubEnqueuer struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

func NewPubSubEnqueuer(ctx context.Context, projectID, topicName string) (*PubSubEnqueuer, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}

	return &PubSubEnqueuer{
		client: client,
		topic:  client.Topic(topicName),
	}, nil
}

func (p *PubSubEnqueuer) Enqueue(task EmailTask) error {
	data, err := json.Marshal(task)
	if err != nil {
		return err
	}

	res := p.topic.Publish(context.Background(), &pubsub.Message{Data: data})
	go func() {
		if _, err := res.Get(context.Background()); err != nil {
			log.Printf("[Notification] Publish failed for %s: %v", task.Email, err)
		}
	}()

	return nil
}

func (p *PubSubEnqueuer) Close() error {
	p.topic.Stop()
	return p.client.Close()
}

// PubSubWorker consumes email tasks from the topic's subscription and hands
// them to a Mailer. It is the broker-backed counterpart of Service.
type PubSubWorker struct {
	client  *pubsub.Client
	mailer  Mailer
	topic   string
	subName string
}

func NewPubSubWorker(ctx context.Context, projectID, topicName string, mailer Mailer) (*PubSubWorker, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}

	return &PubSubWorker{
		client:  client,
		mailer:  mailer,
		topic:   topicName,
		subName: topicName + "-sub", // Convention: topic-sub
	}, nil
}

// Start blocks receiving tasks until ctx is cancelled. Malformed or
// undeliverable tasks are logged and acked; they never bubble up.
func (w *PubSubWorker) Start(ctx context.Context) {
	sub := w.client.Subscription(w.subName)
	exists, err := sub.Exists(ctx)
	if err != nil {
		log.Printf("[Notification] Error checking subscription existence: %v", err)
		return
	}

	if !exists {
		topic := w.client.Topic(w.topic)
		sub, err = w.client.CreateSubscription(ctx, w.subName, pubsub.SubscriptionConfig{
			Topic:       topic,
			AckDeadline: 10 * time.Second,
		})
		if err != nil {
			log.Printf("[Notification] Failed to create subscription: %v", err)
			return
		}
		log.Printf("[Notification] Created subscription: %s", w.subName)
	}

	log.Printf("[Notification] Listening on subscription: %s", w.subName)
	err = sub.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		var task EmailTask
		if err := json.Unmarshal(msg.Data, &task); err != nil {
			log.Printf("[Notification] Dropping malformed task: %v", err)
			msg.Ack()
			return
		}

		if err := w.mailer.Send(task.Email, welcomeSubject, welcomeBody); err != nil {
			log.Printf("[Notification] Failed to send welcome email to %s: %v", task.Email, err)
		}
		msg.Ack()
	})
	if err != nil {
		log.Printf("[Notification] Error receiving messages: %v", err)
	}
}
