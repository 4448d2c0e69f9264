package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/ledger/internal/pkg/logger"
)

// Publisher publishes raw message bodies to a topic
type Publisher interface {
	Publish(topic string, body []byte) error
}

// Producer handles publishing messages to NSQ topics
type Producer struct {
	publisher Publisher
	stop      func()
	ping      func() error
}

// NewProducer connects to nsqd at address and checks it is reachable
func NewProducer(address string) (*Producer, error) {
	producer, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLogger(nil, nsq.LogLevelError)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{publisher: producer, stop: producer.Stop, ping: producer.Ping}, nil
}

// NewProducerWithPublisher wraps an existing publisher
func NewProducerWithPublisher(p Publisher) *Producer {
	return &Producer{publisher: p}
}

// PublishJSON marshals message and publishes it to topic
func (p *Producer) PublishJSON(topic string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.publisher.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

// Ping checks the nsqd connection
func (p *Producer) Ping() error {
	if p.ping == nil {
		return nil
	}
	return p.ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	if p.stop != nil {
		p.stop()
	}
}
