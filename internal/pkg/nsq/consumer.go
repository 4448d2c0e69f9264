package nsq

import (
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/ledger/internal/pkg/logger"
)

// MessageHandler processes one message body. A returned error requeues the
// message until MaxAttempts is reached.
type MessageHandler func(body []byte) error

// ConsumerConfig describes one topic/channel subscription
type ConsumerConfig struct {
	Topic          string
	Channel        string
	NSQDAddress    string
	LookupdAddress string
	MaxInFlight    int
	MaxAttempts    int
}

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer subscribes handler to cfg.Topic/cfg.Channel. It connects
// through nsqlookupd when LookupdAddress is set, nsqd otherwise.
func NewConsumer(cfg ConsumerConfig, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	if cfg.MaxInFlight > 0 {
		config.MaxInFlight = cfg.MaxInFlight
	}
	if cfg.MaxAttempts > 0 {
		config.MaxAttempts = uint16(cfg.MaxAttempts)
	}

	consumer, err := nsq.NewConsumer(cfg.Topic, cfg.Channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLogger(nil, nsq.LogLevelError)
	consumer.AddHandler(wrapHandler(handler, config.MaxAttempts))

	if cfg.LookupdAddress != "" {
		err = consumer.ConnectToNSQLookupd(cfg.LookupdAddress)
	} else {
		err = consumer.ConnectToNSQD(cfg.NSQDAddress)
	}
	if err != nil {
		consumer.Stop()
		return nil, fmt.Errorf("failed to connect NSQ consumer: %w", err)
	}

	return &Consumer{consumer: consumer}, nil
}

func wrapHandler(handler MessageHandler, maxAttempts uint16) nsq.HandlerFunc {
	return func(message *nsq.Message) error {
		err := handler(message.Body)
		if err == nil {
			return nil
		}

		logger.Warn("Error processing NSQ message",
			logger.Err(err),
			logger.Int("attempt", int(message.Attempts)),
			logger.Int("max_attempts", int(maxAttempts)))
		return err
	}
}

// Stop gracefully stops the consumer and waits for in-flight handlers
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
