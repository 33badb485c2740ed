package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"tiffin/internal/entities"
	"tiffin/internal/pkg/config"
	"tiffin/pkg/logger"
)

// Producer публикует события смены статуса заказа. Публикация
// best-effort: вызывающая сторона логирует ошибку и продолжает.
type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(log logger.Logger, cfg *config.Kafka, brokers []string) (*Producer, error) {
	saramaConfig := sarama.NewConfig()

	if cfg.Sarama.Version != "" {
		version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
		if err != nil {
			return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
		}
		saramaConfig.Version = version
	}

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create sync producer: %w", err)
	}

	return &Producer{
		log: log.With(
			logger.NewField("brokers", brokers),
			logger.NewField("topic", cfg.Topic),
		),
		producer: producer,
		topic:    cfg.Topic,
	}, nil
}

func (p *Producer) PublishStatusChanged(_ context.Context, event entities.OrderStatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order status event: %w", err)
	}

	// ключ = order_id: события одного заказа упорядочены внутри партиции
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send order status event: %w", err)
	}

	p.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status.String()),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("order status event published")
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
