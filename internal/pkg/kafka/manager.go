package kafka

import (
	"BlogAdmin/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// ConsumerManager 管理 Kafka 消费者
type ConsumerManager struct {
	topic string

	postCacheConsumer sarama.ConsumerGroup
	postCacheHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg config.KafkaConfig, cache PostCacheEvicter) (*ConsumerManager, error) {
	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.CacheGroupID, newSaramaConfig(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "create kafka consumer group")
	}
	return NewConsumerManagerWith(group, cfg.PostTopic, NewPostCacheHandler(cache)), nil
}

func NewConsumerManagerWith(group sarama.ConsumerGroup, topic string, handler sarama.ConsumerGroupHandler) *ConsumerManager {
	return &ConsumerManager{
		topic:             topic,
		postCacheConsumer: group,
		postCacheHandler:  handler,
	}
}

// Start 阻塞消费直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		for err := range m.postCacheConsumer.Errors() {
			log.Error("Error from consumer group", "err", err)
		}
	}()

	log.Info("Post cache consumer started", "topic", m.topic)
	for {
		if err := m.postCacheConsumer.Consume(ctx, []string{m.topic}, m.postCacheHandler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			log.Error("Error from consumer", "err", err)
			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
			}
		}
		if ctx.Err() != nil {
			break
		}
	}

	log.Info("Kafka Manager shutting down...")
	if err := m.postCacheConsumer.Close(); err != nil {
		log.Error("Failed to close post cache consumer", "err", err)
	}
	return nil
}
