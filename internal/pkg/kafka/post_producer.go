package kafka

import (
	"BlogAdmin/internal/api/config"
	"BlogAdmin/internal/api/dto"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// PostEventProducer 发布文章更新事件, 以新 slug 作为分区键
type PostEventProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewPostEventProducer(cfg config.KafkaConfig) (*PostEventProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "create kafka producer")
	}
	return NewPostEventProducerWith(producer, cfg.PostTopic), nil
}

func NewPostEventProducerWith(producer sarama.SyncProducer, topic string) *PostEventProducer {
	return &PostEventProducer{
		producer: producer,
		topic:    topic,
	}
}

func (s *PostEventProducer) PublishPostUpdated(ctx context.Context, event *dto.PostUpdatedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal post event")
	}

	partition, offset, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.Slug),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(event.EventID)},
		},
	})
	if err != nil {
		return errors.Wrapf(err, "publish post event %s", event.EventID)
	}

	log.DebugContext(ctx, "post event published",
		"topic", s.topic, "partition", partition, "offset", offset, "slug", event.Slug)
	return nil
}

func (s *PostEventProducer) Close() error {
	return s.producer.Close()
}
