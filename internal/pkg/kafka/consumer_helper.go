package kafka

import (
	"BlogAdmin/internal/api/dto"
	"context"
	log "log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	batchSize    = 32
	batchTimeout = 1 * time.Second
	maxRetry     = 5 * time.Second
)

type LogicFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// pullMessageBatch 攒批拉取消息, 满 batchSize 条或 batchTimeout 到期时处理
func pullMessageBatch(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic LogicFunc) error {
	batch := make([]*sarama.ConsumerMessage, 0, batchSize)
	ticker := time.NewTicker(batchTimeout)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				if len(batch) > 0 {
					processBatch(session, batch, logic)
				}
				return nil
			}
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				processBatch(session, batch, logic)
				batch = make([]*sarama.ConsumerMessage, 0, batchSize)
				ticker.Reset(batchTimeout)
			}
		case <-ticker.C:
			if len(batch) > 0 {
				processBatch(session, batch, logic)
				batch = make([]*sarama.ConsumerMessage, 0, batchSize)
			}
		case <-session.Context().Done():
			return nil
		}
	}
}

// processBatch 并发处理一批消息, 失败的消息指数退避重试, 全部完成后提交最后一条的位点
func processBatch(session sarama.ConsumerGroupSession, messages []*sarama.ConsumerMessage, logic LogicFunc) {
	var wg sync.WaitGroup

	for _, msg := range messages {
		wg.Add(1)

		go func(m *sarama.ConsumerMessage) {
			defer wg.Done()
			retryInterval := 100 * time.Millisecond

			for {
				err := logic(session.Context(), m)
				if err == nil || errors.Is(err, errSkipMessage) {
					return
				}

				log.Error("process message error", "topic", m.Topic, "offset", m.Offset, "err", err)
				select {
				case <-session.Context().Done():
					return
				case <-time.After(retryInterval):
				}

				retryInterval *= 2
				if retryInterval > maxRetry {
					retryInterval = maxRetry
				}
			}
		}(msg)
	}

	wg.Wait()

	if len(messages) > 0 {
		session.MarkMessage(messages[len(messages)-1], "")
	}
}

// errSkipMessage 无法解析的消息, 重试也不会成功
var errSkipMessage = errors.New("skip message")

// ToPostUpdatedEvent 解析文章更新事件
func ToPostUpdatedEvent(msg *sarama.ConsumerMessage) (*dto.PostUpdatedEvent, error) {
	var event dto.PostUpdatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return nil, errors.Wrapf(errSkipMessage, "unmarshal post event: %v", err)
	}
	if event.Slug == "" {
		return nil, errors.Wrap(errSkipMessage, "post event without slug")
	}
	return &event, nil
}
