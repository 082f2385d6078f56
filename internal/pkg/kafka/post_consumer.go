package kafka

import (
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// PostCacheEvicter 删除文章缓存
type PostCacheEvicter interface {
	DeletePosts(ctx context.Context, slugs ...string) error
}

// PostCacheHandler 消费文章更新事件, 收到即再删一次缓存.
// 写请求已经删过一次, 第二次删除发生在事件经过 Kafka 往返之后, 清掉更新期间并发读回填的旧值
type PostCacheHandler struct {
	cache PostCacheEvicter
}

func NewPostCacheHandler(cache PostCacheEvicter) *PostCacheHandler {
	return &PostCacheHandler{cache: cache}
}

func (s *PostCacheHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post cache consumer setup")
	return nil
}

func (s *PostCacheHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post cache consumer cleanup")
	return nil
}

func (s *PostCacheHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	return pullMessageBatch(session, claim, s.logic)
}

func (s *PostCacheHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToPostUpdatedEvent(msg)
	if err != nil {
		log.WarnContext(ctx, "drop post event", "offset", msg.Offset, "err", err)
		return err
	}

	slugs := []string{event.Slug}
	if event.OldSlug != "" && event.OldSlug != event.Slug {
		slugs = append(slugs, event.OldSlug)
	}
	return s.cache.DeletePosts(ctx, slugs...)
}
