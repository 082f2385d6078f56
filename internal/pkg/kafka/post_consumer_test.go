package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvicter struct {
	mu      sync.Mutex
	deleted [][]string
	err     error
}

func (f *fakeEvicter) DeletePosts(_ context.Context, slugs ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, slugs)
	return f.err
}

type fakeSession struct {
	ctx    context.Context
	marked []*sarama.ConsumerMessage
}

func (s *fakeSession) Claims() map[string][]int32 { return nil }
func (s *fakeSession) MemberID() string { return "member" }
func (s *fakeSession) GenerationID() int32 { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string) {}
func (s *fakeSession) Commit() {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Context() context.Context { return s.ctx }
func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) { s.marked = append(s.marked, msg) }

func message(offset int64, value string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{Topic: "posts", Offset: offset, Value: []byte(value)}
}

func TestPostCacheHandler_EvictsOldAndNewSlug(t *testing.T) {
	evicter := &fakeEvicter{}
	h := NewPostCacheHandler(evicter)

	err := h.logic(context.Background(), message(1, `{"event_id":"e","old_slug":"hello","slug":"hi"}`))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"hi", "hello"}}, evicter.deleted)
}

func TestPostCacheHandler_SameSlugEvictedOnce(t *testing.T) {
	evicter := &fakeEvicter{}
	h := NewPostCacheHandler(evicter)

	require.NoError(t, h.logic(context.Background(), message(1, `{"old_slug":"hi","slug":"hi"}`)))
	assert.Equal(t, [][]string{{"hi"}}, evicter.deleted)
}

func TestPostCacheHandler_BadPayloadIsSkipped(t *testing.T) {
	evicter := &fakeEvicter{}
	h := NewPostCacheHandler(evicter)

	err := h.logic(context.Background(), message(1, `not json`))
	assert.ErrorIs(t, err, errSkipMessage)

	err = h.logic(context.Background(), message(2, `{"title":"no slug"}`))
	assert.ErrorIs(t, err, errSkipMessage)
	assert.Empty(t, evicter.deleted)
}

func TestProcessBatch_MarksLastMessage(t *testing.T) {
	session := &fakeSession{ctx: context.Background()}
	evicter := &fakeEvicter{}
	h := NewPostCacheHandler(evicter)

	msgs := []*sarama.ConsumerMessage{
		message(1, `{"slug":"a"}`),
		message(2, `broken`),
		message(3, `{"slug":"b"}`),
	}
	processBatch(session, msgs, h.logic)

	require.Len(t, session.marked, 1)
	assert.Equal(t, int64(3), session.marked[0].Offset)
	assert.Len(t, evicter.deleted, 2)
}

func TestProcessBatch_StopsRetryingOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	session := &fakeSession{ctx: ctx}

	calls := 0
	logic := func(context.Context, *sarama.ConsumerMessage) error {
		calls++
		cancel()
		return errors.New("redis down")
	}
	processBatch(session, []*sarama.ConsumerMessage{message(1, `{"slug":"a"}`)}, logic)

	assert.Equal(t, 1, calls)
	assert.Len(t, session.marked, 1)
}
