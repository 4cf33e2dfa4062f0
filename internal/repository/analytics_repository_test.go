package repository

import (
	"fmt"
	"study_buddy_backend/internal/model"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(topic string, typ model.ContentType) model.StudySession {
	return model.StudySession{Topic: topic, Type: typ, Timestamp: time.Now()}
}

func TestMemoryAnalyticsStore_UnknownUser(t *testing.T) {
	s := NewMemoryAnalyticsStore()

	_, ok := s.Snapshot("nobody", 10)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Users())
}

func TestMemoryAnalyticsStore_RecordCounts(t *testing.T) {
	s := NewMemoryAnalyticsStore()

	assert.True(t, s.Record("u1", session("Photosynthesis", model.ContentNotes), "2024-03-01"))
	assert.False(t, s.Record("u1", session("Photosynthesis", model.ContentQuiz), "2024-03-01"))
	s.Record("u1", session("Mitosis", "unknown-tag"), "2024-03-02")
	s.Record("u1", session("", model.ContentExplain), "2024-03-02")

	snap, ok := s.Snapshot("u1", 10)
	require.True(t, ok)

	assert.Equal(t, 4, snap.TotalSessions)
	assert.Equal(t, model.FeatureUsage{Explain: 1, Notes: 1, Quiz: 1}, snap.FeatureUsage)
	assert.Equal(t, []model.TopicCount{
		{Topic: "Photosynthesis", Count: 2},
		{Topic: "Mitosis", Count: 1},
		{Topic: "", Count: 1},
	}, snap.Topics)
	assert.Equal(t, map[string]int{"2024-03-01": 2, "2024-03-02": 2}, snap.Daily)
	assert.Equal(t, 1, s.Users())
}

func TestMemoryAnalyticsStore_RecentMostRecentFirst(t *testing.T) {
	s := NewMemoryAnalyticsStore()
	for i := 0; i < 12; i++ {
		s.Record("u1", session(fmt.Sprintf("t%d", i), model.ContentNotes), "2024-03-01")
	}

	snap, ok := s.Snapshot("u1", 10)
	require.True(t, ok)
	require.Len(t, snap.Recent, 10)
	assert.Equal(t, "t11", snap.Recent[0].Topic)
	assert.Equal(t, "t2", snap.Recent[9].Topic)

	snap, _ = s.Snapshot("u1", 50)
	assert.Len(t, snap.Recent, 12)
}

func TestMemoryAnalyticsStore_SnapshotIsCopy(t *testing.T) {
	s := NewMemoryAnalyticsStore()
	s.Record("u1", session("a", model.ContentNotes), "2024-03-01")

	snap, _ := s.Snapshot("u1", 10)
	snap.Daily["2024-03-01"] = 99
	snap.Topics[0].Count = 99

	again, _ := s.Snapshot("u1", 10)
	assert.Equal(t, 1, again.Daily["2024-03-01"])
	assert.Equal(t, 1, again.Topics[0].Count)
}

func TestMemoryAnalyticsStore_ConcurrentRecordsNoLostUpdates(t *testing.T) {
	s := NewMemoryAnalyticsStore()

	const workers, perWorker = 8, 250
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Record("shared", session("topic", model.ContentTypes[i%4]), "2024-03-01")
				s.Record(fmt.Sprintf("user-%d", w), session("own", model.ContentQuiz), "2024-03-01")
			}
		}(w)
	}
	wg.Wait()

	snap, ok := s.Snapshot("shared", 10)
	require.True(t, ok)
	assert.Equal(t, workers*perWorker, snap.TotalSessions)
	usage := snap.FeatureUsage
	assert.Equal(t, workers*perWorker, usage.Explain+usage.Notes+usage.Flashcards+usage.Quiz)
	assert.Equal(t, workers*perWorker, snap.Daily["2024-03-01"])
	assert.Equal(t, []model.TopicCount{{Topic: "topic", Count: workers * perWorker}}, snap.Topics)
	assert.Equal(t, workers+1, s.Users())
}
