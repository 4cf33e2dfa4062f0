package repository

import (
	"study_buddy_backend/internal/model"
	"sync"
)

// AnalyticsSnapshot 某个用户分析记录的只读拷贝。
// Recent 最新的在前，Topics 按首次出现顺序排列。
type AnalyticsSnapshot struct {
	TotalSessions int
	Recent        []model.StudySession
	Topics        []model.TopicCount
	FeatureUsage  model.FeatureUsage
	Daily         map[string]int
}

// AnalyticsStore 按用户累积学习行为
type AnalyticsStore interface {
	// Record 追加一次会话并更新计数；day 为当天的日期键，返回是否新建了用户记录
	Record(userID string, session model.StudySession, day string) bool
	// Snapshot 返回最多 recent 条最近会话；用户从未记录过时 ok 为 false
	Snapshot(userID string, recent int) (snap AnalyticsSnapshot, ok bool)
	Users() int
}

type analyticsRecord struct {
	mu           sync.Mutex
	sessions     []model.StudySession
	topicCounts  map[string]int
	topicOrder   []string
	featureUsage model.FeatureUsage
	daily        map[string]int
}

func newAnalyticsRecord() *analyticsRecord {
	return &analyticsRecord{
		topicCounts: make(map[string]int),
		daily:       make(map[string]int),
	}
}

// MemoryAnalyticsStore 进程内存储：首次使用时创建，进程退出即丢失，不做持久化。
// 同一用户的写入由记录自身的锁串行化，不同用户之间互不阻塞。
type MemoryAnalyticsStore struct {
	mu      sync.RWMutex
	records map[string]*analyticsRecord
}

func NewMemoryAnalyticsStore() *MemoryAnalyticsStore {
	return &MemoryAnalyticsStore{records: make(map[string]*analyticsRecord)}
}

func (s *MemoryAnalyticsStore) lookup(userID string) *analyticsRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[userID]
}

func (s *MemoryAnalyticsStore) getOrCreate(userID string) (*analyticsRecord, bool) {
	if rec := s.lookup(userID); rec != nil {
		return rec, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[userID]; ok {
		return rec, false
	}
	rec := newAnalyticsRecord()
	s.records[userID] = rec
	return rec, true
}

func (s *MemoryAnalyticsStore) Record(userID string, session model.StudySession, day string) bool {
	rec, created := s.getOrCreate(userID)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.sessions = append(rec.sessions, session)

	if _, seen := rec.topicCounts[session.Topic]; !seen {
		rec.topicOrder = append(rec.topicOrder, session.Topic)
	}
	rec.topicCounts[session.Topic]++

	rec.featureUsage.Inc(session.Type)
	rec.daily[day]++

	return created
}

func (s *MemoryAnalyticsStore) Snapshot(userID string, recent int) (AnalyticsSnapshot, bool) {
	rec := s.lookup(userID)
	if rec == nil {
		return AnalyticsSnapshot{}, false
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	snap := AnalyticsSnapshot{
		TotalSessions: len(rec.sessions),
		FeatureUsage:  rec.featureUsage,
		Topics:        make([]model.TopicCount, 0, len(rec.topicOrder)),
		Daily:         make(map[string]int, len(rec.daily)),
	}

	for _, topic := range rec.topicOrder {
		snap.Topics = append(snap.Topics, model.TopicCount{Topic: topic, Count: rec.topicCounts[topic]})
	}
	for day, n := range rec.daily {
		snap.Daily[day] = n
	}

	if recent > len(rec.sessions) {
		recent = len(rec.sessions)
	}
	if recent < 0 {
		recent = 0
	}
	snap.Recent = make([]model.StudySession, 0, recent)
	for i := len(rec.sessions) - 1; i >= len(rec.sessions)-recent; i-- {
		snap.Recent = append(snap.Recent, rec.sessions[i])
	}

	return snap, true
}

func (s *MemoryAnalyticsStore) Users() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
