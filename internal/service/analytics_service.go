package service

import (
	"sort"
	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/repository"
	"study_buddy_backend/internal/util"
	"study_buddy_backend/pkg/monitoring"
	"time"
)

const (
	statsDays      = 7
	topTopicsLimit = 5
	recentLimit    = 10
)

// TrackInput Timestamp 为空时取当前时间
type TrackInput struct {
	Topic     string
	Type      model.ContentType
	Duration  int
	Timestamp *time.Time
}

type AnalyticsService struct {
	Store    repository.AnalyticsStore
	Location *time.Location
	Now      func() time.Time
}

func NewAnalyticsService(store repository.AnalyticsStore, loc *time.Location) *AnalyticsService {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsService{
		Store:    store,
		Location: loc,
		Now:      time.Now,
	}
}

func (s *AnalyticsService) today() time.Time {
	return s.Now().In(s.Location)
}

// Track 记录一次学习行为，不会失败
func (s *AnalyticsService) Track(userID string, in TrackInput) {
	now := s.today()

	sess := model.StudySession{
		Topic:    in.Topic,
		Type:     in.Type,
		Duration: in.Duration,
	}
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		sess.Timestamp = *in.Timestamp
	} else {
		sess.Timestamp = now
	}

	created := s.Store.Record(userID, sess, now.Format(util.DateFormat))

	label := string(in.Type)
	if !in.Type.Known() {
		label = "other"
	}
	monitoring.TrackedEvents.WithLabelValues(label).Inc()
	if created {
		monitoring.TrackedUsers.Set(float64(s.Store.Users()))
	}
}

// Stats 汇总最近七天、热门主题与最近会话；从未记录过的用户返回全零结果
func (s *AnalyticsService) Stats(userID string) model.AnalyticsSummary {
	snap, _ := s.Store.Snapshot(userID, recentLimit)

	summary := model.AnalyticsSummary{
		TotalSessions:  snap.TotalSessions,
		FeatureUsage:   snap.FeatureUsage,
		TopTopics:      topTopics(snap.Topics, topTopicsLimit),
		Last7Days:      make([]model.DayCount, 0, statsDays),
		RecentSessions: snap.Recent,
	}
	if summary.RecentSessions == nil {
		summary.RecentSessions = []model.StudySession{}
	}

	today := s.today()
	for i := statsDays - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		key := d.Format(util.DateFormat)
		summary.Last7Days = append(summary.Last7Days, model.DayCount{
			Date:  d.Format("Mon"),
			Day:   key,
			Count: snap.Daily[key],
		})
	}

	return summary
}

// topTopics 按次数降序，次数相同保持首次出现的顺序
func topTopics(topics []model.TopicCount, limit int) []model.TopicCount {
	sorted := make([]model.TopicCount, len(topics))
	copy(sorted, topics)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
