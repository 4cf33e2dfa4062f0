package model

import (
	"slices"
	"time"
)

// ContentType 生成内容的类型标签
type ContentType string

const (
	ContentExplain    ContentType = "explain"
	ContentNotes      ContentType = "notes"
	ContentFlashcards ContentType = "flashcards"
	ContentQuiz       ContentType = "quiz"
)

// ContentTypes 固定的四种类型，顺序即展示顺序
var ContentTypes = []ContentType{ContentExplain, ContentNotes, ContentFlashcards, ContentQuiz}

func (t ContentType) Known() bool {
	return slices.Contains(ContentTypes, t)
}

// StudySession 一次被记录的学习行为
// swagger:model StudySession
type StudySession struct {
	Topic     string      `json:"topic"`
	Type      ContentType `json:"type"`
	Duration  int         `json:"duration"`
	Timestamp time.Time   `json:"timestamp"`
}

// FeatureUsage 四种功能的使用次数
type FeatureUsage struct {
	Explain    int `json:"explain"`
	Notes      int `json:"notes"`
	Flashcards int `json:"flashcards"`
	Quiz       int `json:"quiz"`
}

// Inc 只对已知类型计数，未知类型静默忽略
func (f *FeatureUsage) Inc(t ContentType) bool {
	switch t {
	case ContentExplain:
		f.Explain++
	case ContentNotes:
		f.Notes++
	case ContentFlashcards:
		f.Flashcards++
	case ContentQuiz:
		f.Quiz++
	default:
		return false
	}
	return true
}


type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// DayCount 最近七天中某一天的次数，Date 为星期缩写（Mon），Day 为 ISO 日期
type DayCount struct {
	Date  string `json:"date"`
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// AnalyticsSummary 仪表盘展示用的汇总
// swagger:model AnalyticsSummary
type AnalyticsSummary struct {
	TotalSessions  int            `json:"totalSessions"`
	FeatureUsage   FeatureUsage   `json:"featureUsage"`
	TopTopics      []TopicCount   `json:"topTopics"`
	Last7Days      []DayCount     `json:"last7Days"`
	RecentSessions []StudySession `json:"recentSessions"`
}
