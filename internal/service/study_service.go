package service

import (
	"context"
	"fmt"
	"strings"
	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/util"
	"study_buddy_backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	DefaultFlashcardCount = 5
	MaxFlashcardCount     = 20
)

// StudyService 把学习请求整理成提示词并交给 Completer
type StudyService struct {
	AI Completer
}

func NewStudyService(ai Completer) *StudyService {
	return &StudyService{AI: ai}
}

type FlashcardsResult struct {
	Raw   string
	Cards []model.Flashcard
	Count int
}

// QuizResult Parsed 为 false 时 Questions 为空，Raw 保存原始文本
type QuizResult struct {
	Difficulty model.Difficulty
	Questions  []model.QuizQuestion
	Raw        string
	Parsed     bool
}

func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", util.ErrValidation, field)
	}
	return value, nil
}

func (s *StudyService) Explain(ctx context.Context, concept string) (string, error) {
	concept, err := requireText("concept", concept)
	if err != nil {
		return "", err
	}

	return s.AI.Complete(ctx, CompletionRequest{
		Kind:        model.ContentExplain,
		System:      "You are explaining to someone who isn't familiar with the concept. Use simple words and fun comparisons. Keep it under 200 words.",
		User:        fmt.Sprintf("Explain %s in the simplest way possible", concept),
		MaxTokens:   150,
		Temperature: 0.8,
	})
}

func (s *StudyService) StudyNotes(ctx context.Context, topic string) (string, error) {
	topic, err := requireText("topic", topic)
	if err != nil {
		return "", err
	}

	return s.AI.Complete(ctx, CompletionRequest{
		Kind:        model.ContentNotes,
		System:      "You are an expert tutor creating study notes. Format with: Overview (2-3 sentences), Key Points (3-5 bullet points), Study Tips (2-3 tips), Quick Memory Trick. Use clear formatting.",
		User:        fmt.Sprintf("Create concise study notes about: %s", topic),
		MaxTokens:   400,
		Temperature: 0.7,
	})
}

// Flashcards count 为 0 时取默认值
func (s *StudyService) Flashcards(ctx context.Context, topic string, count int) (*FlashcardsResult, error) {
	topic, err := requireText("topic", topic)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		count = DefaultFlashcardCount
	}
	if count < 1 || count > MaxFlashcardCount {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", util.ErrValidation, MaxFlashcardCount)
	}

	text, err := s.AI.Complete(ctx, CompletionRequest{
		Kind:        model.ContentFlashcards,
		System:      fmt.Sprintf("Create exactly %d flashcards. Format each as:\nQ: [Clear question]\nA: [Concise answer]\n\nSeparate each flashcard with a blank line.", count),
		User:        fmt.Sprintf("Topic: %s", topic),
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	return &FlashcardsResult{
		Raw:   text,
		Cards: ParseFlashcards(text),
		Count: count,
	}, nil
}

func normalizeDifficulty(d string) (model.Difficulty, error) {
	switch model.Difficulty(strings.ToLower(strings.TrimSpace(d))) {
	case "":
		return model.DifficultyMedium, nil
	case model.DifficultyEasy:
		return model.DifficultyEasy, nil
	case model.DifficultyMedium:
		return model.DifficultyMedium, nil
	case model.DifficultyHard:
		return model.DifficultyHard, nil
	}
	return "", fmt.Errorf("%w: difficulty must be one of easy, medium, hard", util.ErrValidation)
}

const quizSystemPrompt = `Create a quiz with 4 multiple choice questions. Return ONLY valid JSON:
[
  {
    "question": "Question text here?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correct": 0,
    "explanation": "Brief explanation why this is correct"
  }
]
Difficulty: %s.`

func (s *StudyService) Quiz(ctx context.Context, topic, difficulty string) (*QuizResult, error) {
	topic, err := requireText("topic", topic)
	if err != nil {
		return nil, err
	}
	level, err := normalizeDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	text, err := s.AI.Complete(ctx, CompletionRequest{
		Kind:        model.ContentQuiz,
		System:      fmt.Sprintf(quizSystemPrompt, level),
		User:        fmt.Sprintf("Create a quiz about: %s", topic),
		MaxTokens:   800,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	questions, parseErr := ParseQuiz(text)
	if parseErr != nil {
		logger.Log.Warn("quiz response is not structured, returning raw text",
			zap.String("topic", topic),
			zap.Error(parseErr),
		)
		return &QuizResult{Difficulty: level, Raw: text}, nil
	}
	return &QuizResult{Difficulty: level, Questions: questions, Parsed: true}, nil
}
