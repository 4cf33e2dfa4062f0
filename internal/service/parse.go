package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"study_buddy_backend/internal/model"
)

var blankLine = regexp.MustCompile(`\n[ \t]*\n`)

// ParseFlashcards 按空行切分，每块取第一行 Q: 与第一行 A:，没有问题的块丢弃
func ParseFlashcards(text string) []model.Flashcard {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	cards := make([]model.Flashcard, 0)
	for _, block := range blankLine.Split(text, -1) {
		var card model.Flashcard
		var haveQ, haveA bool
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			switch {
			case !haveQ && strings.HasPrefix(line, "Q:"):
				card.Question = strings.TrimSpace(strings.TrimPrefix(line, "Q:"))
				haveQ = true
			case !haveA && strings.HasPrefix(line, "A:"):
				card.Answer = strings.TrimSpace(strings.TrimPrefix(line, "A:"))
				haveA = true
			}
		}
		if card.Question != "" {
			cards = append(cards, card)
		}
	}
	return cards
}

const quizOptionCount = 4

// ParseQuiz 解析模型返回的 JSON 题目数组，允许外层包裹 ``` 代码块
func ParseQuiz(text string) ([]model.QuizQuestion, error) {
	payload := stripCodeFence(strings.TrimSpace(text))
	if payload == "" {
		return nil, errors.New("empty quiz payload")
	}

	var questions []model.QuizQuestion
	if err := json.Unmarshal([]byte(payload), &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, errors.New("quiz has no questions")
	}

	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("question %d has no text", i)
		}
		if len(q.Options) != quizOptionCount {
			return nil, fmt.Errorf("question %d has %d options, want %d", i, len(q.Options), quizOptionCount)
		}
		if q.Correct < 0 || q.Correct >= quizOptionCount {
			return nil, fmt.Errorf("question %d has correct index %d out of range", i, q.Correct)
		}
	}
	return questions, nil
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
