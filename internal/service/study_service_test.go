package service

import (
	"context"
	"errors"
	"fmt"
	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompleter 记录最后一次请求并返回预设结果
type fakeCompleter struct {
	Text string
	Err  error

	Calls int
	Last  CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req CompletionRequest) (string, error) {
	f.Calls++
	f.Last = req
	return f.Text, f.Err
}

func TestStudyService_Explain(t *testing.T) {
	ai := &fakeCompleter{Text: "It's like a tiny factory."}
	svc := NewStudyService(ai)

	out, err := svc.Explain(context.Background(), " photosynthesis ")
	require.NoError(t, err)
	assert.Equal(t, "It's like a tiny factory.", out)

	assert.Equal(t, model.ContentExplain, ai.Last.Kind)
	assert.Equal(t, 150, ai.Last.MaxTokens)
	assert.Equal(t, 0.8, ai.Last.Temperature)
	assert.Equal(t, "Explain photosynthesis in the simplest way possible", ai.Last.User)
}

func TestStudyService_RequiresTopic(t *testing.T) {
	ai := &fakeCompleter{}
	svc := NewStudyService(ai)
	ctx := context.Background()

	_, err := svc.Explain(ctx, "")
	assert.ErrorIs(t, err, util.ErrValidation)
	_, err = svc.StudyNotes(ctx, "  ")
	assert.ErrorIs(t, err, util.ErrValidation)
	_, err = svc.Flashcards(ctx, "", 0)
	assert.ErrorIs(t, err, util.ErrValidation)
	_, err = svc.Quiz(ctx, "", "")
	assert.ErrorIs(t, err, util.ErrValidation)

	assert.Zero(t, ai.Calls)
}

func TestStudyService_StudyNotes(t *testing.T) {
	ai := &fakeCompleter{Text: "Overview ..."}
	svc := NewStudyService(ai)

	out, err := svc.StudyNotes(context.Background(), "Mitosis")
	require.NoError(t, err)
	assert.Equal(t, "Overview ...", out)
	assert.Equal(t, model.ContentNotes, ai.Last.Kind)
	assert.Equal(t, 400, ai.Last.MaxTokens)
	assert.Equal(t, 0.7, ai.Last.Temperature)
	assert.Equal(t, "Create concise study notes about: Mitosis", ai.Last.User)
}

func TestStudyService_Flashcards(t *testing.T) {
	ai := &fakeCompleter{Text: "Q: What is X?\nA: X is Y.\n\nQ: What is Z?\nA: Z is W."}
	svc := NewStudyService(ai)

	res, err := svc.Flashcards(context.Background(), "Letters", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultFlashcardCount, res.Count)
	assert.Equal(t, ai.Text, res.Raw)
	assert.Len(t, res.Cards, 2)
	assert.Contains(t, ai.Last.System, "Create exactly 5 flashcards.")
	assert.Equal(t, 500, ai.Last.MaxTokens)

	_, err = svc.Flashcards(context.Background(), "Letters", MaxFlashcardCount+1)
	assert.ErrorIs(t, err, util.ErrValidation)
	_, err = svc.Flashcards(context.Background(), "Letters", -1)
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestStudyService_QuizParsed(t *testing.T) {
	ai := &fakeCompleter{Text: validQuiz}
	svc := NewStudyService(ai)

	res, err := svc.Quiz(context.Background(), "Math", "")
	require.NoError(t, err)
	assert.True(t, res.Parsed)
	assert.Len(t, res.Questions, 2)
	assert.Equal(t, model.DifficultyMedium, res.Difficulty)
	assert.Contains(t, ai.Last.System, "Difficulty: medium.")
	assert.Equal(t, 800, ai.Last.MaxTokens)
}

func TestStudyService_QuizRawFallback(t *testing.T) {
	ai := &fakeCompleter{Text: "I could not format this as JSON, sorry."}
	svc := NewStudyService(ai)

	res, err := svc.Quiz(context.Background(), "Math", "HARD")
	require.NoError(t, err)
	assert.False(t, res.Parsed)
	assert.Empty(t, res.Questions)
	assert.Equal(t, ai.Text, res.Raw)
	assert.Equal(t, model.DifficultyHard, res.Difficulty)
}

func TestStudyService_QuizRejectsUnknownDifficulty(t *testing.T) {
	svc := NewStudyService(&fakeCompleter{})

	_, err := svc.Quiz(context.Background(), "Math", "impossible")
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestStudyService_PropagatesProviderErrors(t *testing.T) {
	cause := fmt.Errorf("%w: rate limited", util.ErrUpstream)
	svc := NewStudyService(&fakeCompleter{Err: cause})
	ctx := context.Background()

	_, err := svc.StudyNotes(ctx, "x")
	assert.True(t, errors.Is(err, util.ErrUpstream))
	_, err = svc.Flashcards(ctx, "x", 3)
	assert.True(t, errors.Is(err, util.ErrUpstream))
	_, err = svc.Quiz(ctx, "x", "easy")
	assert.True(t, errors.Is(err, util.ErrUpstream))
}
