package questionService

import (
	"context"
	"io"
	"testing"

	"InterviewCoach/internal/api/question"
	questionRepository "InterviewCoach/internal/api/question/repository"
	"InterviewCoach/internal/entity"
	"InterviewCoach/pkg/nlp"
	"InterviewCoach/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuestionStore struct {
	questions map[string]entity.Question
	order     []string
}

func newFakeQuestionStore() *fakeQuestionStore {
	return &fakeQuestionStore{questions: make(map[string]entity.Question)}
}

func (f *fakeQuestionStore) CreateQuestion(ctx context.Context, q entity.Question) error {
	f.questions[q.ID] = q
	f.order = append(f.order, q.ID)
	return nil
}

func (f *fakeQuestionStore) GetQuestionByID(ctx context.Context, id string) (entity.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return entity.Question{}, question.ErrQuestionNotFound
	}
	return q, nil
}

func (f *fakeQuestionStore) GetAllQuestions(ctx context.Context, limit, offset int) ([]entity.Question, int, error) {
	var all []entity.Question
	for _, id := range f.order {
		all = append(all, f.questions[id])
	}
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (f *fakeQuestionStore) CountQuestions(ctx context.Context) (int, error) {
	return len(f.questions), nil
}

func (f *fakeQuestionStore) UpdateQuestion(ctx context.Context, q entity.Question) error {
	if _, ok := f.questions[q.ID]; !ok {
		return question.ErrQuestionNotFound
	}
	f.questions[q.ID] = q
	return nil
}

func (f *fakeQuestionStore) DeleteQuestion(ctx context.Context, id string) error {
	if _, ok := f.questions[id]; !ok {
		return question.ErrQuestionNotFound
	}
	delete(f.questions, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeRepository struct {
	store *fakeQuestionStore
}

func (f *fakeRepository) NewClient(tx bool) (questionRepository.Client, error) {
	return questionRepository.Client{
		Questions: f.store,
		Commit:    func() error { return nil },
		Rollback:  func() error { return nil },
	}, nil
}

func newTestService(store *fakeQuestionStore) IQuestionService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewQuestionService(logger, &fakeRepository{store: store}, nlp.NewScorer(), utils.New())
}

func TestCreateAndGetQuestion(t *testing.T) {
	store := newFakeQuestionStore()
	svc := newTestService(store)

	created, err := svc.CreateQuestion(context.Background(), question.CreateQuestionRequest{
		Question:     "What motivates you at work?",
		Keywords:     []string{"motivation", "impact"},
		SampleAnswer: "Solving real problems and seeing the impact motivates me.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.GetQuestionByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Question, got.Question)
	assert.Equal(t, []string{"motivation", "impact"}, got.Keywords)
}

func TestGetQuestionByIDNotFound(t *testing.T) {
	svc := newTestService(newFakeQuestionStore())

	_, err := svc.GetQuestionByID(context.Background(), "missing")
	assert.ErrorIs(t, err, question.ErrQuestionNotFound)
}

func TestDeleteQuestionNotFound(t *testing.T) {
	svc := newTestService(newFakeQuestionStore())

	err := svc.DeleteQuestion(context.Background(), "missing")
	assert.ErrorIs(t, err, question.ErrQuestionNotFound)
}

func TestGetAllQuestionsPagination(t *testing.T) {
	store := newFakeQuestionStore()
	svc := newTestService(store)

	for i := 0; i < 5; i++ {
		_, err := svc.CreateQuestion(context.Background(), question.CreateQuestionRequest{
			Question: "Tell me about a project you are proud of.",
			Keywords: []string{"project"},
		})
		require.NoError(t, err)
	}

	page, err := svc.GetAllQuestions(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Len(t, page.Questions, 2)
}

func TestEnsureDefaultQuestionsSeedsEmptyStore(t *testing.T) {
	store := newFakeQuestionStore()
	svc := newTestService(store)

	require.NoError(t, svc.EnsureDefaultQuestions(context.Background()))
	assert.Len(t, store.questions, 4)

	// Idempotent: a populated store is left alone.
	require.NoError(t, svc.EnsureDefaultQuestions(context.Background()))
	assert.Len(t, store.questions, 4)
}

func TestEvaluateTranscript(t *testing.T) {
	store := newFakeQuestionStore()
	svc := newTestService(store)

	created, err := svc.CreateQuestion(context.Background(), question.CreateQuestionRequest{
		Question:     "Why do you want this job?",
		Keywords:     []string{"company", "growth", "opportunity"},
		SampleAnswer: "I admire this company and see an opportunity for growth.",
	})
	require.NoError(t, err)

	result, err := svc.EvaluateTranscript(context.Background(), question.TranscriptRequest{
		QuestionID: created.ID,
		Transcript: "I want to join because the company offers real growth.",
	})
	require.NoError(t, err)

	assert.Equal(t, 66, result.MatchScore)
	assert.Equal(t, []string{"opportunity"}, result.MissingKeywords)
	assert.Equal(t, created.SampleAnswer, result.SampleAnswer)
	assert.Greater(t, result.NoveltyScore, 0)
}

func TestEvaluateTranscriptUnknownQuestion(t *testing.T) {
	svc := newTestService(newFakeQuestionStore())

	_, err := svc.EvaluateTranscript(context.Background(), question.TranscriptRequest{
		QuestionID: "missing",
		Transcript: "Anything at all.",
	})
	assert.ErrorIs(t, err, question.ErrInvalidQuestionID)
}

func TestEvaluateTranscriptEmptyTranscript(t *testing.T) {
	store := newFakeQuestionStore()
	svc := newTestService(store)

	created, err := svc.CreateQuestion(context.Background(), question.CreateQuestionRequest{
		Question:     "Where do you see yourself in five years?",
		Keywords:     []string{"goals", "career"},
		SampleAnswer: "Leading a team.",
	})
	require.NoError(t, err)

	result, err := svc.EvaluateTranscript(context.Background(), question.TranscriptRequest{
		QuestionID: created.ID,
		Transcript: "",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.MatchScore)
	assert.Equal(t, 0, result.SampleScore)
	assert.Equal(t, 0, result.NoveltyScore)
	assert.Equal(t, []string{"goals", "career"}, result.MissingKeywords)
}
