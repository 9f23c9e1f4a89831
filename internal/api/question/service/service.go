package questionService

import (
	"InterviewCoach/internal/api/question"
	questionRepository "InterviewCoach/internal/api/question/repository"
	"InterviewCoach/internal/entity"
	"InterviewCoach/pkg/nlp"
	"InterviewCoach/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IQuestionService interface {
	CreateQuestion(ctx context.Context, req question.CreateQuestionRequest) (entity.Question, error)
	GetQuestionByID(ctx context.Context, id string) (entity.Question, error)
	GetAllQuestions(ctx context.Context, page, limit int) (*question.QuestionListResponse, error)
	UpdateQuestion(ctx context.Context, id string, req question.UpdateQuestionRequest) error
	DeleteQuestion(ctx context.Context, id string) error
	EvaluateTranscript(ctx context.Context, req question.TranscriptRequest) (nlp.Evaluation, error)
	EnsureDefaultQuestions(ctx context.Context) error
}

type questionsService struct {
	log           *logrus.Logger
	questionsRepo questionRepository.Repository
	scorer        nlp.IScorer
	utils         utils.IUtils
}

func NewQuestionService(
	log *logrus.Logger,
	questionsRepo questionRepository.Repository,
	scorer nlp.IScorer,
	utils utils.IUtils,
) IQuestionService {
	return &questionsService{
		log:           log,
		questionsRepo: questionsRepo,
		scorer:        scorer,
		utils:         utils,
	}
}
