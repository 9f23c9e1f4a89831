package questionService

import (
	"InterviewCoach/internal/api/question"
	"InterviewCoach/internal/entity"
	contextPkg "InterviewCoach/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// defaultQuestions seed the bank on first boot so the client always has
// something to practice against.
var defaultQuestions = []question.CreateQuestionRequest{
	{
		Question:     "Tell me about yourself.",
		Keywords:     []string{"experience", "background", "skills"},
		SampleAnswer: "I am a software engineer with three years of experience building web applications. My background is in computer science and my core skills are problem solving and teamwork.",
	},
	{
		Question:     "Why do you want this job?",
		Keywords:     []string{"company", "growth", "opportunity"},
		SampleAnswer: "I admire this company's mission and I see a real opportunity for growth here. The role matches my skills and I want to contribute to the team.",
	},
	{
		Question:     "Describe a challenge you faced and how you solved it.",
		Keywords:     []string{"problem", "solution", "result"},
		SampleAnswer: "We faced a performance problem in production. I profiled the system, found the bottleneck, and implemented a caching solution. The result was a fifty percent reduction in latency.",
	},
	{
		Question:     "Where do you see yourself in five years?",
		Keywords:     []string{"goals", "career", "learning"},
		SampleAnswer: "My career goals include leading a small engineering team. I plan to keep learning and to grow into a role with more responsibility.",
	},
}

func (s *questionsService) CreateQuestion(ctx context.Context, req question.CreateQuestionRequest) (entity.Question, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.questionsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Question{}, err
	}
	defer repo.Rollback()

	questionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Question{}, err
	}

	now := time.Now()

	newQuestion := entity.Question{
		ID:           questionID,
		Question:     req.Question,
		Keywords:     req.Keywords,
		SampleAnswer: req.SampleAnswer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.Questions.CreateQuestion(ctx, newQuestion); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create question")
		return entity.Question{}, question.ErrCreateQuestion
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Question{}, question.ErrCreateQuestion
	}

	return newQuestion, nil
}

func (s *questionsService) GetQuestionByID(ctx context.Context, id string) (entity.Question, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.questionsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Question{}, err
	}

	q, err := repo.Questions.GetQuestionByID(ctx, id)
	if err != nil {
		if errors.Is(err, question.ErrQuestionNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Question not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get question")
		}
		return entity.Question{}, err
	}

	return q, nil
}

func (s *questionsService) GetAllQuestions(ctx context.Context, page, limit int) (*question.QuestionListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.questionsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit

	questionsList, total, err := repo.Questions.GetAllQuestions(ctx, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"page":       page,
			"limit":      limit,
			"error":      err.Error(),
		}).Error("Failed to get questions")
		return nil, err
	}

	response := &question.QuestionListResponse{
		Questions: make([]question.QuestionResponse, 0, len(questionsList)),
		Total:     total,
	}

	for _, q := range questionsList {
		response.Questions = append(response.Questions, question.QuestionResponse{
			ID:           q.ID,
			Question:     q.Question,
			Keywords:     q.Keywords,
			SampleAnswer: q.SampleAnswer,
			CreatedAt:    q.CreatedAt,
			UpdatedAt:    q.UpdatedAt,
		})
	}

	return response, nil
}

func (s *questionsService) UpdateQuestion(ctx context.Context, id string, req question.UpdateQuestionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.questionsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if _, err := repo.Questions.GetQuestionByID(ctx, id); err != nil {
		if errors.Is(err, question.ErrQuestionNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Question not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get question")
		}
		return err
	}

	updated := entity.Question{
		ID:           id,
		Question:     req.Question,
		Keywords:     req.Keywords,
		SampleAnswer: req.SampleAnswer,
		UpdatedAt:    time.Now(),
	}

	if err := repo.Questions.UpdateQuestion(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update question")
		return question.ErrUpdateQuestion
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return question.ErrUpdateQuestion
	}

	return nil
}

func (s *questionsService) DeleteQuestion(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.questionsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if err := repo.Questions.DeleteQuestion(ctx, id); err != nil {
		if errors.Is(err, question.ErrQuestionNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Question not found")
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete question")
		return question.ErrDeleteQuestion
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return question.ErrDeleteQuestion
	}

	return nil
}

// EnsureDefaultQuestions seeds the stock questions when the table is empty.
// Runs once at startup, inside a single transaction.
func (s *questionsService) EnsureDefaultQuestions(ctx context.Context) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.questionsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	total, err := repo.Questions.CountQuestions(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to count questions")
		return err
	}

	if total > 0 {
		return nil
	}

	now := time.Now()
	for i, seed := range defaultQuestions {
		questionID, err := s.utils.NewULIDFromTimestamp(now.Add(time.Duration(i) * time.Millisecond))
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate ULID")
			return err
		}

		q := entity.Question{
			ID:           questionID,
			Question:     seed.Question,
			Keywords:     seed.Keywords,
			SampleAnswer: seed.SampleAnswer,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if err := repo.Questions.CreateQuestion(ctx, q); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to seed default question")
			return err
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"count":      len(defaultQuestions),
	}).Info("Seeded default interview questions")

	return nil
}
