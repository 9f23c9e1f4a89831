package questionService

import (
	"InterviewCoach/internal/api/question"
	contextPkg "InterviewCoach/pkg/context"
	"InterviewCoach/pkg/nlp"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// EvaluateTranscript scores a spoken answer against the question's keyword
// list and sample answer. The scoring itself is pure; this only resolves the
// question and maps a missing one to an invalid-ID error.
func (s *questionsService) EvaluateTranscript(ctx context.Context, req question.TranscriptRequest) (nlp.Evaluation, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.questionsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nlp.Evaluation{}, err
	}

	q, err := repo.Questions.GetQuestionByID(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, question.ErrQuestionNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"question_id": req.QuestionID,
			}).Warn("Transcript evaluation for unknown question")
			return nlp.Evaluation{}, question.ErrInvalidQuestionID
		}
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"question_id": req.QuestionID,
			"error":       err.Error(),
		}).Error("Failed to get question for transcript evaluation")
		return nlp.Evaluation{}, err
	}

	evaluation := s.scorer.Evaluate(req.Transcript, q.Keywords, q.SampleAnswer)

	s.log.WithFields(logrus.Fields{
		"request_id":    requestID,
		"question_id":   req.QuestionID,
		"match_score":   evaluation.MatchScore,
		"sample_score":  evaluation.SampleScore,
		"novelty_score": evaluation.NoveltyScore,
	}).Info("Transcript evaluated")

	return evaluation, nil
}
