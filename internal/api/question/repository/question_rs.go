package questionRepository

import (
	"InterviewCoach/internal/api/question"
	"InterviewCoach/internal/entity"
	contextPkg "InterviewCoach/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type QuestionDB struct {
	ID           sql.NullString `db:"id"`
	Question     sql.NullString `db:"question"`
	Keywords     pq.StringArray `db:"keywords"`
	SampleAnswer sql.NullString `db:"sample_answer"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r *questionsRepository) CreateQuestion(ctx context.Context, q entity.Question) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            q.ID,
		"question":      q.Question,
		"keywords":      pq.StringArray(q.Keywords),
		"sample_answer": q.SampleAnswer,
		"created_at":    q.CreatedAt,
		"updated_at":    q.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateQuestion, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateQuestion")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating question")
		return err
	}

	return nil
}

func (r *questionsRepository) GetQuestionByID(ctx context.Context, id string) (entity.Question, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var questionDB QuestionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetQuestionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetQuestionByID named query preparation err")
		return entity.Question{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&questionDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetQuestionByID no rows found")
			return entity.Question{}, question.ErrQuestionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetQuestionByID execution err")
		return entity.Question{}, err
	}

	return r.makeQuestion(questionDB), nil
}

func (r *questionsRepository) GetAllQuestions(ctx context.Context, limit, offset int) ([]entity.Question, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var questionsList []QuestionDB

	total, err := r.CountQuestions(ctx)
	if err != nil {
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryGetAllQuestions, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllQuestions named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &questionsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllQuestions execution err")
		return nil, 0, err
	}

	var questions []entity.Question
	for _, questionDB := range questionsList {
		questions = append(questions, r.makeQuestion(questionDB))
	}

	return questions, total, nil
}

func (r *questionsRepository) CountQuestions(ctx context.Context) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountQuestions, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountQuestions named query preparation err")
		return 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountQuestions execution err")
		return 0, err
	}

	return total, nil
}

func (r *questionsRepository) UpdateQuestion(ctx context.Context, q entity.Question) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            q.ID,
		"question":      q.Question,
		"has_keywords":  len(q.Keywords) > 0,
		"keywords":      pq.StringArray(q.Keywords),
		"sample_answer": q.SampleAnswer,
		"updated_at":    time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateQuestion, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateQuestion named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateQuestion execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateQuestion rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         q.ID,
		}).Warn("UpdateQuestion no rows affected")
		return question.ErrQuestionNotFound
	}

	return nil
}

func (r *questionsRepository) DeleteQuestion(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteQuestion, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteQuestion named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteQuestion execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteQuestion rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteQuestion no rows affected")
		return question.ErrQuestionNotFound
	}

	return nil
}

func (r *questionsRepository) makeQuestion(q QuestionDB) entity.Question {
	return entity.Question{
		ID:           q.ID.String,
		Question:     q.Question.String,
		Keywords:     []string(q.Keywords),
		SampleAnswer: q.SampleAnswer.String,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}
