package questionRepository

import (
	"InterviewCoach/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Questions: &questionsRepository{q: sqlExecutor, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Questions interface {
		CreateQuestion(ctx context.Context, question entity.Question) error
		GetQuestionByID(ctx context.Context, id string) (entity.Question, error)
		GetAllQuestions(ctx context.Context, limit, offset int) ([]entity.Question, int, error)
		CountQuestions(ctx context.Context) (int, error)
		UpdateQuestion(ctx context.Context, question entity.Question) error
		DeleteQuestion(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type questionsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
