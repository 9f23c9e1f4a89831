package question

import (
	"InterviewCoach/pkg/response"
	"errors"
)

var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrInvalidQuestionID = errors.New("invalid question id")

	ErrCreateQuestion = response.NewError(500, "failed to create question")
	ErrUpdateQuestion = response.NewError(500, "failed to update question")
	ErrDeleteQuestion = response.NewError(500, "failed to delete question")
)
