package question

import "time"

type CreateQuestionRequest struct {
	Question     string   `json:"question" validate:"required,min=5,max=512"`
	Keywords     []string `json:"keywords" validate:"required,min=1,dive,required"`
	SampleAnswer string   `json:"sample_answer" validate:"omitempty,max=4096"`
}

type UpdateQuestionRequest struct {
	Question     string   `json:"question" validate:"omitempty,min=5,max=512"`
	Keywords     []string `json:"keywords" validate:"omitempty,min=1,dive,required"`
	SampleAnswer string   `json:"sample_answer" validate:"omitempty,max=4096"`
}

type TranscriptRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
	Transcript string `json:"transcript"`
}

type QuestionResponse struct {
	ID           string    `json:"id"`
	Question     string    `json:"question"`
	Keywords     []string  `json:"keywords"`
	SampleAnswer string    `json:"sample_answer"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Total     int                `json:"total"`
}
