package questionRepository

const (
	queryCreateQuestion = `
		INSERT INTO questions (
			id,
			question,
			keywords,
			sample_answer,
			created_at,
			updated_at
		) VALUES (
			:id,
			:question,
			:keywords,
			:sample_answer,
			:created_at,
			:updated_at
		)
	`

	queryGetQuestionByID = `
		SELECT
			id,
			question,
			keywords,
			sample_answer,
			created_at,
			updated_at
		FROM questions
		WHERE id = :id
	`

	queryGetAllQuestions = `
		SELECT
			id,
			question,
			keywords,
			sample_answer,
			created_at,
			updated_at
		FROM questions
		ORDER BY created_at ASC
		LIMIT :limit OFFSET :offset
	`

	queryCountQuestions = `
		SELECT COUNT(*)
		FROM questions
	`

	queryUpdateQuestion = `
		UPDATE questions
		SET
			question = CASE WHEN :question = '' THEN question ELSE :question END,
			keywords = CASE WHEN :has_keywords THEN :keywords ELSE keywords END,
			sample_answer = CASE WHEN :sample_answer = '' THEN sample_answer ELSE :sample_answer END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteQuestion = `
		DELETE FROM questions
		WHERE id = :id
	`
)
