package dto

// QuestionCreateDTO is used by admins to add a single catalog question.
type QuestionCreateDTO struct {
	Part   int    `json:"part" binding:"required,min=1,max=3"`
	Topic  string `json:"topic"`
	Title  string `json:"title" binding:"required"`
	Prompt string `json:"prompt" binding:"required"`
}

// QuestionBatchCreateDTO seeds the catalog with many questions at once.
type QuestionBatchCreateDTO struct {
	Questions []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// UserCreateDTO registers a practice account.
type UserCreateDTO struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}
