package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lehuy/speaktrack/internal/dto"
	"github.com/lehuy/speaktrack/internal/model"
	"github.com/lehuy/speaktrack/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuestionService is the administrative surface of the question catalog.
// The selection engine never goes through it; seeding and curation do.
type QuestionService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	CreateQuestionsBatch(req dto.QuestionBatchCreateDTO) ([]dto.QuestionResponseDTO, error)
	GetQuestion(id uint) (*dto.QuestionResponseDTO, error)
	GetAllQuestions(part *int) ([]dto.QuestionResponseDTO, error)
	UpdateQuestion(id uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question := model.Question{}
	copier.Copy(&question, &req)

	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) CreateQuestionsBatch(req dto.QuestionBatchCreateDTO) ([]dto.QuestionResponseDTO, error) {
	questions := make([]model.Question, 0, len(req.Questions))
	for _, qDto := range req.Questions {
		var question model.Question
		copier.Copy(&question, &qDto)
		questions = append(questions, question)
	}

	if err := s.repo.CreateBatch(questions); err != nil {
		log.Error().Err(err).Int("count", len(questions)).Msg("Failed to batch create questions")
		return nil, fmt.Errorf("database error creating questions: %w", err)
	}

	var resp []dto.QuestionResponseDTO
	copier.Copy(&resp, &questions)
	return resp, nil
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponseDTO, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("question not found with ID %d: %w", id, err)
	}
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) GetAllQuestions(part *int) ([]dto.QuestionResponseDTO, error) {
	var questions []model.Question
	var err error

	if part != nil {
		questions, err = s.repo.FindByPart(*part)
	} else {
		questions, err = s.repo.FindAll()
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	var resp []dto.QuestionResponseDTO
	copier.Copy(&resp, &questions)
	return resp, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("question not found with ID %d: %w", id, err)
	}

	// A question's part is fixed at creation: ledger rows denormalize it and
	// the seen/unseen partition is keyed on it, so moving a question across
	// parts would resurface it as unseen to users who were already shown it.
	if req.Part != question.Part {
		return nil, fmt.Errorf("%w: part of question %d cannot change from %d to %d", ErrInvalidInput, id, question.Part, req.Part)
	}

	question.Topic = req.Topic
	question.Title = req.Title
	question.Prompt = req.Prompt

	if err := s.repo.Update(question); err != nil {
		return nil, fmt.Errorf("database error updating question %d: %w", id, err)
	}
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) DeleteQuestion(id uint) error {
	// Usage records referencing the question stay in the ledger; a soft-deleted
	// question simply drops out of the catalog and is never selected again.
	return s.repo.Delete(id)
}
