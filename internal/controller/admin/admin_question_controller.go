package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lehuy/speaktrack/internal/dto"
	"github.com/lehuy/speaktrack/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	questionService service.QuestionService
}

func NewAdminQuestionController(questionService service.QuestionService) *AdminQuestionController {
	return &AdminQuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Admin) Add a catalog question
// @Description Adds a single question to the speaking catalog for the given part (1-3).
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateQuestionsBatch godoc
// @Summary (Admin) Seed catalog questions in bulk
// @Description Adds many questions at once, typically for initial catalog seeding.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param questions body dto.QuestionBatchCreateDTO true "Questions to create"
// @Success 201 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/batch [post]
func (c *AdminQuestionController) CreateQuestionsBatch(ctx *gin.Context) {
	var req dto.QuestionBatchCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestionsBatch: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.CreateQuestionsBatch(req)
	if err != nil {
		log.Error().Err(err).Int("count", len(req.Questions)).Msg("Admin CreateQuestionsBatch: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllQuestions godoc
// @Summary (Admin) List catalog questions
// @Description Lists catalog questions, optionally filtered by part.
// @Tags Admin - Questions
// @Produce json
// @Param part query int false "Filter by part (1-3)"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid part filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [get]
func (c *AdminQuestionController) GetAllQuestions(ctx *gin.Context) {
	var part *int
	if partStr := ctx.Query("part"); partStr != "" {
		val, err := strconv.Atoi(partStr)
		if err != nil || val < 1 || val > 3 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid part filter, must be 1, 2 or 3"})
			return
		}
		part = &val
	}

	questions, err := c.questionService.GetAllQuestions(part)
	if err != nil {
		log.Error().Err(err).Msg("Admin GetAllQuestions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a catalog question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param question body dto.QuestionCreateDTO true "Updated question data (part must match the existing question)"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data or attempt to change part"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{question_id} [put]
func (c *AdminQuestionController) UpdateQuestion(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.UpdateQuestion(questionID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Warn().Err(err).Uint("questionID", questionID).Msg("Admin UpdateQuestion: Not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary (Admin) Remove a question from the catalog
// @Description Soft-deletes the question. Existing usage records are kept; the question is simply never selected again.
// @Tags Admin - Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 204 "Question removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid Question ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id} [delete]
func (c *AdminQuestionController) DeleteQuestion(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	if err := c.questionService.DeleteQuestion(questionID); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Admin DeleteQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete question", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func parseQuestionID(ctx *gin.Context) (uint, bool) {
	questionIDStr := ctx.Param("question_id")
	val, err := strconv.ParseUint(questionIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Question ID format"})
		return 0, false
	}
	return uint(val), true
}
