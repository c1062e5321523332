package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lehuy/speaktrack/internal/dto"
	"github.com/lehuy/speaktrack/internal/service"
	"github.com/rs/zerolog/log"
)

type TestSetController struct {
	selectionService service.SelectionService
	usageService     service.UsageService
}

func NewTestSetController(selectionService service.SelectionService, usageService service.UsageService) *TestSetController {
	return &TestSetController{
		selectionService: selectionService,
		usageService:     usageService,
	}
}

// GetTestSet godoc
// @Summary (User) Generate a speaking test set
// @Description Assembles Part 1/2/3 questions for the user, avoiding questions they have already been shown. Generating a set does not record usage; confirm via POST /users/{user_id}/usage once questions were actually presented.
// @Tags User - Test Sets
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.TestSetDTO "Generated test set. exhausted_parts lists parts with fewer questions than configured."
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID"
// @Failure 404 {object} dto.ErrorResponse "Account not found (code account_not_found)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Failure 503 {object} dto.ErrorResponse "Empty question catalog (code catalog_empty)"
// @Router /users/{user_id}/test-set [get]
func (c *TestSetController) GetTestSet(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	testSet, err := c.selectionService.SelectTestSet(userID)
	if err != nil {
		c.writeSelectionError(ctx, userID, err)
		return
	}
	ctx.JSON(http.StatusOK, testSet)
}

// ConfirmUsage godoc
// @Summary (User) Confirm which questions were presented
// @Description Appends the given question ids to the user's usage ledger. Idempotent: already-recorded pairs are skipped and only newly recorded pairs are counted.
// @Tags User - Test Sets
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param usage body dto.ConfirmUsageDTO true "Non-empty list of presented question ids"
// @Success 200 {object} dto.ConfirmUsageResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Empty list, malformed body, or unknown question ids"
// @Failure 404 {object} dto.ErrorResponse "Account not found (code account_not_found)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/usage [post]
func (c *TestSetController) ConfirmUsage(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	var req dto.ConfirmUsageDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("ConfirmUsage: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	recorded, err := c.usageService.RecordUsage(userID, req.QuestionIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Code: "account_not_found", Message: "Account not found, please re-authenticate"})
		case errors.Is(err, service.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint("userID", userID).Msg("ConfirmUsage: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to record usage", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.ConfirmUsageResponseDTO{RecordedCount: recorded})
}

func (c *TestSetController) writeSelectionError(ctx *gin.Context, userID uint, err error) {
	var catalogEmpty *service.CatalogEmptyError
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		// Distinguishable from a generic failure so clients can re-authenticate.
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Code: "account_not_found", Message: "Account not found, please re-authenticate"})
	case errors.Is(err, service.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.As(err, &catalogEmpty):
		// A part with zero questions is an upstream data problem; 503 keeps it
		// apart from genuine internal failures.
		log.Error().Err(err).Uint("userID", userID).Int("part", catalogEmpty.Part).Msg("GetTestSet: catalog empty")
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Code: "catalog_empty", Message: err.Error()})
	default:
		log.Error().Err(err).Uint("userID", userID).Msg("GetTestSet: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate test set", Details: []string{err.Error()}})
	}
}

func parseUserID(ctx *gin.Context) (uint, bool) {
	userIDStr := ctx.Param("user_id")
	val, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil || val == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format"})
		return 0, false
	}
	return uint(val), true
}
