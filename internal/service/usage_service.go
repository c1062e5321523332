package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/lehuy/speaktrack/internal/model"
	"github.com/lehuy/speaktrack/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UsageService appends "shown to user" facts to the usage ledger once a
// client confirms which questions were actually presented. Recording is
// idempotent: pairs already in the ledger are skipped, so retries and
// concurrent confirmations are safe.
type UsageService interface {
	// RecordUsage returns the number of newly recorded (user, question) pairs,
	// which may be less than len(questionIDs).
	RecordUsage(userID uint, questionIDs []uint) (int, error)
}

type usageService struct {
	usageRepo    repository.UsageRecordRepository
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
}

func NewUsageService(
	usageRepo repository.UsageRecordRepository,
	questionRepo repository.QuestionRepository,
	userRepo repository.UserRepository,
) UsageService {
	return &usageService{
		usageRepo:    usageRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
	}
}

func (s *usageService) RecordUsage(userID uint, questionIDs []uint) (int, error) {
	if userID == 0 {
		return 0, fmt.Errorf("%w: user id must be non-zero", ErrInvalidInput)
	}
	if len(questionIDs) == 0 {
		return 0, fmt.Errorf("%w: question id list must not be empty", ErrInvalidInput)
	}

	// Duplicates within the request are harmless; collapse them up front.
	uniqueIDs := make([]uint, 0, len(questionIDs))
	seen := make(map[uint]bool, len(questionIDs))
	for _, id := range questionIDs {
		if id == 0 {
			return 0, fmt.Errorf("%w: question id must be non-zero", ErrInvalidInput)
		}
		if !seen[id] {
			seen[id] = true
			uniqueIDs = append(uniqueIDs, id)
		}
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("error resolving user %d: %w", userID, err)
	}

	// A usage record may only reference a catalog question. Unknown ids reject
	// the whole batch before anything is written, so a confirmation either
	// lands completely or not at all.
	questions, err := s.questionRepo.FindByIDs(uniqueIDs)
	if err != nil {
		return 0, fmt.Errorf("error verifying question ids: %w", err)
	}
	partByID := make(map[uint]int, len(questions))
	for _, q := range questions {
		partByID[q.ID] = q.Part
	}
	for _, id := range uniqueIDs {
		if _, ok := partByID[id]; !ok {
			return 0, fmt.Errorf("%w: unknown question id %d", ErrInvalidInput, id)
		}
	}

	now := time.Now()
	records := make([]model.UsageRecord, 0, len(uniqueIDs))
	for _, id := range uniqueIDs {
		records = append(records, model.UsageRecord{
			UserID:     userID,
			QuestionID: id,
			Part:       partByID[id],
			ShownAt:    now,
		})
	}

	inserted, err := s.usageRepo.InsertIgnoreDuplicates(records)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Int("count", len(records)).Msg("RecordUsage: ledger insert failed")
		return 0, fmt.Errorf("error recording usage for user %d: %w", userID, err)
	}

	log.Info().Uint("userID", userID).Int("requested", len(questionIDs)).Int64("recorded", inserted).Msg("Usage recorded")
	return int(inserted), nil
}
