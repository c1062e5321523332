package service

import (
	"testing"

	"github.com/lehuy/speaktrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsageFixture() (*stubQuestionRepo, *stubUsageRepo, UsageService) {
	questionRepo := &stubQuestionRepo{}
	for id := uint(1); id <= 5; id++ {
		questionRepo.questions = append(questionRepo.questions, question(id, model.Part1, "Hometown"))
	}
	usageRepo := &stubUsageRepo{}
	userRepo := &stubUserRepo{users: map[uint]model.User{1: {ID: 1, Email: "mai@example.com"}}}
	return questionRepo, usageRepo, NewUsageService(usageRepo, questionRepo, userRepo)
}

func TestRecordUsageIsIdempotent(t *testing.T) {
	_, usageRepo, svc := newUsageFixture()

	recorded, err := svc.RecordUsage(1, []uint{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, recorded)
	assert.Len(t, usageRepo.records, 2)

	// Same confirmation again: ledger unchanged, nothing newly recorded.
	recorded, err = svc.RecordUsage(1, []uint{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, recorded)
	assert.Len(t, usageRepo.records, 2)
}

func TestRecordUsagePartialOverlapCountsOnlyNewPairs(t *testing.T) {
	_, usageRepo, svc := newUsageFixture()

	_, err := svc.RecordUsage(1, []uint{1, 2})
	require.NoError(t, err)

	recorded, err := svc.RecordUsage(1, []uint{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, recorded)
	assert.Len(t, usageRepo.records, 4)
}

func TestRecordUsageCollapsesDuplicateInputIDs(t *testing.T) {
	_, usageRepo, svc := newUsageFixture()

	recorded, err := svc.RecordUsage(1, []uint{3, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, 1, recorded)
	assert.Len(t, usageRepo.records, 1)
}

func TestRecordUsageDenormalizesPart(t *testing.T) {
	questionRepo, usageRepo, svc := newUsageFixture()
	questionRepo.questions = append(questionRepo.questions, question(11, model.Part2, "People"))

	_, err := svc.RecordUsage(1, []uint{1, 11})
	require.NoError(t, err)
	require.Len(t, usageRepo.records, 2)

	partByQuestion := make(map[uint]int)
	for _, rec := range usageRepo.records {
		partByQuestion[rec.QuestionID] = rec.Part
	}
	assert.Equal(t, model.Part1, partByQuestion[1])
	assert.Equal(t, model.Part2, partByQuestion[11])
}

func TestRecordUsageRejectsEmptyList(t *testing.T) {
	_, usageRepo, svc := newUsageFixture()

	_, err := svc.RecordUsage(1, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, usageRepo.records)
}

func TestRecordUsageRejectsUnknownQuestionIDsAtomically(t *testing.T) {
	_, usageRepo, svc := newUsageFixture()

	// One unknown id rejects the whole batch before anything is written.
	_, err := svc.RecordUsage(1, []uint{1, 2, 999})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, usageRepo.records)
}

func TestRecordUsageUserNotFound(t *testing.T) {
	_, usageRepo, svc := newUsageFixture()

	_, err := svc.RecordUsage(42, []uint{1})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, usageRepo.records)
}
