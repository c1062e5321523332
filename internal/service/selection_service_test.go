package service

import (
	"testing"
	"time"

	"github.com/lehuy/speaktrack/config"
	"github.com/lehuy/speaktrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubQuestionRepo struct {
	questions []model.Question
}

func (s *stubQuestionRepo) Create(q *model.Question) error          { s.questions = append(s.questions, *q); return nil }
func (s *stubQuestionRepo) CreateBatch(qs []model.Question) error   { s.questions = append(s.questions, qs...); return nil }
func (s *stubQuestionRepo) Update(q *model.Question) error {
	for i := range s.questions {
		if s.questions[i].ID == q.ID {
			s.questions[i] = *q
		}
	}
	return nil
}
func (s *stubQuestionRepo) Delete(id uint) error                    { return nil }
func (s *stubQuestionRepo) FindAll() ([]model.Question, error)      { return s.questions, nil }
func (s *stubQuestionRepo) FindByID(id uint) (*model.Question, error) {
	for i := range s.questions {
		if s.questions[i].ID == id {
			return &s.questions[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (s *stubQuestionRepo) FindByIDs(ids []uint) ([]model.Question, error) {
	var out []model.Question
	for _, id := range ids {
		for _, q := range s.questions {
			if q.ID == id {
				out = append(out, q)
			}
		}
	}
	return out, nil
}
func (s *stubQuestionRepo) FindByPart(part int) ([]model.Question, error) {
	var out []model.Question
	for _, q := range s.questions {
		if q.Part == part {
			out = append(out, q)
		}
	}
	return out, nil
}

type stubUsageRepo struct {
	records []model.UsageRecord
}

func (s *stubUsageRepo) FindByUserAndPart(userID uint, part int) ([]model.UsageRecord, error) {
	var out []model.UsageRecord
	for _, r := range s.records {
		if r.UserID == userID && r.Part == part {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubUsageRepo) InsertIgnoreDuplicates(records []model.UsageRecord) (int64, error) {
	var inserted int64
	for _, rec := range records {
		exists := false
		for _, have := range s.records {
			if have.UserID == rec.UserID && have.QuestionID == rec.QuestionID {
				exists = true
				break
			}
		}
		if !exists {
			s.records = append(s.records, rec)
			inserted++
		}
	}
	return inserted, nil
}

type stubUserRepo struct {
	users map[uint]model.User
}

func (s *stubUserRepo) Create(u *model.User) error { s.users[u.ID] = *u; return nil }
func (s *stubUserRepo) FindByID(id uint) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (s *stubUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (s *stubUserRepo) FindAll() ([]model.User, error) {
	var out []model.User
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func question(id uint, part int, topic string) model.Question {
	return model.Question{ID: id, Part: part, Topic: topic, Title: "Q", Prompt: "Prompt"}
}

func newSelectionFixture(cfg config.Selection) (*stubQuestionRepo, *stubUsageRepo, *stubUserRepo, SelectionService) {
	questionRepo := &stubQuestionRepo{}
	usageRepo := &stubUsageRepo{}
	userRepo := &stubUserRepo{users: map[uint]model.User{1: {ID: 1, Email: "mai@example.com"}}}
	svc := NewSelectionService(questionRepo, usageRepo, userRepo, &config.Config{Selection: cfg})
	return questionRepo, usageRepo, userRepo, svc
}

// Catalog with enough questions in every part so a full set can be formed.
func seedFullCatalog(repo *stubQuestionRepo) {
	for id := uint(1); id <= 5; id++ {
		repo.questions = append(repo.questions, question(id, model.Part1, "Hometown"))
	}
	for id := uint(11); id <= 13; id++ {
		repo.questions = append(repo.questions, question(id, model.Part2, "Describe a person"))
	}
	for id := uint(21); id <= 25; id++ {
		repo.questions = append(repo.questions, question(id, model.Part3, "Society"))
	}
}

func TestSelectTestSetNeverRepeatsWhileUnseenSuffices(t *testing.T) {
	questionRepo, usageRepo, _, svc := newSelectionFixture(config.Selection{Part1Count: 3, Part2Count: 1, Part3Count: 2})
	seedFullCatalog(questionRepo)

	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	usageRepo.records = []model.UsageRecord{
		{UserID: 1, QuestionID: 1, Part: model.Part1, ShownAt: t1},
		{UserID: 1, QuestionID: 2, Part: model.Part1, ShownAt: t2},
	}

	// Every draw must come from the unseen pool {3,4,5}.
	for i := 0; i < 20; i++ {
		set, err := svc.SelectTestSet(1)
		require.NoError(t, err)
		require.Len(t, set.Part1, 3)
		for _, q := range set.Part1 {
			assert.NotContains(t, []uint{1, 2}, q.ID, "seen question resurfaced while unseen pool sufficed")
		}
	}
}

func TestSelectTestSetLRUFallbackOrdering(t *testing.T) {
	questionRepo, usageRepo, _, svc := newSelectionFixture(config.Selection{Part1Count: 3, Part2Count: 1, Part3Count: 2})
	seedFullCatalog(questionRepo)

	// All of Part 1 seen, distinct timestamps: q4 oldest, then q2, q5, q1, q3.
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	order := []uint{4, 2, 5, 1, 3}
	for i, qid := range order {
		usageRepo.records = append(usageRepo.records, model.UsageRecord{
			UserID: 1, QuestionID: qid, Part: model.Part1, ShownAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	set, err := svc.SelectTestSet(1)
	require.NoError(t, err)
	require.Len(t, set.Part1, 3)
	// Oldest-shown recycle first, in exact LRU order.
	assert.Equal(t, uint(4), set.Part1[0].ID)
	assert.Equal(t, uint(2), set.Part1[1].ID)
	assert.Equal(t, uint(5), set.Part1[2].ID)
}

func TestSelectTestSetLRUTiesBreakByQuestionID(t *testing.T) {
	questionRepo, usageRepo, _, svc := newSelectionFixture(config.Selection{Part1Count: 3, Part2Count: 1, Part3Count: 2})
	seedFullCatalog(questionRepo)

	shownAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	for _, qid := range []uint{5, 3, 1, 2, 4} {
		usageRepo.records = append(usageRepo.records, model.UsageRecord{
			UserID: 1, QuestionID: qid, Part: model.Part1, ShownAt: shownAt,
		})
	}

	set, err := svc.SelectTestSet(1)
	require.NoError(t, err)
	require.Len(t, set.Part1, 3)
	assert.Equal(t, uint(1), set.Part1[0].ID)
	assert.Equal(t, uint(2), set.Part1[1].ID)
	assert.Equal(t, uint(3), set.Part1[2].ID)
}

func TestSelectTestSetMixesUnseenThenLRU(t *testing.T) {
	questionRepo, usageRepo, _, svc := newSelectionFixture(config.Selection{Part1Count: 3, Part2Count: 1, Part3Count: 2})
	seedFullCatalog(questionRepo)

	// 4 of 5 seen: q3 is the only unseen, q5 the oldest seen, then q4.
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i, qid := range []uint{5, 4, 1, 2} {
		usageRepo.records = append(usageRepo.records, model.UsageRecord{
			UserID: 1, QuestionID: qid, Part: model.Part1, ShownAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	set, err := svc.SelectTestSet(1)
	require.NoError(t, err)
	require.Len(t, set.Part1, 3)
	assert.Equal(t, uint(3), set.Part1[0].ID, "the single unseen question must come first")
	assert.Equal(t, uint(5), set.Part1[1].ID)
	assert.Equal(t, uint(4), set.Part1[2].ID)
}

func TestSelectTestSetNoDuplicatesWithinSet(t *testing.T) {
	questionRepo, _, _, svc := newSelectionFixture(config.Selection{Part1Count: 4, Part2Count: 1, Part3Count: 4})
	seedFullCatalog(questionRepo)

	for i := 0; i < 10; i++ {
		set, err := svc.SelectTestSet(1)
		require.NoError(t, err)

		seen := make(map[uint]bool)
		for _, q := range set.Part1 {
			assert.False(t, seen[q.ID], "duplicate question %d in set", q.ID)
			seen[q.ID] = true
		}
		assert.False(t, seen[set.Part2.ID])
		seen[set.Part2.ID] = true
		for _, q := range set.Part3 {
			assert.False(t, seen[q.ID], "duplicate question %d in set", q.ID)
			seen[q.ID] = true
		}
	}
}

func TestSelectTestSetPart2IsSingleQuestion(t *testing.T) {
	questionRepo, _, _, svc := newSelectionFixture(config.Selection{Part1Count: 3, Part2Count: 1, Part3Count: 2})
	seedFullCatalog(questionRepo)

	set, err := svc.SelectTestSet(1)
	require.NoError(t, err)
	assert.Equal(t, model.Part2, set.Part2.Part)
	assert.Contains(t, []uint{11, 12, 13}, set.Part2.ID)
}

func TestSelectTestSetCatalogEmptyIsFatal(t *testing.T) {
	questionRepo, _, _, svc := newSelectionFixture(config.Selection{Part1Count: 3, Part2Count: 1, Part3Count: 2})
	// Part 2 has no questions at all.
	for id := uint(1); id <= 5; id++ {
		questionRepo.questions = append(questionRepo.questions, question(id, model.Part1, ""))
	}
	for id := uint(21); id <= 25; id++ {
		questionRepo.questions = append(questionRepo.questions, question(id, model.Part3, ""))
	}

	set, err := svc.SelectTestSet(1)
	require.Error(t, err)
	assert.Nil(t, set, "an empty part must not yield an empty-but-successful result")

	var catalogEmpty *CatalogEmptyError
	require.ErrorAs(t, err, &catalogEmpty)
	assert.Equal(t, model.Part2, catalogEmpty.Part)
}

func TestSelectTestSetCatalogExhaustedDegrades(t *testing.T) {
	questionRepo, _, _, svc := newSelectionFixture(config.Selection{Part1Count: 4, Part2Count: 1, Part3Count: 4})
	// Part 3 holds only two questions but four are required.
	for id := uint(1); id <= 5; id++ {
		questionRepo.questions = append(questionRepo.questions, question(id, model.Part1, ""))
	}
	questionRepo.questions = append(questionRepo.questions, question(11, model.Part2, ""))
	questionRepo.questions = append(questionRepo.questions,
		question(21, model.Part3, ""), question(22, model.Part3, ""))

	set, err := svc.SelectTestSet(1)
	require.NoError(t, err, "exhaustion is a degraded success, not a failure")
	assert.Len(t, set.Part3, 2)
	assert.Equal(t, []int{model.Part3}, set.ExhaustedParts)
}

func TestSelectTestSetUserNotFound(t *testing.T) {
	questionRepo, _, _, svc := newSelectionFixture(config.Selection{Part1Count: 3, Part2Count: 1, Part3Count: 2})
	seedFullCatalog(questionRepo)

	set, err := svc.SelectTestSet(42)
	assert.Nil(t, set)
	assert.ErrorIs(t, err, ErrUserNotFound, "a missing user is a hard error, not an empty history")
}

func TestSelectTestSetRejectsZeroUserID(t *testing.T) {
	_, _, _, svc := newSelectionFixture(config.Selection{Part1Count: 3, Part2Count: 1, Part3Count: 2})

	set, err := svc.SelectTestSet(0)
	assert.Nil(t, set)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSelectTestSetTopicDiversityPrefersDistinctTopics(t *testing.T) {
	questionRepo, _, _, svc := newSelectionFixture(config.Selection{
		Part1Count: 3, Part2Count: 1, Part3Count: 2, TopicDiversity: true,
	})
	// Three topics with two questions each; a diverse draw of 3 covers all three.
	questionRepo.questions = append(questionRepo.questions,
		question(1, model.Part1, "Hometown"), question(2, model.Part1, "Hometown"),
		question(3, model.Part1, "Work"), question(4, model.Part1, "Work"),
		question(5, model.Part1, "Hobbies"), question(6, model.Part1, "Hobbies"),
		question(11, model.Part2, "People"),
		question(21, model.Part3, "Society"), question(22, model.Part3, "Society"),
	)

	for i := 0; i < 10; i++ {
		set, err := svc.SelectTestSet(1)
		require.NoError(t, err)
		require.Len(t, set.Part1, 3)

		topics := make(map[string]bool)
		for _, q := range set.Part1 {
			topics[q.Topic] = true
		}
		assert.Len(t, topics, 3, "expected one question per topic while the pool allows it")
	}
}
