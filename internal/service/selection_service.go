package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/lehuy/speaktrack/config"
	"github.com/lehuy/speaktrack/internal/dto"
	"github.com/lehuy/speaktrack/internal/model"
	"github.com/lehuy/speaktrack/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SelectionService assembles one speaking test set (parts 1-3) for a user,
// preferring questions that user has never been shown and recycling the
// least-recently-shown ones once the unseen pool runs dry. Selection is
// read-only: nothing is written to the usage ledger until the caller
// confirms through UsageService.
type SelectionService interface {
	SelectTestSet(userID uint) (*dto.TestSetDTO, error)
}

type selectionService struct {
	questionRepo repository.QuestionRepository
	usageRepo    repository.UsageRecordRepository
	userRepo     repository.UserRepository
	cfg          config.Selection
}

func NewSelectionService(
	questionRepo repository.QuestionRepository,
	usageRepo repository.UsageRecordRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
) SelectionService {
	return &selectionService{
		questionRepo: questionRepo,
		usageRepo:    usageRepo,
		userRepo:     userRepo,
		cfg:          cfg.Selection,
	}
}

func (s *selectionService) SelectTestSet(userID uint) (*dto.TestSetDTO, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: user id must be non-zero", ErrInvalidInput)
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error resolving user %d: %w", userID, err)
	}

	result := &dto.TestSetDTO{}
	parts := []struct {
		part  int
		count int
	}{
		{model.Part1, s.cfg.Part1Count},
		{model.Part2, s.cfg.Part2Count},
		{model.Part3, s.cfg.Part3Count},
	}

	for _, p := range parts {
		questions, exhausted, err := s.selectForPart(userID, p.part, p.count)
		if err != nil {
			return nil, err
		}
		if exhausted {
			log.Warn().Uint("userID", userID).Int("part", p.part).Int("available", len(questions)).Int("required", p.count).
				Msg("SelectTestSet: part catalog smaller than required count, returning all available")
			result.ExhaustedParts = append(result.ExhaustedParts, p.part)
		}

		dtos := toTestSetQuestionDTOs(questions)
		switch p.part {
		case model.Part1:
			result.Part1 = dtos
		case model.Part2:
			// Part 2 is a single cue card in the outward shape.
			if len(dtos) > 0 {
				result.Part2 = dtos[0]
			}
		case model.Part3:
			result.Part3 = dtos
		}
	}

	return result, nil
}

// selectForPart applies the per-part algorithm: partition into unseen/seen,
// draw k at random from unseen, then top up from seen in ascending shown_at
// order (ties by question id). Returns exhausted=true when the whole part
// catalog holds fewer than k questions.
func (s *selectionService) selectForPart(userID uint, part, k int) ([]model.Question, bool, error) {
	catalog, err := s.questionRepo.FindByPart(part)
	if err != nil {
		return nil, false, fmt.Errorf("error loading catalog for part %d: %w", part, err)
	}
	if len(catalog) == 0 {
		return nil, false, &CatalogEmptyError{Part: part}
	}

	records, err := s.usageRepo.FindByUserAndPart(userID, part)
	if err != nil {
		return nil, false, fmt.Errorf("error loading usage history for user %d part %d: %w", userID, part, err)
	}

	seenAt := make(map[uint]time.Time, len(records))
	for _, rec := range records {
		seenAt[rec.QuestionID] = rec.ShownAt
	}

	var unseen, seen []model.Question
	for _, q := range catalog {
		if _, ok := seenAt[q.ID]; ok {
			seen = append(seen, q)
		} else {
			unseen = append(unseen, q)
		}
	}

	if len(catalog) <= k {
		// Pool no larger than the requirement: everything goes out, unseen
		// first, then oldest-seen.
		s.sortByShownAt(seen, seenAt)
		return append(s.shuffled(unseen), seen...), len(catalog) < k, nil
	}

	if len(unseen) >= k {
		return s.draw(unseen, k), false, nil
	}

	// Not enough unseen: take them all and recycle the least-recently-shown.
	picked := s.shuffled(unseen)
	s.sortByShownAt(seen, seenAt)
	picked = append(picked, seen[:k-len(picked)]...)
	return picked, false, nil
}

// draw picks k questions uniformly at random without replacement. With topic
// diversity enabled it round-robins over shuffled topic groups instead, so one
// test avoids stacking questions from a single topic while the pool allows it.
func (s *selectionService) draw(pool []model.Question, k int) []model.Question {
	if !s.cfg.TopicDiversity {
		return s.shuffled(pool)[:k]
	}

	groups := make(map[string][]model.Question)
	var topics []string
	for _, q := range pool {
		if _, ok := groups[q.Topic]; !ok {
			topics = append(topics, q.Topic)
		}
		groups[q.Topic] = append(groups[q.Topic], q)
	}
	rand.Shuffle(len(topics), func(i, j int) { topics[i], topics[j] = topics[j], topics[i] })
	for _, t := range topics {
		groups[t] = s.shuffled(groups[t])
	}

	picked := make([]model.Question, 0, k)
	for len(picked) < k {
		for _, t := range topics {
			if len(groups[t]) == 0 {
				continue
			}
			picked = append(picked, groups[t][0])
			groups[t] = groups[t][1:]
			if len(picked) == k {
				break
			}
		}
	}
	return picked
}

func (s *selectionService) shuffled(questions []model.Question) []model.Question {
	out := make([]model.Question, len(questions))
	copy(out, questions)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// sortByShownAt orders seen questions least-recently-shown first, ties broken
// by question id so recycling is deterministic.
func (s *selectionService) sortByShownAt(seen []model.Question, seenAt map[uint]time.Time) {
	sort.Slice(seen, func(i, j int) bool {
		ti, tj := seenAt[seen[i].ID], seenAt[seen[j].ID]
		if ti.Equal(tj) {
			return seen[i].ID < seen[j].ID
		}
		return ti.Before(tj)
	})
}

func toTestSetQuestionDTOs(questions []model.Question) []dto.TestSetQuestionDTO {
	dtos := make([]dto.TestSetQuestionDTO, 0, len(questions))
	for _, q := range questions {
		dtos = append(dtos, dto.TestSetQuestionDTO{
			ID:     q.ID,
			Part:   q.Part,
			Topic:  q.Topic,
			Title:  q.Title,
			Prompt: q.Prompt,
		})
	}
	return dtos
}
