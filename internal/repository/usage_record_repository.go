package repository

import (
	"github.com/lehuy/speaktrack/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsageRecordRepository interface {
	FindByUserAndPart(userID uint, part int) ([]model.UsageRecord, error)
	// InsertIgnoreDuplicates appends the given records, silently skipping any
	// (user, question) pair that already has a row. Returns the number of rows
	// actually inserted, which may be less than len(records).
	InsertIgnoreDuplicates(records []model.UsageRecord) (int64, error)
}

type usageRecordRepository struct {
	db *gorm.DB
}

func NewUsageRecordRepository(db *gorm.DB) UsageRecordRepository {
	return &usageRecordRepository{db: db}
}

func (r *usageRecordRepository) FindByUserAndPart(userID uint, part int) ([]model.UsageRecord, error) {
	var records []model.UsageRecord
	err := r.db.
		Where("user_id = ? AND part = ?", userID, part).
		Order("shown_at ASC, question_id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *usageRecordRepository) InsertIgnoreDuplicates(records []model.UsageRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	// ON CONFLICT DO NOTHING on the (user_id, question_id) unique index makes a
	// duplicate-insert race a no-op instead of an error; RowsAffected then
	// counts only the rows that were new.
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
		DoNothing: true,
	}).Create(&records)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
