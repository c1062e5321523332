package model

import "time"

// UsageRecord is one append-only "this user has been shown this question" fact.
// The (user_id, question_id) pair is unique; concurrent inserts of the same pair
// resolve to a single row via ON CONFLICT DO NOTHING. Part is denormalized from
// the question so the per-part seen/unseen partition is a single indexed query.
// Rows are never updated or deleted.
type UsageRecord struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_question;index:idx_user_part,priority:1"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_user_question"`
	Part       int       `json:"part" gorm:"not null;index:idx_user_part,priority:2"`
	ShownAt    time.Time `json:"shown_at" gorm:"not null;autoCreateTime"`
}
