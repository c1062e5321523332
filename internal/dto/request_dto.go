package dto

// ConfirmUsageDTO reports which questions were actually presented to the
// user. It need not match the last generated test set; a user who abandons a
// test after Part 1 confirms only those ids. Duplicates are harmless.
type ConfirmUsageDTO struct {
	QuestionIDs []uint `json:"question_ids" binding:"required,min=1,dive,min=1"`
}
