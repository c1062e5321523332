package dto

import "time"

// QuestionResponseDTO is the admin-facing view of a catalog question.
type QuestionResponseDTO struct {
	ID        uint      `json:"id"`
	Part      int       `json:"part"`
	Topic     string    `json:"topic,omitempty"`
	Title     string    `json:"title"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserResponseDTO struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ConfirmUsageResponseDTO reports how many ledger rows the confirmation
// actually created. 0 on a retry is expected, not an error.
type ConfirmUsageResponseDTO struct {
	RecordedCount int `json:"recorded_count"`
}

type ErrorResponse struct {
	// Code distinguishes client-actionable conditions, e.g. "account_not_found".
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
