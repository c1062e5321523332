package model

import (
	"time"

	"gorm.io/gorm"
)

// User is the practice account a test set is generated for. The selection
// engine only ever reads it to verify the account exists; usage history is
// looked up by key, never loaded through this struct.
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Email     string         `json:"email" gorm:"not null;uniqueIndex"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
