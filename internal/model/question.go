package model

import (
	"time"

	"gorm.io/gorm"
)

// Part numbers of an IELTS speaking test.
const (
	Part1 = 1 // short interview questions
	Part2 = 2 // long-form cue card
	Part3 = 3 // discussion follow-ups
)

type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Part      int            `json:"part" gorm:"not null;index"` // 1, 2 or 3
	Topic     string         `json:"topic" gorm:"index"`         // grouping metadata, e.g. "Hometown", "Work & Study"
	Title     string         `json:"title" gorm:"not null"`
	Prompt    string         `json:"prompt" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
