package reminder

import (
	"errors"
	"time"
)

var (
	// ErrEmptyText is returned by Add when the text is blank after trimming.
	ErrEmptyText = errors.New("reminder text is empty")
	// ErrNotFound is returned when no reminder has the requested ID.
	ErrNotFound = errors.New("reminder not found")
)

// Reminder is a text note with a due date and a completion flag.
type Reminder struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Date        time.Time `json:"date"`
	IsCompleted bool      `json:"is_completed"`
}
