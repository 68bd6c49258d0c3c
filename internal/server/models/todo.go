package models

import "time"

// Todo is a single task row owned by one user. All queries touching todos
// are scoped by UserID.
type Todo struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	IsCompleted bool
	CreatedAt   time.Time
}
