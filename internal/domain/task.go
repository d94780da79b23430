package domain

import "time"

// Task is a per-user todo item. Ownership is enforced at the service layer:
// a task is only ever visible to the user it belongs to.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Done        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
