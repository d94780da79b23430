package domain

import "time"

// Cost is a tracked expense. Amount is in cents to keep arithmetic exact.
type Cost struct {
	ID          int64
	Description string
	Amount      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
