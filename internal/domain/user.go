package domain

import "time"

// User is an account record. Username is stored lowercased; comparisons are
// case-insensitive by construction. PasswordHash is an Argon2id PHC string,
// never the plaintext.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
