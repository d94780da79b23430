package domain

import "time"

// Token is an opaque bearer credential minted on login. Value is a
// fixed-length hex string with no decodable structure; a fresh one is issued
// per successful login and none ever expires. That accumulation is a stated
// limitation of the scheme, not an oversight.
type Token struct {
	ID        int64
	UserID    int64
	Value     string
	CreatedAt time.Time
}
