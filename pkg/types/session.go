package types

import "time"

// Session is the server-side record behind the session cookie. The
// cookie carries only the token.
type Session struct {
	Token     string    `db:"token" json:"-"`
	UserID    int       `db:"user_id" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"-"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
