package domain

import "time"

const (
	ChallengeTTL = 5 * time.Minute
	SessionTTL   = time.Hour
)

// Challenge is the one-time code issued to a single email address.
type Challenge struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}

func (c Challenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// Session is the server-held state behind the session cookies.
type Session struct {
	ID          string
	Email       string
	DisplayName string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
