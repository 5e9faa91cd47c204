package domain

import "time"

// Authority is the coarse role flag carried by every user.
type Authority string

const (
	AuthorityAdmin Authority = "admin"
	AuthorityGuest Authority = "guest"
)

// User is a registered community member.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Nickname     string
	Phone        string
	Email        string
	Birth        string // YYYY-MM-DD
	Authority    Authority
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether u may author notices.
func (u User) IsAdmin() bool { return u.Authority == AuthorityAdmin }

// ProfileUpdate is the set of fields a user may change on their own profile.
type ProfileUpdate struct {
	Nickname     string
	Phone        string
	Email        string
	PasswordHash string
}
