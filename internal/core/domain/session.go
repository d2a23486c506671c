package domain

// SessionState is the tagged state of the visitor session. Consumers
// switch on the state and read User only when it is StateLoggedIn, so a
// real authentication backend can be substituted without touching them.
type SessionState string

const (
	StateLoggedOut SessionState = "logged_out"
	StateLoggingIn SessionState = "logging_in"
	StateLoggedIn  SessionState = "logged_in"
)

type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

type Friend struct {
	ID     string
	Name   string
	Avatar string
}

type User struct {
	ID        string
	Email     string
	Name      string
	Avatar    string
	IsPrivate bool
	Badges    []Badge
	Friends   []Friend
}

type Session struct {
	State SessionState
	User  *User
}
