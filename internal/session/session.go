// Package session holds the current logged-in user for one interactive
// session. It is an explicit object shared by the services rather than
// process-wide state, so multiple sessions can coexist in one host.
package session

import "github.com/Tanapat0215/Exit-Exam68/internal/domain"

type Session struct {
	user *domain.User
}

func New() *Session {
	return &Session{}
}

func (s *Session) SetUser(u *domain.User) {
	s.user = u
}

func (s *Session) Clear() {
	s.user = nil
}

// User returns the logged-in user, nil when nobody is logged in.
func (s *Session) User() *domain.User {
	return s.user
}
