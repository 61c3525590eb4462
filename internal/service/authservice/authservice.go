package authservice

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Tanapat0215/Exit-Exam68/internal/domain"
	"github.com/Tanapat0215/Exit-Exam68/internal/session"
)

type Repo interface {
	Users() []*domain.User
}

type Service struct {
	repo    Repo
	session *session.Session
}

func New(repo Repo, session *session.Session) *Service {
	return &Service{
		repo:    repo,
		session: session,
	}
}

// Login matches the username case-insensitively against every known
// user. When several users share a username, the one with the smallest
// user id wins, so the outcome does not depend on map iteration order.
// Returns false when nobody matches.
func (s *Service) Login(username string) bool {
	var match *domain.User
	for _, u := range s.repo.Users() {
		if !strings.EqualFold(u.Username, username) {
			continue
		}
		if match == nil || u.ID < match.ID {
			match = u
		}
	}
	if match == nil {
		zap.L().Debug("login failed", zap.String("username", username))
		return false
	}
	s.session.SetUser(match)
	zap.L().Info("user logged in", zap.String("user_id", match.ID))
	return true
}

func (s *Service) Logout() {
	s.session.Clear()
}

// CurrentUser returns the session user, nil when not logged in.
func (s *Service) CurrentUser() *domain.User {
	return s.session.User()
}
