package service

import (
	"github.com/Tanapat0215/Exit-Exam68/internal/repo"
	"github.com/Tanapat0215/Exit-Exam68/internal/service/authservice"
	"github.com/Tanapat0215/Exit-Exam68/internal/service/pledgeservice"
	"github.com/Tanapat0215/Exit-Exam68/internal/service/projectservice"
	"github.com/Tanapat0215/Exit-Exam68/internal/session"
)

type Services struct {
	AuthService    *authservice.Service
	ProjectService *projectservice.Service
	PledgeService  *pledgeservice.Service
}

// New builds the services over one store and one shared session, so the
// pledge flow sees the user the auth flow logged in.
func New(store *repo.Store) *Services {
	sess := session.New()

	authService := authservice.New(store, sess)
	projectService := projectservice.New(store)
	pledgeService := pledgeservice.New(store, sess)

	return &Services{
		AuthService:    authService,
		ProjectService: projectService,
		PledgeService:  pledgeService,
	}
}
