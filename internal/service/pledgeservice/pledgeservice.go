package pledgeservice

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Tanapat0215/Exit-Exam68/internal/domain"
	"github.com/Tanapat0215/Exit-Exam68/internal/session"
)

type Repo interface {
	Project(id string) *domain.Project
	TiersForProject(projectID string) []*domain.RewardTier
	Pledges() []domain.Pledge
	PledgeCount() int
	AppendPledge(p *domain.Pledge) error
	RejectedCount() int64
	IncrementRejected()
	SaveProjects() error
	SaveRewardTiers() error
	SaveStats() error
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

const (
	// StatusSuccess marks a pledge that passed every check.
	StatusSuccess string = "SUCCESS"
	// StatusRejected marks a recorded pledge that failed a business rule.
	StatusRejected string = "REJECTED"
)

// Outcome messages. The pre-check messages (login, project) yield no
// pledge row and no counter change; the Rejected ones yield both.
const (
	MsgLoginRequired   = "Please login first."
	MsgProjectNotFound = "Project not found."
	MsgDeadlinePassed  = "Rejected: Project deadline has passed."
	MsgTierNotFound    = "Rejected: Reward tier not found."
	MsgBelowMinimum    = "Rejected: Amount below tier minimum."
	MsgQuotaExhausted  = "Rejected: Tier quota exhausted."
	MsgSuccess         = "Success: Thank you for your support!"
)

// Pledge runs the business checks in order, first failure wins, and on
// success applies the raised-amount and quota mutations and persists
// them. The returned string is the user-visible outcome; error is
// reserved for I/O failure.
func (s *Service) Pledge(projectID string, amount int64, tierName string) (string, error) {
	user := s.session.User()
	if user == nil {
		return MsgLoginRequired, nil
	}

	project := s.repo.Project(projectID)
	if project == nil {
		return MsgProjectNotFound, nil
	}

	if !project.Deadline.After(today()) {
		return s.reject(user.ID, projectID, amount, tierName, MsgDeadlinePassed)
	}

	var chosen *domain.RewardTier
	if strings.TrimSpace(tierName) != "" {
		for _, t := range s.repo.TiersForProject(projectID) {
			if strings.EqualFold(t.Name, tierName) {
				chosen = t
				break
			}
		}
		if chosen == nil {
			return s.reject(user.ID, projectID, amount, tierName, MsgTierNotFound)
		}
		if amount < chosen.MinAmount {
			return s.reject(user.ID, projectID, amount, tierName, MsgBelowMinimum)
		}
		if chosen.Quota <= 0 {
			return s.reject(user.ID, projectID, amount, tierName, MsgQuotaExhausted)
		}
	}

	project.Raised += amount
	if chosen != nil {
		chosen.Quota--
	}

	if err := s.repo.SaveProjects(); err != nil {
		s.undo(project, chosen, amount, false, false)
		return "", err
	}
	if err := s.repo.SaveRewardTiers(); err != nil {
		s.undo(project, chosen, amount, true, false)
		return "", err
	}
	if err := s.appendPledge(StatusSuccess, user.ID, projectID, amount, tierName); err != nil {
		s.undo(project, chosen, amount, true, true)
		return "", err
	}

	zap.L().Info("pledge accepted",
		zap.String("user_id", user.ID),
		zap.String("project_id", projectID),
		zap.Int64("amount", amount))
	return MsgSuccess, nil
}

// reject records a REJECTED pledge row and bumps the persisted counter.
func (s *Service) reject(userID, projectID string, amount int64, tierName, msg string) (string, error) {
	s.repo.IncrementRejected()
	if err := s.repo.SaveStats(); err != nil {
		return "", err
	}
	if err := s.appendPledge(StatusRejected, userID, projectID, amount, tierName); err != nil {
		return "", err
	}
	zap.L().Info("pledge rejected",
		zap.String("user_id", userID),
		zap.String("project_id", projectID),
		zap.String("reason", msg))
	return msg, nil
}

// appendPledge assigns the next sequential id from the log length.
// Rejected attempts consume ids too.
func (s *Service) appendPledge(status, userID, projectID string, amount int64, tierName string) error {
	pledge := &domain.Pledge{
		ID:        fmt.Sprintf("pl%d", s.repo.PledgeCount()+1),
		UserID:    userID,
		ProjectID: projectID,
		Datetime:  time.Now(),
		Amount:    amount,
		TierName:  tierName,
		Status:    status,
	}
	return s.repo.AppendPledge(pledge)
}

// undo reverts the in-memory apply and best-effort rewrites whichever
// files already went out, so a failed pledge does not leave the state
// half applied.
func (s *Service) undo(project *domain.Project, chosen *domain.RewardTier, amount int64, projectsSaved, tiersSaved bool) {
	project.Raised -= amount
	if chosen != nil {
		chosen.Quota++
	}
	if projectsSaved {
		if err := s.repo.SaveProjects(); err != nil {
			zap.L().Warn("can't revert projects file", zap.Error(err))
		}
	}
	if tiersSaved {
		if err := s.repo.SaveRewardTiers(); err != nil {
			zap.L().Warn("can't revert reward tiers file", zap.Error(err))
		}
	}
}

// SuccessCount recounts SUCCESS rows in the pledge log on every call.
func (s *Service) SuccessCount() int64 {
	var n int64
	for _, p := range s.repo.Pledges() {
		if p.Status == StatusSuccess {
			n++
		}
	}
	return n
}

// RejectedCount returns the persisted counter. Pre-check rejections
// never touch it, so it tracks rule-check rejections only.
func (s *Service) RejectedCount() int64 {
	return s.repo.RejectedCount()
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
