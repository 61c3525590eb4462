package pledgeservice

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/Tanapat0215/Exit-Exam68/internal/domain"
	"github.com/Tanapat0215/Exit-Exam68/internal/session"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *session.Session) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	sess := session.New()
	service := New(repo, sess)
	defer ctrl.Finish()
	return service, repo, sess
}

func futureDeadline() time.Time {
	return time.Now().AddDate(0, 0, 30)
}

func pastDeadline() time.Time {
	return time.Now().AddDate(0, 0, -1)
}

func loggedIn(sess *session.Session) *domain.User {
	u := &domain.User{ID: "u1", Username: "alice"}
	sess.SetUser(u)
	return u
}

func TestPledgeRequiresLogin(t *testing.T) {
	service, _, _ := NewMock(t)

	// no repo expectations: a pre-check rejection must not touch
	// storage, the counter, or the pledge log
	msg, err := service.Pledge("10000001", 500, "")

	require.NoError(t, err)
	assert.Equal(t, MsgLoginRequired, msg)
}

func TestPledgeUnknownProject(t *testing.T) {
	service, repo, sess := NewMock(t)
	loggedIn(sess)
	repo.EXPECT().Project("99999999").Return(nil)

	msg, err := service.Pledge("99999999", 500, "")

	require.NoError(t, err)
	assert.Equal(t, MsgProjectNotFound, msg)
}

func expectRejection(repo *MockRepo, pledgeCount int, recorded **domain.Pledge) {
	repo.EXPECT().IncrementRejected()
	repo.EXPECT().SaveStats().Return(nil)
	repo.EXPECT().PledgeCount().Return(pledgeCount)
	repo.EXPECT().AppendPledge(gomock.Any()).DoAndReturn(func(p *domain.Pledge) error {
		*recorded = p
		return nil
	})
}

func TestPledgeDeadlinePassed(t *testing.T) {
	service, repo, sess := NewMock(t)
	loggedIn(sess)
	project := &domain.Project{ID: "20000002", Target: 10000, Deadline: pastDeadline(), Raised: 700}
	repo.EXPECT().Project("20000002").Return(project)

	var recorded *domain.Pledge
	expectRejection(repo, 5, &recorded)

	msg, err := service.Pledge("20000002", 1000, "")

	require.NoError(t, err)
	assert.Equal(t, MsgDeadlinePassed, msg)
	assert.Equal(t, int64(700), project.Raised)

	require.NotNil(t, recorded)
	assert.Equal(t, "pl6", recorded.ID)
	assert.Equal(t, "u1", recorded.UserID)
	assert.Equal(t, "20000002", recorded.ProjectID)
	assert.Equal(t, int64(1000), recorded.Amount)
	assert.Equal(t, StatusRejected, recorded.Status)
}

func TestPledgeDeadlineToday(t *testing.T) {
	service, repo, sess := NewMock(t)
	loggedIn(sess)
	// deadline exactly today is not strictly in the future
	y, m, d := time.Now().Date()
	project := &domain.Project{
		ID:       "20000002",
		Target:   10000,
		Deadline: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
	repo.EXPECT().Project("20000002").Return(project)

	var recorded *domain.Pledge
	expectRejection(repo, 0, &recorded)

	msg, err := service.Pledge("20000002", 1000, "")

	require.NoError(t, err)
	assert.Equal(t, MsgDeadlinePassed, msg)
}

func TestPledgeTierNotFound(t *testing.T) {
	service, repo, sess := NewMock(t)
	loggedIn(sess)
	project := &domain.Project{ID: "10000001", Target: 10000, Deadline: futureDeadline()}
	repo.EXPECT().Project("10000001").Return(project)
	repo.EXPECT().TiersForProject("10000001").Return([]*domain.RewardTier{
		{ProjectID: "10000001", Name: "Bronze", MinAmount: 500, Quota: 3},
	})

	var recorded *domain.Pledge
	expectRejection(repo, 0, &recorded)

	msg, err := service.Pledge("10000001", 500, "Platinum")

	require.NoError(t, err)
	assert.Equal(t, MsgTierNotFound, msg)
	assert.Equal(t, int64(0), project.Raised)
	require.NotNil(t, recorded)
	assert.Equal(t, "Platinum", recorded.TierName)
}

func TestPledgeBelowMinimum(t *testing.T) {
	service, repo, sess := NewMock(t)
	loggedIn(sess)
	project := &domain.Project{ID: "10000001", Target: 10000, Deadline: futureDeadline()}
	tier := &domain.RewardTier{ProjectID: "10000001", Name: "Bronze", MinAmount: 500, Quota: 3}
	repo.EXPECT().Project("10000001").Return(project)
	repo.EXPECT().TiersForProject("10000001").Return([]*domain.RewardTier{tier})

	var recorded *domain.Pledge
	expectRejection(repo, 0, &recorded)

	msg, err := service.Pledge("10000001", 499, "bronze")

	require.NoError(t, err)
	assert.Equal(t, MsgBelowMinimum, msg)
	assert.Equal(t, int64(0), project.Raised)
	assert.Equal(t, 3, tier.Quota)
}

func TestPledgeQuotaExhausted(t *testing.T) {
	service, repo, sess := NewMock(t)
	loggedIn(sess)
	project := &domain.Project{ID: "10000001", Target: 10000, Deadline: futureDeadline()}
	tier := &domain.RewardTier{ProjectID: "10000001", Name: "Bronze", MinAmount: 500, Quota: 0}
	repo.EXPECT().Project("10000001").Return(project)
	repo.EXPECT().TiersForProject("10000001").Return([]*domain.RewardTier{tier})

	var recorded *domain.Pledge
	expectRejection(repo, 0, &recorded)

	msg, err := service.Pledge("10000001", 500, "Bronze")

	require.NoError(t, err)
	assert.Equal(t, MsgQuotaExhausted, msg)
	assert.Equal(t, int64(0), project.Raised)
	assert.Equal(t, 0, tier.Quota)
}

func TestPledgeSuccessWithTier(t *testing.T) {
	service, repo, sess := NewMock(t)
	loggedIn(sess)
	project := &domain.Project{ID: "10000001", Target: 10000, Deadline: futureDeadline()}
	tier := &domain.RewardTier{ProjectID: "10000001", Name: "Bronze", MinAmount: 500, Quota: 1}
	repo.EXPECT().Project("10000001").Return(project)
	repo.EXPECT().TiersForProject("10000001").Return([]*domain.RewardTier{tier})
	repo.EXPECT().SaveProjects().Return(nil)
	repo.EXPECT().SaveRewardTiers().Return(nil)
	repo.EXPECT().PledgeCount().Return(0)

	var recorded *domain.Pledge
	repo.EXPECT().AppendPledge(gomock.Any()).DoAndReturn(func(p *domain.Pledge) error {
		recorded = p
		return nil
	})

	msg, err := service.Pledge("10000001", 500, "Bronze")

	require.NoError(t, err)
	assert.Equal(t, MsgSuccess, msg)
	assert.Equal(t, int64(500), project.Raised)
	assert.Equal(t, 0, tier.Quota)

	require.NotNil(t, recorded)
	assert.Equal(t, "pl1", recorded.ID)
	assert.Equal(t, StatusSuccess, recorded.Status)
	assert.Equal(t, "Bronze", recorded.TierName)
}

func TestPledgeSuccessWithoutTier(t *testing.T) {
	service, repo, sess := NewMock(t)
	loggedIn(sess)
	project := &domain.Project{ID: "10000001", Target: 10000, Deadline: futureDeadline(), Raised: 100}
	repo.EXPECT().Project("10000001").Return(project)
	repo.EXPECT().SaveProjects().Return(nil)
	repo.EXPECT().SaveRewardTiers().Return(nil)
	repo.EXPECT().PledgeCount().Return(2)

	var recorded *domain.Pledge
	repo.EXPECT().AppendPledge(gomock.Any()).DoAndReturn(func(p *domain.Pledge) error {
		recorded = p
		return nil
	})

	msg, err := service.Pledge("10000001", 250, "")

	require.NoError(t, err)
	assert.Equal(t, MsgSuccess, msg)
	assert.Equal(t, int64(350), project.Raised)
	require.NotNil(t, recorded)
	assert.Equal(t, "pl3", recorded.ID)
	assert.Equal(t, "", recorded.TierName)
}

func TestPledgeQuotaOfOneLifecycle(t *testing.T) {
	service, repo, sess := NewMock(t)
	loggedIn(sess)
	project := &domain.Project{ID: "10000001", Target: 10000, Deadline: futureDeadline()}
	tier := &domain.RewardTier{ProjectID: "10000001", Name: "Bronze", MinAmount: 500, Quota: 1}
	repo.EXPECT().Project("10000001").Return(project).Times(2)
	repo.EXPECT().TiersForProject("10000001").Return([]*domain.RewardTier{tier}).Times(2)

	// first attempt succeeds
	repo.EXPECT().SaveProjects().Return(nil)
	repo.EXPECT().SaveRewardTiers().Return(nil)
	repo.EXPECT().PledgeCount().Return(0)
	repo.EXPECT().AppendPledge(gomock.Any()).Return(nil)

	// identical second attempt hits the exhausted quota
	repo.EXPECT().IncrementRejected()
	repo.EXPECT().SaveStats().Return(nil)
	repo.EXPECT().PledgeCount().Return(1)
	repo.EXPECT().AppendPledge(gomock.Any()).Return(nil)

	msg, err := service.Pledge("10000001", 500, "Bronze")
	require.NoError(t, err)
	assert.Equal(t, MsgSuccess, msg)
	assert.Equal(t, int64(500), project.Raised)
	assert.Equal(t, 0, tier.Quota)

	msg, err = service.Pledge("10000001", 500, "Bronze")
	require.NoError(t, err)
	assert.Equal(t, MsgQuotaExhausted, msg)
	assert.Equal(t, int64(500), project.Raised)
	assert.Equal(t, 0, tier.Quota)
}

func TestPledgeSaveProjectsFailureRollsBack(t *testing.T) {
	service, repo, sess := NewMock(t)
	loggedIn(sess)
	project := &domain.Project{ID: "10000001", Target: 10000, Deadline: futureDeadline(), Raised: 100}
	tier := &domain.RewardTier{ProjectID: "10000001", Name: "Bronze", MinAmount: 500, Quota: 2}
	repo.EXPECT().Project("10000001").Return(project)
	repo.EXPECT().TiersForProject("10000001").Return([]*domain.RewardTier{tier})
	repo.EXPECT().SaveProjects().Return(errors.New("disk full"))

	msg, err := service.Pledge("10000001", 500, "Bronze")

	require.Error(t, err)
	assert.Empty(t, msg)
	assert.Equal(t, int64(100), project.Raised)
	assert.Equal(t, 2, tier.Quota)
}

func TestPledgeSaveTiersFailureRevertsProjectsFile(t *testing.T) {
	service, repo, sess := NewMock(t)
	loggedIn(sess)
	project := &domain.Project{ID: "10000001", Target: 10000, Deadline: futureDeadline(), Raised: 100}
	tier := &domain.RewardTier{ProjectID: "10000001", Name: "Bronze", MinAmount: 500, Quota: 2}
	repo.EXPECT().Project("10000001").Return(project)
	repo.EXPECT().TiersForProject("10000001").Return([]*domain.RewardTier{tier})
	repo.EXPECT().SaveProjects().Return(nil)
	repo.EXPECT().SaveRewardTiers().Return(errors.New("disk full"))
	// the projects file is rewritten with the reverted state
	repo.EXPECT().SaveProjects().Return(nil)

	msg, err := service.Pledge("10000001", 500, "Bronze")

	require.Error(t, err)
	assert.Empty(t, msg)
	assert.Equal(t, int64(100), project.Raised)
	assert.Equal(t, 2, tier.Quota)
}

func TestSuccessCount(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().Pledges().Return([]domain.Pledge{
		{ID: "pl1", Status: StatusSuccess},
		{ID: "pl2", Status: StatusRejected},
		{ID: "pl3", Status: StatusSuccess},
		{ID: "pl4", Status: StatusRejected},
	})

	assert.Equal(t, int64(2), service.SuccessCount())
}

func TestRejectedCount(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().RejectedCount().Return(int64(7))

	assert.Equal(t, int64(7), service.RejectedCount())
}
