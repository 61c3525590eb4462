// Package repo owns the durable representation of every entity as
// delimited text files in a data directory, together with the
// authoritative in-memory collections the services operate on.
package repo

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Tanapat0215/Exit-Exam68/internal/domain"
)

const (
	projectsFile = "projects.csv"
	tiersFile    = "reward_tiers.csv"
	usersFile    = "users.csv"
	pledgesFile  = "pledges.csv"
	statsFile    = "stats.csv"

	rejectedCountKey = "rejectedCount"
)

var (
	projectsHeader = []string{"projectId", "name", "category", "target", "deadline", "raised"}
	tiersHeader    = []string{"projectId", "tierName", "minAmount", "quota"}
	usersHeader    = []string{"userId", "username"}
	pledgesHeader  = []string{"pledgeId", "userId", "projectId", "datetime", "amount", "tierName", "status"}
	statsHeader    = []string{"key", "value"}
)

type Store struct {
	dataDir string

	projects       map[string]*domain.Project
	projectOrder   []string // file order, keeps listings deterministic
	tiersByProject map[string][]*domain.RewardTier
	users          map[string]*domain.User
	pledges        []domain.Pledge
	rejectedCount  int64
}

func New(dataDir string) *Store {
	return &Store{
		dataDir:        dataDir,
		projects:       make(map[string]*domain.Project),
		tiersByProject: make(map[string][]*domain.RewardTier),
		users:          make(map[string]*domain.User),
	}
}

// LoadAll reads every entity file plus stats into memory. Missing files
// count as empty; a malformed row in a present file is an error.
func (s *Store) LoadAll() error {
	if err := s.loadProjects(); err != nil {
		return err
	}
	if err := s.loadRewardTiers(); err != nil {
		return err
	}
	if err := s.loadUsers(); err != nil {
		return err
	}
	if err := s.loadPledges(); err != nil {
		return err
	}
	if err := s.loadStats(); err != nil {
		return err
	}
	zap.L().Debug("storage loaded",
		zap.Int("projects", len(s.projects)),
		zap.Int("users", len(s.users)),
		zap.Int("pledges", len(s.pledges)))
	return nil
}

func (s *Store) loadProjects() error {
	rows, err := readRows(filepath.Join(s.dataDir, projectsFile), len(projectsHeader))
	if err != nil {
		return fmt.Errorf("load %s: %w", projectsFile, err)
	}
	s.projects = make(map[string]*domain.Project, len(rows))
	s.projectOrder = nil
	for i, r := range rows {
		target, err := strconv.ParseInt(r[3], 10, 64)
		if err != nil {
			return fmt.Errorf("load %s row %d: bad target: %w", projectsFile, i+2, err)
		}
		deadline, err := time.Parse(dateLayout, r[4])
		if err != nil {
			return fmt.Errorf("load %s row %d: bad deadline: %w", projectsFile, i+2, err)
		}
		raised, err := strconv.ParseInt(r[5], 10, 64)
		if err != nil {
			return fmt.Errorf("load %s row %d: bad raised: %w", projectsFile, i+2, err)
		}
		p := &domain.Project{
			ID:       r[0],
			Name:     r[1],
			Category: r[2],
			Target:   target,
			Deadline: deadline,
			Raised:   raised,
		}
		if _, ok := s.projects[p.ID]; !ok {
			s.projectOrder = append(s.projectOrder, p.ID)
		}
		s.projects[p.ID] = p
	}
	return nil
}

func (s *Store) loadRewardTiers() error {
	rows, err := readRows(filepath.Join(s.dataDir, tiersFile), len(tiersHeader))
	if err != nil {
		return fmt.Errorf("load %s: %w", tiersFile, err)
	}
	s.tiersByProject = make(map[string][]*domain.RewardTier)
	for i, r := range rows {
		minAmount, err := strconv.ParseInt(r[2], 10, 64)
		if err != nil {
			return fmt.Errorf("load %s row %d: bad minAmount: %w", tiersFile, i+2, err)
		}
		quota, err := strconv.Atoi(r[3])
		if err != nil {
			return fmt.Errorf("load %s row %d: bad quota: %w", tiersFile, i+2, err)
		}
		t := &domain.RewardTier{
			ProjectID: r[0],
			Name:      r[1],
			MinAmount: minAmount,
			Quota:     quota,
		}
		s.tiersByProject[t.ProjectID] = append(s.tiersByProject[t.ProjectID], t)
	}
	return nil
}

func (s *Store) loadUsers() error {
	rows, err := readRows(filepath.Join(s.dataDir, usersFile), len(usersHeader))
	if err != nil {
		return fmt.Errorf("load %s: %w", usersFile, err)
	}
	s.users = make(map[string]*domain.User, len(rows))
	for _, r := range rows {
		s.users[r[0]] = &domain.User{ID: r[0], Username: r[1]}
	}
	return nil
}

func (s *Store) loadPledges() error {
	rows, err := readRows(filepath.Join(s.dataDir, pledgesFile), len(pledgesHeader))
	if err != nil {
		return fmt.Errorf("load %s: %w", pledgesFile, err)
	}
	s.pledges = make([]domain.Pledge, 0, len(rows))
	for i, r := range rows {
		datetime, err := time.Parse(datetimeLayout, r[3])
		if err != nil {
			return fmt.Errorf("load %s row %d: bad datetime: %w", pledgesFile, i+2, err)
		}
		amount, err := strconv.ParseInt(r[4], 10, 64)
		if err != nil {
			return fmt.Errorf("load %s row %d: bad amount: %w", pledgesFile, i+2, err)
		}
		s.pledges = append(s.pledges, domain.Pledge{
			ID:        r[0],
			UserID:    r[1],
			ProjectID: r[2],
			Datetime:  datetime,
			Amount:    amount,
			TierName:  r[5],
			Status:    r[6],
		})
	}
	return nil
}

func (s *Store) loadStats() error {
	rows, err := readRows(filepath.Join(s.dataDir, statsFile), len(statsHeader))
	if err != nil {
		return fmt.Errorf("load %s: %w", statsFile, err)
	}
	s.rejectedCount = 0
	for i, r := range rows {
		if r[0] != rejectedCountKey {
			continue
		}
		n, err := strconv.ParseInt(r[1], 10, 64)
		if err != nil {
			return fmt.Errorf("load %s row %d: bad %s: %w", statsFile, i+2, rejectedCountKey, err)
		}
		s.rejectedCount = n
	}
	return nil
}

// SaveProjects rewrites projects.csv from memory, sorted by project id
// ascending. Idempotent: no mutation means byte-identical output.
func (s *Store) SaveProjects() error {
	ids := make([]string, 0, len(s.projects))
	for id := range s.projects {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		p := s.projects[id]
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Category,
			strconv.FormatInt(p.Target, 10),
			p.Deadline.Format(dateLayout),
			strconv.FormatInt(p.Raised, 10),
		})
	}
	if err := writeRows(filepath.Join(s.dataDir, projectsFile), projectsHeader, rows); err != nil {
		zap.L().Error("can't save projects", zap.Error(err))
		return fmt.Errorf("save %s: %w", projectsFile, err)
	}
	return nil
}

// SaveRewardTiers rewrites reward_tiers.csv, groups sorted by project id
// ascending, tiers inside a group in insertion order.
func (s *Store) SaveRewardTiers() error {
	ids := make([]string, 0, len(s.tiersByProject))
	for id := range s.tiersByProject {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var rows [][]string
	for _, id := range ids {
		for _, t := range s.tiersByProject[id] {
			rows = append(rows, []string{
				t.ProjectID,
				t.Name,
				strconv.FormatInt(t.MinAmount, 10),
				strconv.Itoa(t.Quota),
			})
		}
	}
	if err := writeRows(filepath.Join(s.dataDir, tiersFile), tiersHeader, rows); err != nil {
		zap.L().Error("can't save reward tiers", zap.Error(err))
		return fmt.Errorf("save %s: %w", tiersFile, err)
	}
	return nil
}

func (s *Store) SaveStats() error {
	rows := [][]string{{rejectedCountKey, strconv.FormatInt(s.rejectedCount, 10)}}
	if err := writeRows(filepath.Join(s.dataDir, statsFile), statsHeader, rows); err != nil {
		zap.L().Error("can't save stats", zap.Error(err))
		return fmt.Errorf("save %s: %w", statsFile, err)
	}
	return nil
}

// AppendPledge writes one row to the end of the pledge log and mirrors
// it into memory. Prior rows are never touched.
func (s *Store) AppendPledge(p *domain.Pledge) error {
	row := []string{
		p.ID,
		p.UserID,
		p.ProjectID,
		p.Datetime.Format(datetimeLayout),
		strconv.FormatInt(p.Amount, 10),
		p.TierName,
		p.Status,
	}
	if err := appendRow(filepath.Join(s.dataDir, pledgesFile), pledgesHeader, row); err != nil {
		zap.L().Error("can't append pledge", zap.String("pledge_id", p.ID), zap.Error(err))
		return fmt.Errorf("append %s: %w", pledgesFile, err)
	}
	s.pledges = append(s.pledges, *p)
	return nil
}

// Project returns the project with the given id, nil when unknown.
func (s *Store) Project(id string) *domain.Project {
	return s.projects[id]
}

// Projects returns all projects in file order.
func (s *Store) Projects() []*domain.Project {
	out := make([]*domain.Project, 0, len(s.projectOrder))
	for _, id := range s.projectOrder {
		out = append(out, s.projects[id])
	}
	return out
}

func (s *Store) Users() []*domain.User {
	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

// TiersForProject returns the project's tiers in file order, nil when
// the project has none.
func (s *Store) TiersForProject(projectID string) []*domain.RewardTier {
	return s.tiersByProject[projectID]
}

func (s *Store) Pledges() []domain.Pledge {
	return s.pledges
}

func (s *Store) PledgeCount() int {
	return len(s.pledges)
}

func (s *Store) RejectedCount() int64 {
	return s.rejectedCount
}

func (s *Store) IncrementRejected() {
	s.rejectedCount++
}
