package projectservice

import (
	"sort"
	"strings"

	"github.com/Tanapat0215/Exit-Exam68/internal/domain"
)

type Repo interface {
	Projects() []*domain.Project
	Project(id string) *domain.Project
	TiersForProject(projectID string) []*domain.RewardTier
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

const (
	// SortEndingSoon orders ascending by deadline.
	SortEndingSoon string = "Ending Soon"
	// SortRaisedHighLow orders descending by raised amount.
	SortRaisedHighLow string = "Raised (High→Low)"
	// SortNewestID orders descending by project id. Any other sort key
	// falls back to ascending project id.
	SortNewestID string = "Newest Id"

	// CategoryAll matches every category, as does a blank one.
	CategoryAll string = "All"
)

// Projects returns every project in storage order.
func (s *Service) Projects() []*domain.Project {
	return s.repo.Projects()
}

// Project returns one project by id, nil when unknown.
func (s *Service) Project(id string) *domain.Project {
	return s.repo.Project(id)
}

// Tiers returns the reward tiers of a project, nil when it has none.
func (s *Service) Tiers(projectID string) []*domain.RewardTier {
	return s.repo.TiersForProject(projectID)
}

// Search filters projects by keyword (case-insensitive substring of the
// name, or literal substring of the id) and category, then orders the
// result per sortKey. Sorts are stable: ties keep storage order.
func (s *Service) Search(keyword, category, sortKey string) []*domain.Project {
	kw := strings.ToLower(strings.TrimSpace(keyword))

	list := make([]*domain.Project, 0)
	for _, p := range s.repo.Projects() {
		if kw != "" && !strings.Contains(strings.ToLower(p.Name), kw) && !strings.Contains(p.ID, kw) {
			continue
		}
		if strings.TrimSpace(category) != "" && !strings.EqualFold(category, CategoryAll) && !strings.EqualFold(p.Category, category) {
			continue
		}
		list = append(list, p)
	}

	switch sortKey {
	case SortEndingSoon:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Deadline.Before(list[j].Deadline)
		})
	case SortRaisedHighLow:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Raised > list[j].Raised
		})
	case SortNewestID:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].ID > list[j].ID
		})
	default:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].ID < list[j].ID
		})
	}

	return list
}

// Categories returns the distinct project categories, unique and sorted
// case-insensitively, keeping the first-seen spelling.
func (s *Service) Categories() []string {
	seen := make(map[string]string)
	for _, p := range s.repo.Projects() {
		key := strings.ToLower(p.Category)
		if _, ok := seen[key]; !ok {
			seen[key] = p.Category
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, seen[key])
	}
	return out
}
