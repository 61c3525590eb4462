package domain

import "time"

type User struct {
	ID       string
	Username string
}

// Project identifiers are conventionally 8 digits with a non-zero first
// digit; the store does not validate this.
type Project struct {
	ID       string
	Name     string
	Category string
	Target   int64
	Deadline time.Time
	Raised   int64
}

// Remaining reports how much is still needed to reach the target, never
// negative.
func (p *Project) Remaining() int64 {
	if p.Raised >= p.Target {
		return 0
	}
	return p.Target - p.Raised
}

// Progress reports the funded fraction, capped at 1.0. A non-positive
// target yields 0.
func (p *Project) Progress() float64 {
	if p.Target <= 0 {
		return 0
	}
	progress := float64(p.Raised) / float64(p.Target)
	if progress > 1 {
		return 1
	}
	return progress
}

type RewardTier struct {
	ProjectID string
	Name      string
	MinAmount int64
	Quota     int
}

// Pledge is append-only: every attempt, rejected or not, is recorded
// permanently and never mutated.
type Pledge struct {
	ID        string
	UserID    string
	ProjectID string
	Datetime  time.Time
	Amount    int64
	TierName  string // empty means no tier chosen
	Status    string
}
