package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is a map-backed Store. It backs tests and local development
// without a database; reads hand out copies the way a real store would.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*Entry
	badges  map[string][]Badge
	names   map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*Entry),
		badges:  make(map[string][]Badge),
		names:   make(map[string]string),
	}
}

// SetUserName registers the display name joined onto entries on reads.
func (m *MemoryStore) SetUserName(userID, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.names[userID] = name
}

func (m *MemoryStore) GetOrCreate(_ context.Context, userID string) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[userID]
	if !ok {
		e = &Entry{UserID: userID, Level: LevelBronze}
		m.entries[userID] = e
	}
	return m.copyOf(e), nil
}

func (m *MemoryStore) Save(_ context.Context, e *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.entries[e.UserID]
	if !ok {
		return fmt.Errorf("no leaderboard entry for user %s", e.UserID)
	}
	cp := *e
	cp.Rank = stored.Rank // rank is only written by RerankAll
	cp.Badges = nil
	m.entries[e.UserID] = &cp
	return nil
}

func (m *MemoryStore) RerankAll(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*Entry, 0, len(m.entries))
	for _, e := range m.entries {
		all = append(all, e)
	}
	// user_id is the final tie-break so a re-rank with no intervening
	// mutation always reproduces the same assignment.
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].RankScore != all[j].RankScore {
			return all[i].RankScore > all[j].RankScore
		}
		if all[i].Points != all[j].Points {
			return all[i].Points > all[j].Points
		}
		if all[i].Rating.Average != all[j].Rating.Average {
			return all[i].Rating.Average > all[j].Rating.Average
		}
		return all[i].UserID < all[j].UserID
	})
	for i, e := range all {
		e.Rank = i + 1
	}
	return nil
}

func (m *MemoryStore) ListAll(context.Context) ([]*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*Entry
	for _, e := range m.entries {
		all = append(all, m.copyOf(e))
	}
	return all, nil
}

func (m *MemoryStore) AwardBadge(_ context.Context, userID string, b Badge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, have := range m.badges[userID] {
		if have.Name == b.Name {
			return nil
		}
	}
	m.badges[userID] = append(m.badges[userID], b)
	return nil
}

func (m *MemoryStore) Top(_ context.Context, limit int) ([]*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ranked []*Entry
	for _, e := range m.entries {
		if e.Rank > 0 {
			ranked = append(ranked, m.copyOf(e))
		}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Rank < ranked[j].Rank })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (m *MemoryStore) TopByContribution(_ context.Context, column string, limit int) ([]*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*Entry
	for _, e := range m.entries {
		all = append(all, m.copyOf(e))
	}
	sort.Slice(all, func(i, j int) bool {
		return contributionCount(all[i], column) > contributionCount(all[j], column)
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *MemoryStore) Nearby(_ context.Context, userID string, window int) ([]*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	target, ok := m.entries[userID]
	if !ok {
		return nil, nil
	}
	var near []*Entry
	for _, e := range m.entries {
		if e.Rank > 0 && e.Rank >= target.Rank-window && e.Rank <= target.Rank+window {
			near = append(near, m.copyOf(e))
		}
	}
	sort.Slice(near, func(i, j int) bool { return near[i].Rank < near[j].Rank })
	return near, nil
}

func (m *MemoryStore) copyOf(e *Entry) *Entry {
	cp := *e
	cp.UserName = m.names[e.UserID]
	cp.Badges = append([]Badge(nil), m.badges[e.UserID]...)
	return &cp
}

func contributionCount(e *Entry, column string) int {
	switch column {
	case "accepted_mentorships":
		return e.Contributions.AcceptedMentorships
	case "mentorship_sessions":
		return e.Contributions.MentorshipSessions
	case "interview_experiences":
		return e.Contributions.InterviewExperiences
	case "resources_shared":
		return e.Contributions.ResourcesShared
	case "mock_interviews":
		return e.Contributions.MockInterviews
	case "five_star_ratings":
		return e.Contributions.FiveStarRatings
	case "company_insights":
		return e.Contributions.CompanyInsights
	case "questions_answered":
		return e.Contributions.QuestionsAnswered
	case "helpful_ratings":
		return e.Contributions.HelpfulRatings
	case "missed_requests":
		return e.Contributions.MissedRequests
	}
	return 0
}
