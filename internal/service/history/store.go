package history

import (
	"sync"

	"github.com/sandevgo/scoutbot/internal/core"
)

// platformHistory keeps per-channel message slices plus the order channels
// were first seen, so reads iterate channels deterministically.
type platformHistory struct {
	order    []string
	channels map[string][]core.Message
}

func newPlatformHistory() *platformHistory {
	return &platformHistory{
		channels: make(map[string][]core.Message),
	}
}

// userHistory owns all retained messages for one user. Its mutex covers
// every platform and channel of that user; append-then-trim and clear are
// single critical sections under it.
type userHistory struct {
	mu        sync.RWMutex
	platforms map[core.Platform]*platformHistory
}

func newUserHistory() *userHistory {
	return &userHistory{
		platforms: make(map[core.Platform]*platformHistory),
	}
}

// Store is the process-wide message history. Locking is per user, never
// global across users: the outer mutex only guards the user table itself.
type Store struct {
	mu    sync.RWMutex
	users map[string]*userHistory
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]*userHistory),
	}
}

func (s *Store) user(userID string) (*userHistory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	return u, ok
}

func (s *Store) userOrCreate(userID string) *userHistory {
	s.mu.RLock()
	u, ok := s.users[userID]
	s.mu.RUnlock()
	if ok {
		return u
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok = s.users[userID]; ok {
		return u
	}
	u = newUserHistory()
	s.users[userID] = u
	return u
}

// Append inserts msg at the tail of its channel, creating the channel entry
// if absent. When the channel exceeds core.MaxHistoryPerChannel the single
// oldest message is evicted before returning. Never fails.
func (s *Store) Append(userID string, msg core.Message) {
	u := s.userOrCreate(userID)

	u.mu.Lock()
	defer u.mu.Unlock()

	p, ok := u.platforms[msg.Platform]
	if !ok {
		p = newPlatformHistory()
		u.platforms[msg.Platform] = p
	}

	msgs, ok := p.channels[msg.ChannelID]
	if !ok {
		p.order = append(p.order, msg.ChannelID)
	}

	msgs = append(msgs, msg)
	if len(msgs) > core.MaxHistoryPerChannel {
		msgs = msgs[1:]
	}
	p.channels[msg.ChannelID] = msgs
}

// Channels returns the tracked channel ids for one platform in the order
// they were first seen.
func (s *Store) Channels(userID string, platform core.Platform) []string {
	u, ok := s.user(userID)
	if !ok {
		return nil
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	p, ok := u.platforms[platform]
	if !ok {
		return nil
	}
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Messages returns a snapshot of one channel in arrival order. The returned
// slice is a copy; callers may iterate it while appends continue.
func (s *Store) Messages(userID string, platform core.Platform, channelID string) []core.Message {
	u, ok := s.user(userID)
	if !ok {
		return nil
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	p, ok := u.platforms[platform]
	if !ok {
		return nil
	}
	msgs, ok := p.channels[channelID]
	if !ok {
		return nil
	}
	out := make([]core.Message, len(msgs))
	copy(out, msgs)
	return out
}

// Clear wipes one platform's history for a user. An append racing with a
// clear lands on exactly one side of it.
func (s *Store) Clear(userID string, platform core.Platform) {
	u, ok := s.user(userID)
	if !ok {
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.platforms, platform)
}

// ClearAll wipes every platform's history for a user.
func (s *Store) ClearAll(userID string) {
	u, ok := s.user(userID)
	if !ok {
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.platforms = make(map[core.Platform]*platformHistory)
}

// MessageCount sums stored message counts across all channels of one
// platform.
func (s *Store) MessageCount(userID string, platform core.Platform) int {
	u, ok := s.user(userID)
	if !ok {
		return 0
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	p, ok := u.platforms[platform]
	if !ok {
		return 0
	}
	total := 0
	for _, msgs := range p.channels {
		total += len(msgs)
	}
	return total
}
