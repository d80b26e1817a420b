package conns

import (
	"context"
	"fmt"
	"sync"

	"github.com/sandevgo/scoutbot/internal/core"
	"github.com/sandevgo/scoutbot/pkg/log"
	"github.com/sandevgo/scoutbot/pkg/retry"
)

// ConnectorFactory builds a live connector for one user's credentials.
type ConnectorFactory func(creds core.Credentials, store core.HistoryRepository) (core.Connector, error)

type running struct {
	conn   core.Connector
	cancel context.CancelFunc
}

// Manager owns every live platform session. It is a srv.Service: Start
// reconnects everything the repository remembers, Shutdown stops all
// sessions. Disconnecting a platform wipes its in-memory history.
type Manager struct {
	store   core.HistoryRepository
	repo    core.ConnectionsRepository
	factory ConnectorFactory

	mu      sync.Mutex
	baseCtx context.Context
	active  map[string]map[core.Platform]*running
}

func NewManager(store core.HistoryRepository, repo core.ConnectionsRepository, factory ConnectorFactory) *Manager {
	return &Manager{
		store:   store,
		repo:    repo,
		factory: factory,
		active:  make(map[string]map[core.Platform]*running),
	}
}

// Start restores persisted connections and blocks until ctx is done.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	m.baseCtx = ctx
	m.mu.Unlock()

	stored, err := m.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stored connections: %w", err)
	}
	for _, creds := range stored {
		if err := m.Connect(ctx, creds.UserID, creds.Platform, creds.Token); err != nil {
			log.FromCtx(ctx).Error().Err(err).
				Str("user", creds.UserID).
				Str("platform", string(creds.Platform)).
				Msg("failed to restore connection")
		}
	}

	<-ctx.Done()
	return nil
}

func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, platforms := range m.active {
		for _, r := range platforms {
			r.cancel()
			if err := r.conn.Stop(); err != nil {
				log.FromCtx(ctx).Error().Err(err).Msg("connector failed to stop")
			}
		}
	}
	m.active = make(map[string]map[core.Platform]*running)
	return nil
}

// Connect opens (or replaces) the session for one user/platform pair and
// persists the credentials.
func (m *Manager) Connect(ctx context.Context, userID string, platform core.Platform, token string) error {
	creds := core.Credentials{UserID: userID, Platform: platform, Token: token}

	conn, err := m.factory(creds, m.store)
	if err != nil {
		return fmt.Errorf("failed to create %s connector: %w", platform, err)
	}

	if err := m.repo.Save(ctx, creds); err != nil {
		return err
	}

	m.mu.Lock()
	base := m.baseCtx
	if base == nil {
		base = context.Background()
	}
	if old := m.lookup(userID, platform); old != nil {
		old.cancel()
		_ = old.conn.Stop()
	}
	runCtx, cancel := context.WithCancel(base)
	if m.active[userID] == nil {
		m.active[userID] = make(map[core.Platform]*running)
	}
	m.active[userID][platform] = &running{conn: conn, cancel: cancel}
	m.mu.Unlock()

	go m.run(runCtx, userID, platform, conn)
	return nil
}

// run keeps one session alive, retrying with backoff when it drops.
func (m *Manager) run(ctx context.Context, userID string, platform core.Platform, conn core.Connector) {
	logger := log.FromCtx(ctx).With().
		Str("user", userID).
		Str("platform", string(platform)).
		Logger()

	retrier := retry.NewDefaultRetrier()
	err := retrier.Do(ctx, func() error {
		logger.Info().Msg("starting platform session")
		return conn.Start(ctx)
	})
	if err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("platform session gave up after retries")
	}
}

// Disconnect stops one platform session, forgets its credentials, and
// clears its message history.
func (m *Manager) Disconnect(ctx context.Context, userID string, platform core.Platform) error {
	m.mu.Lock()
	if r := m.lookup(userID, platform); r != nil {
		r.cancel()
		_ = r.conn.Stop()
		delete(m.active[userID], platform)
	}
	m.mu.Unlock()

	if err := m.repo.Delete(ctx, userID, platform); err != nil {
		return err
	}
	m.store.Clear(userID, platform)
	return nil
}

// DisconnectAll stops every session for a user and wipes all their history.
func (m *Manager) DisconnectAll(ctx context.Context, userID string) error {
	m.mu.Lock()
	for _, r := range m.active[userID] {
		r.cancel()
		_ = r.conn.Stop()
	}
	delete(m.active, userID)
	m.mu.Unlock()

	if err := m.repo.DeleteAll(ctx, userID); err != nil {
		return err
	}
	m.store.ClearAll(userID)
	return nil
}

// Connected returns the user's live platforms in enum order.
func (m *Manager) Connected(userID string) []core.Platform {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []core.Platform
	for _, p := range core.Platforms() {
		if _, ok := m.active[userID][p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// lookup must be called with m.mu held.
func (m *Manager) lookup(userID string, platform core.Platform) *running {
	return m.active[userID][platform]
}
