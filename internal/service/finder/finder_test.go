package finder

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/scoutbot/internal/core"
	"github.com/sandevgo/scoutbot/internal/service/history"
)

type fakeConns struct {
	platforms []core.Platform
}

func (f *fakeConns) Connected(userID string) []core.Platform {
	return f.platforms
}

func newTestFinder(store *history.Store, conns *fakeConns, now time.Time) *Finder {
	f := NewFinder(store, conns)
	f.nowFn = func() time.Time { return now }
	return f
}

func TestFinder_FallbackToConnectedPlatforms(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 0, 0, 0, time.UTC)
	store := history.NewStore()
	store.Append("alice", core.Message{
		ID: "1", Platform: core.PlatformSlack, ChannelID: "C1", ChannelName: "general",
		AuthorName: "Bob", Text: "deploy finished", Timestamp: now.Add(-time.Hour).UnixMilli(),
	})

	f := newTestFinder(store, &fakeConns{platforms: []core.Platform{core.PlatformSlack}}, now)

	// No platform named in the query, so the connected set is searched.
	got := f.Run(context.Background(), "alice", "any deploy news")
	if !strings.Contains(got, "deploy finished") {
		t.Errorf("expected match via fallback, got %q", got)
	}
}

func TestFinder_ExplicitPlatformSkipsFallback(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 0, 0, 0, time.UTC)
	store := history.NewStore()
	store.Append("alice", core.Message{
		ID: "1", Platform: core.PlatformSlack, ChannelID: "C1", ChannelName: "general",
		AuthorName: "Bob", Text: "telegram is mentioned here", Timestamp: now.Add(-time.Hour).UnixMilli(),
	})

	f := newTestFinder(store, &fakeConns{platforms: []core.Platform{core.PlatformSlack}}, now)

	// "telegram" selects the platform, which holds nothing.
	got := f.Run(context.Background(), "alice", "telegram updates")
	if !strings.Contains(got, "Couldn't find any messages") {
		t.Errorf("expected no-match reply, got %q", got)
	}
}

func TestFinder_EmptyEverything(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 0, 0, 0, time.UTC)
	f := newTestFinder(history.NewStore(), &fakeConns{}, now)

	got := f.Run(context.Background(), "alice", "anything at all")
	if !strings.Contains(got, `Couldn't find any messages matching "anything at all"`) {
		t.Errorf("expected fixed no-match text, got %q", got)
	}
}

func TestFinder_EndToEnd(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 0, 0, 0, time.UTC)
	store := history.NewStore()
	for i, text := range []string{"fixing the login bug", "lunch plans", "bug triage at 3pm"} {
		store.Append("alice", core.Message{
			ID: string(rune('a' + i)), Platform: core.PlatformDiscord,
			ChannelID: "C1", ChannelName: "dev",
			AuthorName: "Carol", Text: text,
			Timestamp: now.Add(time.Duration(-3+i) * time.Hour).UnixMilli(),
		})
	}

	f := newTestFinder(store, &fakeConns{platforms: core.Platforms()}, now)

	got := f.Run(context.Background(), "alice", "bug reports from discord")
	if !strings.Contains(got, "login bug") || !strings.Contains(got, "bug triage") {
		t.Errorf("expected both bug messages, got %q", got)
	}
	if strings.Contains(got, "lunch plans") {
		t.Errorf("keyword filter leaked: %q", got)
	}
	// Newest first within the channel.
	if strings.Index(got, "bug triage") > strings.Index(got, "login bug") {
		t.Errorf("messages not newest-first: %q", got)
	}
}
