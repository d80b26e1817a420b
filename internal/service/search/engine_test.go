package search

import (
	"strconv"
	"testing"
	"time"

	"github.com/sandevgo/scoutbot/internal/core"
	"github.com/sandevgo/scoutbot/internal/service/history"
)

var testNow = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func seed(s *history.Store, platform core.Platform, channelID, channelName, text string, at time.Time) {
	s.Append("alice", core.Message{
		ID:          strconv.FormatInt(at.UnixMilli(), 10),
		Platform:    platform,
		ChannelID:   channelID,
		ChannelName: channelName,
		AuthorID:    "u1",
		AuthorName:  "User One",
		Text:        text,
		Timestamp:   at.UnixMilli(),
	})
}

func TestCutoff(t *testing.T) {
	tests := []struct {
		name      string
		timeRange core.TimeRange
		want      time.Time
	}{
		{
			name:      "recent_is_rolling_24h",
			timeRange: core.RangeRecent,
			want:      testNow.Add(-24 * time.Hour),
		},
		{
			name:      "today_is_start_of_day",
			timeRange: core.RangeToday,
			want:      time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "yesterday_is_start_of_previous_day",
			timeRange: core.RangeYesterday,
			want:      time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "week_is_rolling_7x24h",
			timeRange: core.RangeThisWeek,
			want:      testNow.Add(-7 * 24 * time.Hour),
		},
		{
			name:      "unknown_falls_back_to_recent",
			timeRange: core.TimeRange("bogus"),
			want:      testNow.Add(-24 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cutoff(tt.timeRange, testNow); got != tt.want.UnixMilli() {
				t.Errorf("Cutoff = %d, want %d", got, tt.want.UnixMilli())
			}
		})
	}
}

func TestEngine_TimeFilter(t *testing.T) {
	store := history.NewStore()
	seed(store, core.PlatformTelegram, "general", "General", "old deploy note", testNow.Add(-48*time.Hour))
	seed(store, core.PlatformTelegram, "general", "General", "fresh deploy note", testNow.Add(-time.Hour))

	engine := NewEngine(store)
	q := core.Query{Platforms: []core.Platform{core.PlatformTelegram}, Range: core.RangeRecent}

	results := engine.Search("alice", q, testNow)
	if len(results) != 1 {
		t.Fatalf("platforms = %d, want 1", len(results))
	}
	msgs := results[0].Channels[0].Messages
	if len(msgs) != 1 {
		t.Fatalf("matches = %d, want 1", len(msgs))
	}
	if msgs[0].Text != "fresh deploy note" {
		t.Errorf("matched %q", msgs[0].Text)
	}
}

func TestEngine_KeywordFilter(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{
			name:     "no_keywords_matches_all",
			keywords: nil,
			want:     []string{"deploy went out", "coffee machine broke", "DEPLOY rollback"},
		},
		{
			name:     "single_keyword_case_insensitive",
			keywords: []string{"deploy"},
			want:     []string{"deploy went out", "DEPLOY rollback"},
		},
		{
			name:     "any_keyword_suffices",
			keywords: []string{"coffee", "rollback"},
			want:     []string{"coffee machine broke", "DEPLOY rollback"},
		},
		{
			name:     "no_match",
			keywords: []string{"kubernetes"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := history.NewStore()
			seed(store, core.PlatformSlack, "C1", "general", "deploy went out", testNow.Add(-time.Hour))
			seed(store, core.PlatformSlack, "C1", "general", "coffee machine broke", testNow.Add(-time.Hour))
			seed(store, core.PlatformSlack, "C1", "general", "DEPLOY rollback", testNow.Add(-time.Hour))

			engine := NewEngine(store)
			q := core.Query{
				Platforms: []core.Platform{core.PlatformSlack},
				Range:     core.RangeRecent,
				Keywords:  tt.keywords,
			}

			results := engine.Search("alice", q, testNow)
			if tt.want == nil {
				if len(results) != 0 {
					t.Fatalf("expected no results, got %v", results)
				}
				return
			}

			msgs := results[0].Channels[0].Messages
			if len(msgs) != len(tt.want) {
				t.Fatalf("matches = %d, want %d", len(msgs), len(tt.want))
			}
			for i, text := range tt.want {
				if msgs[i].Text != text {
					t.Errorf("match[%d] = %q, want %q (arrival order)", i, msgs[i].Text, text)
				}
			}
		})
	}
}

func TestEngine_ChannelHints(t *testing.T) {
	tests := []struct {
		name  string
		hints []string
		want  []string // channel ids expected in result
	}{
		{
			name:  "no_hints_keeps_all_channels",
			hints: nil,
			want:  []string{"C1", "C2", "C3"},
		},
		{
			name:  "name_substring_case_insensitive",
			hints: []string{"proj"},
			want:  []string{"C2"},
		},
		{
			name:  "exact_channel_id",
			hints: []string{"C3"},
			want:  []string{"C3"},
		},
		{
			name:  "multiple_hints_union",
			hints: []string{"general", "C3"},
			want:  []string{"C1", "C3"},
		},
		{
			name:  "unmatched_hint_drops_everything",
			hints: []string{"nothing-here"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := history.NewStore()
			seed(store, core.PlatformDiscord, "C1", "general", "hello", testNow.Add(-time.Hour))
			seed(store, core.PlatformDiscord, "C2", "Project Team", "hello", testNow.Add(-time.Hour))
			seed(store, core.PlatformDiscord, "C3", "random", "hello", testNow.Add(-time.Hour))

			engine := NewEngine(store)
			q := core.Query{
				Platforms:    []core.Platform{core.PlatformDiscord},
				Range:        core.RangeRecent,
				ChannelHints: tt.hints,
			}

			results := engine.Search("alice", q, testNow)
			if tt.want == nil {
				if len(results) != 0 {
					t.Fatalf("expected no results, got %v", results)
				}
				return
			}

			channels := results[0].Channels
			if len(channels) != len(tt.want) {
				t.Fatalf("channels = %d, want %d", len(channels), len(tt.want))
			}
			for i, id := range tt.want {
				if channels[i].ChannelID != id {
					t.Errorf("channel[%d] = %s, want %s", i, channels[i].ChannelID, id)
				}
			}
		})
	}
}

func TestEngine_KeywordSelfReference(t *testing.T) {
	// "discord" survives into keywords, so a discord-wide query only matches
	// messages literally containing "discord". Documented behavior.
	store := history.NewStore()
	seed(store, core.PlatformDiscord, "C1", "general", "shipping the new build", testNow.Add(-time.Hour))

	engine := NewEngine(store)
	q := core.Query{
		Platforms: []core.Platform{core.PlatformDiscord},
		Range:     core.RangeRecent,
		Keywords:  []string{"recent", "discord", "activity"},
	}

	if results := engine.Search("alice", q, testNow); len(results) != 0 {
		t.Fatalf("expected zero matches, got %v", results)
	}
}

func TestEngine_MultiPlatformOrder(t *testing.T) {
	store := history.NewStore()
	seed(store, core.PlatformSlack, "C1", "general", "hello", testNow.Add(-time.Hour))
	seed(store, core.PlatformTelegram, "100", "Private Chat", "hello", testNow.Add(-time.Hour))

	engine := NewEngine(store)
	q := core.Query{
		Platforms: []core.Platform{core.PlatformTelegram, core.PlatformDiscord, core.PlatformSlack},
		Range:     core.RangeRecent,
	}

	results := engine.Search("alice", q, testNow)
	if len(results) != 2 {
		t.Fatalf("platforms = %d, want 2 (discord is empty)", len(results))
	}
	if results[0].Platform != core.PlatformTelegram || results[1].Platform != core.PlatformSlack {
		t.Errorf("order = %s, %s", results[0].Platform, results[1].Platform)
	}
}

func TestEngine_EmptyStore(t *testing.T) {
	engine := NewEngine(history.NewStore())
	q := core.Query{Platforms: core.Platforms(), Range: core.RangeRecent}

	if results := engine.Search("nobody", q, testNow); len(results) != 0 {
		t.Fatalf("expected empty result, got %v", results)
	}
}
