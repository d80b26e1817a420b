package query

import (
	"reflect"
	"testing"

	"github.com/sandevgo/scoutbot/internal/core"
)

func TestInterpreter_Platforms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []core.Platform
	}{
		{
			name:  "explicit_telegram",
			input: "show me telegram messages",
			want:  []core.Platform{core.PlatformTelegram},
		},
		{
			name:  "short_form_tg",
			input: "anything new on tg?",
			want:  []core.Platform{core.PlatformTelegram},
		},
		{
			name:  "discord_via_server",
			input: "what happened on the server",
			want:  []core.Platform{core.PlatformDiscord},
		},
		{
			name:  "multiple_platforms",
			input: "check discord and slack",
			want:  []core.Platform{core.PlatformDiscord, core.PlatformSlack},
		},
		{
			name:  "substring_not_word_boundary",
			input: "messages about translations", // "sl" inside "translations"
			want:  []core.Platform{core.PlatformSlack},
		},
		{
			name:  "no_platform_mentioned",
			input: "find bug reports",
			want:  nil,
		},
		{
			name:  "enum_order_regardless_of_mention_order",
			input: "slack and telegram updates",
			want:  []core.Platform{core.PlatformTelegram, core.PlatformSlack},
		},
	}

	interp := NewInterpreter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interp.Parse(tt.input)
			if !reflect.DeepEqual(got.Platforms, tt.want) {
				t.Errorf("Platforms = %v, want %v", got.Platforms, tt.want)
			}
		})
	}
}

func TestInterpreter_TimeRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  core.TimeRange
	}{
		{
			name:  "default_is_recent",
			input: "find bug reports",
			want:  core.RangeRecent,
		},
		{
			name:  "today",
			input: "what came in today",
			want:  core.RangeToday,
		},
		{
			name:  "yesterday",
			input: "messages from yesterday",
			want:  core.RangeYesterday,
		},
		{
			name:  "this_week",
			input: "everything from this week",
			want:  core.RangeThisWeek,
		},
		{
			name:  "ambiguous_today_and_yesterday_picks_earlier_declared",
			input: "show me today and yesterday",
			want:  core.RangeToday,
		},
		{
			name:  "recent_beats_week",
			input: "recent messages from this week",
			want:  core.RangeRecent,
		},
	}

	interp := NewInterpreter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interp.Parse(tt.input)
			if got.Range != tt.want {
				t.Errorf("Range = %s, want %s", got.Range, tt.want)
			}
		})
	}
}

func TestInterpreter_Keywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "basic_extraction",
			input: "find deployment errors",
			want:  []string{"deployment", "errors"},
		},
		{
			name:  "short_tokens_dropped",
			input: "is it up or down now",
			want:  []string{"down", "now"},
		},
		{
			name:  "stopwords_dropped",
			input: "show me all the messages about billing",
			want:  []string{"billing"},
		},
		{
			name:  "punctuation_stripped",
			input: "release-notes: v2.0 (final)!",
			want:  []string{"release", "notes", "final"},
		},
		{
			name:  "trigger_words_survive_as_keywords",
			input: "recent discord activity",
			want:  []string{"recent", "discord", "activity"},
		},
		{
			name:  "duplicates_collapse",
			input: "bug bug bug tracker",
			want:  []string{"bug", "tracker"},
		},
		{
			name:  "empty_query",
			input: "",
			want:  nil,
		},
	}

	interp := NewInterpreter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interp.Parse(tt.input)
			if !reflect.DeepEqual(got.Keywords, tt.want) {
				t.Errorf("Keywords = %v, want %v", got.Keywords, tt.want)
			}
		})
	}
}

func TestInterpreter_ChannelHints(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "hash_and_quoted",
			input: `Find mentions of bug in #general and 'Project Team'`,
			want:  []string{"general", "Project Team"},
		},
		{
			name:  "double_quoted",
			input: `messages in "Release Planning"`,
			want:  []string{"Release Planning"},
		},
		{
			name:  "hash_with_dash_and_underscore",
			input: "check #dev-ops and #team_leads",
			want:  []string{"dev-ops", "team_leads"},
		},
		{
			name:  "case_preserved",
			input: `look in "Design Reviews"`,
			want:  []string{"Design Reviews"},
		},
		{
			name:  "no_hints",
			input: "any deployment errors",
			want:  nil,
		},
		{
			name:  "duplicate_hints_collapse",
			input: "#general or #general",
			want:  []string{"general"},
		},
	}

	interp := NewInterpreter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interp.Parse(tt.input)
			if !reflect.DeepEqual(got.ChannelHints, tt.want) {
				t.Errorf("ChannelHints = %v, want %v", got.ChannelHints, tt.want)
			}
		})
	}
}

func TestInterpreter_RawPreserved(t *testing.T) {
	interp := NewInterpreter()
	raw := "Show Me TODAY in #General"
	if got := interp.Parse(raw); got.Raw != raw {
		t.Errorf("Raw = %q, want %q", got.Raw, raw)
	}
}
