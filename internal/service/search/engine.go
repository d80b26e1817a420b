package search

import (
	"strings"
	"time"

	"github.com/sandevgo/scoutbot/internal/core"
)

const (
	recentWindow   = 24 * time.Hour
	thisWeekWindow = 7 * 24 * time.Hour
)

// Engine executes structured queries against the history store. It only
// reads snapshots; history may keep growing while a search runs.
type Engine struct {
	store core.HistoryRepository
}

func NewEngine(store core.HistoryRepository) *Engine {
	return &Engine{store: store}
}

// Search runs the query against every platform in q.Platforms and returns
// one PlatformResult per platform that produced at least one match,
// preserving the order of q.Platforms.
func (e *Engine) Search(userID string, q core.Query, now time.Time) []core.PlatformResult {
	var out []core.PlatformResult
	for _, platform := range q.Platforms {
		if res, ok := e.SearchPlatform(userID, platform, q, now); ok {
			out = append(out, res)
		}
	}
	return out
}

// SearchPlatform filters one platform's channels and messages. A channel
// contributes only when it has at least one matching message; the matching
// subset stays in arrival order, sorting is the renderer's job.
func (e *Engine) SearchPlatform(userID string, platform core.Platform, q core.Query, now time.Time) (core.PlatformResult, bool) {
	cutoff := Cutoff(q.Range, now)

	res := core.PlatformResult{Platform: platform}
	for _, channelID := range e.store.Channels(userID, platform) {
		msgs := e.store.Messages(userID, platform, channelID)
		if len(msgs) == 0 {
			continue
		}
		if len(q.ChannelHints) > 0 && !channelMatchesHints(channelID, msgs[0].ChannelName, q.ChannelHints) {
			continue
		}

		var matching []core.Message
		for _, msg := range msgs {
			if msg.Timestamp < cutoff {
				continue
			}
			if !textMatches(msg.Text, q.Keywords) {
				continue
			}
			matching = append(matching, msg)
		}
		if len(matching) == 0 {
			continue
		}

		res.Channels = append(res.Channels, core.ChannelResult{
			ChannelID:   channelID,
			ChannelName: msgs[0].ChannelName,
			Messages:    matching,
		})
	}

	return res, len(res.Channels) > 0
}

// Cutoff returns the earliest timestamp (epoch millis, inclusive) a message
// must have for the given range. Calendar ranges are day-aligned in local
// time; recent and week are rolling windows off now.
func Cutoff(r core.TimeRange, now time.Time) int64 {
	switch r {
	case core.RangeToday:
		return startOfDay(now).UnixMilli()
	case core.RangeYesterday:
		return startOfDay(now).AddDate(0, 0, -1).UnixMilli()
	case core.RangeThisWeek:
		return now.Add(-thisWeekWindow).UnixMilli()
	default:
		return now.Add(-recentWindow).UnixMilli()
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// channelMatchesHints narrows candidates: case-insensitive substring match
// against the channel's display name, or exact match against its id.
func channelMatchesHints(channelID, channelName string, hints []string) bool {
	loweredName := strings.ToLower(channelName)
	for _, hint := range hints {
		if channelID == hint {
			return true
		}
		if strings.Contains(loweredName, strings.ToLower(hint)) {
			return true
		}
	}
	return false
}

// textMatches reports whether text contains any keyword as a
// case-insensitive substring. No keywords means everything matches.
func textMatches(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
