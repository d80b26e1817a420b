package query

import (
	"regexp"
	"strings"

	"github.com/sandevgo/scoutbot/internal/core"
)

// platformTriggers maps each platform to the substrings that select it.
// Matching is plain substring containment, not word-boundary aware: "sl"
// inside another word still selects slack.
var platformTriggers = map[core.Platform][]string{
	core.PlatformTelegram: {"telegram", "tg"},
	core.PlatformDiscord:  {"discord", "dc", "server"},
	core.PlatformSlack:    {"slack", "sl"},
}

type rangeTrigger struct {
	timeRange core.TimeRange
	words     []string
}

// rangeTriggers is evaluated top to bottom; the first matching range wins,
// so earlier entries take priority on ambiguous queries.
var rangeTriggers = []rangeTrigger{
	{core.RangeRecent, []string{"recent", "latest"}},
	{core.RangeToday, []string{"today", "this day"}},
	{core.RangeYesterday, []string{"yesterday"}},
	{core.RangeThisWeek, []string{"this week", "past week", "week", "7 days"}},
}

// stopwords are common function and query words that carry no search intent.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "was": {}, "were": {},
	"with": {}, "that": {}, "this": {}, "from": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "who": {}, "whom": {}, "how": {}, "can": {},
	"could": {}, "would": {}, "should": {}, "you": {}, "your": {}, "all": {},
	"any": {}, "did": {}, "does": {}, "has": {}, "have": {}, "had": {},
	"his": {}, "her": {}, "him": {}, "she": {}, "they": {}, "them": {},
	"their": {}, "our": {}, "out": {}, "not": {}, "but": {}, "get": {},
	"got": {}, "show": {}, "find": {}, "about": {}, "mentions": {},
	"messages": {}, "message": {}, "chats": {}, "chat": {},
}

const punctuation = ".,/#!$%^&*;:{}=-_`~()"

var (
	hashTagRe     = regexp.MustCompile(`#([a-zA-Z0-9_-]+)`)
	quotedRe      = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)
	punctReplacer = newPunctReplacer()
)

func newPunctReplacer() *strings.Replacer {
	pairs := make([]string, 0, len(punctuation)*2)
	for _, r := range punctuation {
		pairs = append(pairs, string(r), " ")
	}
	return strings.NewReplacer(pairs...)
}

// Interpreter turns raw query text into a structured core.Query. It is a
// pure function over its input: no store access, no connection state.
type Interpreter struct{}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

func (i *Interpreter) Parse(raw string) core.Query {
	lowered := strings.ToLower(raw)

	return core.Query{
		Raw:          raw,
		Platforms:    detectPlatforms(lowered),
		Range:        detectRange(lowered),
		Keywords:     extractKeywords(lowered),
		ChannelHints: extractChannelHints(raw),
	}
}

// detectPlatforms returns matched platforms in enum order, or nil when no
// trigger matched; the caller falls back to the requester's connected set.
func detectPlatforms(lowered string) []core.Platform {
	var out []core.Platform
	for _, platform := range core.Platforms() {
		for _, trigger := range platformTriggers[platform] {
			if strings.Contains(lowered, trigger) {
				out = append(out, platform)
				break
			}
		}
	}
	return out
}

func detectRange(lowered string) core.TimeRange {
	for _, rt := range rangeTriggers {
		for _, w := range rt.words {
			if strings.Contains(lowered, w) {
				return rt.timeRange
			}
		}
	}
	return core.RangeRecent
}

// extractKeywords keeps lowercased tokens longer than two characters that
// are not stopwords. Platform and time-range trigger words are NOT removed:
// "discord" in the query stays a literal content filter.
func extractKeywords(lowered string) []string {
	stripped := punctReplacer.Replace(lowered)

	var out []string
	seen := make(map[string]struct{})
	for _, token := range strings.Fields(stripped) {
		if len(token) <= 2 {
			continue
		}
		if _, ok := stopwords[token]; ok {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

// extractChannelHints collects #tokens (without the #) and the inner text
// of single- or double-quoted substrings, case preserved, discovery order.
func extractChannelHints(raw string) []string {
	var out []string
	seen := make(map[string]struct{})

	add := func(hint string) {
		if hint == "" {
			return
		}
		if _, ok := seen[hint]; ok {
			return
		}
		seen[hint] = struct{}{}
		out = append(out, hint)
	}

	for _, m := range hashTagRe.FindAllStringSubmatch(raw, -1) {
		add(m[1])
	}
	for _, m := range quotedRe.FindAllStringSubmatch(raw, -1) {
		if m[1] != "" {
			add(m[1])
		} else {
			add(m[2])
		}
	}
	return out
}
