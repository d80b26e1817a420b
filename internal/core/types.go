package core

const (
	ScoutName          = "ScoutBot"
	ScoutRepositoryURL = "https://github.com/sandevgo/scoutbot"
	ScoutVersion       = "0.1.0"
)

const (
	// MaxHistoryPerChannel bounds retained messages per channel; oldest evicted first.
	MaxHistoryPerChannel = 500
	// MaxMessagesToDisplay is the global cap on messages rendered in one reply.
	MaxMessagesToDisplay = 20
)

type Platform string

const (
	PlatformTelegram Platform = "telegram"
	PlatformDiscord  Platform = "discord"
	PlatformSlack    Platform = "slack"
)

// Platforms returns all supported platforms in their fixed enum order.
// Rendering and aggregation iterate in this order to stay deterministic.
func Platforms() []Platform {
	return []Platform{PlatformTelegram, PlatformDiscord, PlatformSlack}
}

func ParsePlatform(s string) (Platform, bool) {
	switch Platform(s) {
	case PlatformTelegram, PlatformDiscord, PlatformSlack:
		return Platform(s), true
	}
	return "", false
}

// Message is one normalized chat message. Connectors fill all fields at
// ingestion (absent display names get fixed defaults); immutable afterwards.
type Message struct {
	ID          string
	Platform    Platform
	ChannelID   string
	ChannelName string
	AuthorID    string
	AuthorName  string
	Text        string
	Timestamp   int64 // epoch milliseconds, second-aligned for telegram/slack
}

type TimeRange string

const (
	RangeRecent    TimeRange = "recent"
	RangeToday     TimeRange = "today"
	RangeYesterday TimeRange = "yesterday"
	RangeThisWeek  TimeRange = "week"
)

// Query is the structured form of a raw search request.
type Query struct {
	Raw          string
	Platforms    []Platform
	Range        TimeRange
	Keywords     []string
	ChannelHints []string
}

// ChannelResult holds the unsorted matching subset for one channel.
// Sorting and truncation happen at render time only.
type ChannelResult struct {
	ChannelID   string
	ChannelName string
	Messages    []Message
}

// PlatformResult is the search output for one platform, channels in
// discovery order.
type PlatformResult struct {
	Platform Platform
	Channels []ChannelResult
}
