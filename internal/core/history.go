package core

// HistoryRepository is the bounded in-memory message store. Safe for
// concurrent appends from multiple connectors and concurrent reads from
// query execution; reads return snapshots, never live slices.
type HistoryRepository interface {
	Append(userID string, msg Message)
	Channels(userID string, platform Platform) []string
	Messages(userID string, platform Platform, channelID string) []Message
	Clear(userID string, platform Platform)
	ClearAll(userID string)
	MessageCount(userID string, platform Platform) int
}
