package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sandevgo/scoutbot/internal/core"
)

const timestampLayout = "Jan 2 15:04"

var platformLabels = map[core.Platform]string{
	core.PlatformTelegram: "✈️ Telegram",
	core.PlatformDiscord:  "🎮 Discord",
	core.PlatformSlack:    "💬 Slack",
}

// Formatter renders aggregated search results as a Markdown text block.
// The transport converts it to whatever the host platform accepts.
type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders results in the order given, capping output at
// core.MaxMessagesToDisplay rendered messages across all platforms and
// channels combined. The budget is consumed while iterating; once it hits
// zero no further channel or platform section is opened.
func (f *Formatter) Format(q core.Query, results []core.PlatformResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("🔍 Couldn't find any messages matching \"%s\".", q.Raw)
	}

	total := 0
	for _, pr := range results {
		for _, ch := range pr.Channels {
			total += len(ch.Messages)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔍 **Results for:** %s\n", q.Raw))

	remaining := core.MaxMessagesToDisplay
	rendered := 0

	for _, pr := range results {
		if remaining == 0 {
			break
		}
		sb.WriteString(fmt.Sprintf("\n**%s**\n", platformLabels[pr.Platform]))

		for _, ch := range pr.Channels {
			if remaining == 0 {
				break
			}
			sb.WriteString(fmt.Sprintf("\n**#%s**\n", ch.ChannelName))

			for _, msg := range sortNewestFirst(ch.Messages) {
				if remaining == 0 {
					break
				}
				sb.WriteString(formatLine(msg))
				remaining--
				rendered++
			}
		}
	}

	if total > rendered {
		sb.WriteString(fmt.Sprintf("\n_Showing %d of %d matching messages._\n", rendered, total))
	}

	return sb.String()
}

func formatLine(msg core.Message) string {
	ts := time.UnixMilli(msg.Timestamp).UTC().Format(timestampLayout)
	return fmt.Sprintf("› `%s` **%s**: %s\n", ts, msg.AuthorName, msg.Text)
}

// sortNewestFirst returns a copy sorted by timestamp descending; equal
// timestamps keep their arrival order. The input stays untouched, results
// are borrowed from the search engine.
func sortNewestFirst(msgs []core.Message) []core.Message {
	out := make([]core.Message, len(msgs))
	copy(out, msgs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}
