package slack

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"

	"github.com/sandevgo/scoutbot/internal/core"
	"github.com/sandevgo/scoutbot/pkg/log"
)

// Connector ingests live Slack traffic over Socket Mode. The credential
// string carries both tokens: "<xoxb-bot-token> <xapp-app-token>".
type Connector struct {
	userID string
	api    *slack.Client
	sm     *socketmode.Client
	store  core.HistoryRepository

	mu       sync.Mutex
	channels map[string]string // channel id -> display name
	users    map[string]string // user id -> display name
}

func New(userID, token string, store core.HistoryRepository) (*Connector, error) {
	parts := strings.Fields(token)
	if len(parts) != 2 {
		return nil, fmt.Errorf("slack needs a bot token and an app token: \"xoxb-... xapp-...\"")
	}

	api := slack.New(parts[0], slack.OptionAppLevelToken(parts[1]))
	return &Connector{
		userID:   userID,
		api:      api,
		sm:       socketmode.New(api),
		store:    store,
		channels: make(map[string]string),
		users:    make(map[string]string),
	}, nil
}

func (c *Connector) Platform() core.Platform {
	return core.PlatformSlack
}

func (c *Connector) Start(ctx context.Context) error {
	go c.consume(ctx)
	return c.sm.RunContext(ctx)
}

func (c *Connector) Stop() error {
	// RunContext returns once the manager cancels the session context.
	return nil
}

func (c *Connector) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-c.sm.Events:
			if !ok {
				return
			}
			if evt.Type != socketmode.EventTypeEventsAPI {
				continue
			}
			apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
			if !ok {
				continue
			}
			if evt.Request != nil {
				c.sm.Ack(*evt.Request)
			}

			ev, ok := apiEvent.InnerEvent.Data.(*slackevents.MessageEvent)
			if !ok || ev.SubType != "" || ev.BotID != "" {
				continue
			}

			msg := Normalize(ev, c.channelName(ev.Channel), c.authorName(ev.User))
			c.store.Append(c.userID, msg)
			log.FromCtx(ctx).Debug().
				Str("channel", msg.ChannelName).
				Msg("slack message ingested")
		}
	}
}

func (c *Connector) channelName(channelID string) string {
	c.mu.Lock()
	name, ok := c.channels[channelID]
	c.mu.Unlock()
	if ok {
		return name
	}

	name = "Unknown Channel"
	info, err := c.api.GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: channelID})
	if err == nil && info != nil {
		switch {
		case info.IsIM || info.IsMpIM:
			name = "Private Chat"
		case info.Name != "":
			name = info.Name
		}
	}

	c.mu.Lock()
	c.channels[channelID] = name
	c.mu.Unlock()
	return name
}

func (c *Connector) authorName(userID string) string {
	c.mu.Lock()
	name, ok := c.users[userID]
	c.mu.Unlock()
	if ok {
		return name
	}

	name = "Unknown"
	info, err := c.api.GetUserInfo(userID)
	if err == nil && info != nil {
		switch {
		case info.RealName != "":
			name = info.RealName
		case info.Name != "":
			name = info.Name
		}
	}

	c.mu.Lock()
	c.users[userID] = name
	c.mu.Unlock()
	return name
}

// Normalize maps a Slack message onto the common shape. Slack's fractional
// "ts" is truncated to whole seconds before scaling to milliseconds.
func Normalize(ev *slackevents.MessageEvent, channelName, authorName string) core.Message {
	return core.Message{
		ID:          ev.TimeStamp,
		Platform:    core.PlatformSlack,
		ChannelID:   ev.Channel,
		ChannelName: channelName,
		AuthorID:    ev.User,
		AuthorName:  authorName,
		Text:        ev.Text,
		Timestamp:   ParseTimestamp(ev.TimeStamp),
	}
}

// ParseTimestamp converts Slack's "1700000000.123456" to epoch millis,
// dropping the fractional part.
func ParseTimestamp(ts string) int64 {
	seconds, _, _ := strings.Cut(ts, ".")
	n, err := strconv.ParseInt(seconds, 10, 64)
	if err != nil {
		return 0
	}
	return n * 1000
}
