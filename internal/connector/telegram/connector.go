package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandevgo/scoutbot/internal/core"
	tele "gopkg.in/telebot.v3"
)

// Connector ingests live Telegram traffic for one user's bot account and
// normalizes every text message into the history store.
type Connector struct {
	userID string
	bot    *tele.Bot
	store  core.HistoryRepository
}

func New(userID, token string, store core.HistoryRepository) (*Connector, error) {
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram session: %w", err)
	}

	c := &Connector{
		userID: userID,
		bot:    b,
		store:  store,
	}
	b.Handle(tele.OnText, c.handleText)

	return c, nil
}

func (c *Connector) Platform() core.Platform {
	return core.PlatformTelegram
}

func (c *Connector) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		c.bot.Stop()
	}()
	c.bot.Start()
	return nil
}

func (c *Connector) Stop() error {
	c.bot.Stop()
	return nil
}

func (c *Connector) handleText(tc tele.Context) error {
	m := tc.Message()
	if m == nil {
		return nil
	}
	c.store.Append(c.userID, Normalize(m))
	return nil
}

// Normalize maps a Telegram message onto the common shape. Telegram dates
// are second granularity, multiplied out to milliseconds.
func Normalize(m *tele.Message) core.Message {
	chat := m.Chat

	name := chat.Title
	if name == "" {
		if chat.Type == tele.ChatPrivate {
			name = "Private Chat"
		} else {
			name = "Unknown Channel"
		}
	}

	authorID := ""
	if m.Sender != nil {
		authorID = strconv.FormatInt(m.Sender.ID, 10)
	}

	return core.Message{
		ID:          strconv.Itoa(m.ID),
		Platform:    core.PlatformTelegram,
		ChannelID:   strconv.FormatInt(chat.ID, 10),
		ChannelName: name,
		AuthorID:    authorID,
		AuthorName:  authorName(m.Sender),
		Text:        m.Text,
		Timestamp:   m.Unixtime * 1000,
	}
}

func authorName(u *tele.User) string {
	if u == nil {
		return "Unknown"
	}
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full != "" {
		return full
	}
	if u.Username != "" {
		return u.Username
	}
	return "Unknown"
}
