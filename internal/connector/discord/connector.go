package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sandevgo/scoutbot/internal/core"
)

// Connector ingests live Discord traffic for one user's bot account.
type Connector struct {
	userID  string
	session *discordgo.Session
	store   core.HistoryRepository
}

func New(userID, token string, store core.HistoryRepository) (*Connector, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	c := &Connector{
		userID:  userID,
		session: session,
		store:   store,
	}
	session.AddHandler(c.handleMessage)

	return c, nil
}

func (c *Connector) Platform() core.Platform {
	return core.PlatformDiscord
}

func (c *Connector) Start(ctx context.Context) error {
	if err := c.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}
	<-ctx.Done()
	return c.session.Close()
}

func (c *Connector) Stop() error {
	return c.session.Close()
}

func (c *Connector) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	c.store.Append(c.userID, Normalize(m, c.channelName(s, m.ChannelID)))
}

// channelName resolves a channel's display name, preferring the gateway
// state cache over an API round trip.
func (c *Connector) channelName(s *discordgo.Session, channelID string) string {
	ch, err := s.State.Channel(channelID)
	if err != nil {
		ch, err = s.Channel(channelID)
	}
	if err != nil || ch == nil {
		return "Unknown Channel"
	}
	if ch.Type == discordgo.ChannelTypeDM || ch.Type == discordgo.ChannelTypeGroupDM {
		return "Private Chat"
	}
	if ch.Name == "" {
		return "Unknown Channel"
	}
	return ch.Name
}

// Normalize maps a Discord message onto the common shape. Discord
// timestamps already carry sub-second precision; they are kept as
// milliseconds.
func Normalize(m *discordgo.MessageCreate, channelName string) core.Message {
	author := "Unknown"
	authorID := ""
	if m.Author != nil {
		authorID = m.Author.ID
		if m.Author.Username != "" {
			author = m.Author.Username
		}
	}

	return core.Message{
		ID:          m.ID,
		Platform:    core.PlatformDiscord,
		ChannelID:   m.ChannelID,
		ChannelName: channelName,
		AuthorID:    authorID,
		AuthorName:  author,
		Text:        m.Content,
		Timestamp:   m.Timestamp.UnixMilli(),
	}
}
