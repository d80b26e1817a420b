package telegram

import (
	"testing"

	"github.com/sandevgo/scoutbot/internal/core"
	tele "gopkg.in/telebot.v3"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		msg  *tele.Message
		want core.Message
	}{
		{
			name: "group_message",
			msg: &tele.Message{
				ID:       42,
				Unixtime: 1710500000,
				Text:     "deploy is out",
				Chat:     &tele.Chat{ID: -100123, Type: tele.ChatGroup, Title: "Dev Team"},
				Sender:   &tele.User{ID: 7, FirstName: "Ada", LastName: "Lovelace"},
			},
			want: core.Message{
				ID:          "42",
				Platform:    core.PlatformTelegram,
				ChannelID:   "-100123",
				ChannelName: "Dev Team",
				AuthorID:    "7",
				AuthorName:  "Ada Lovelace",
				Text:        "deploy is out",
				Timestamp:   1710500000000,
			},
		},
		{
			name: "private_chat_default_name",
			msg: &tele.Message{
				ID:       1,
				Unixtime: 1710500001,
				Text:     "hi",
				Chat:     &tele.Chat{ID: 55, Type: tele.ChatPrivate},
				Sender:   &tele.User{ID: 55, Username: "ada"},
			},
			want: core.Message{
				ID:          "1",
				Platform:    core.PlatformTelegram,
				ChannelID:   "55",
				ChannelName: "Private Chat",
				AuthorID:    "55",
				AuthorName:  "ada",
				Text:        "hi",
				Timestamp:   1710500001000,
			},
		},
		{
			name: "untitled_group_default_name",
			msg: &tele.Message{
				ID:       2,
				Unixtime: 1710500002,
				Text:     "hello",
				Chat:     &tele.Chat{ID: -1, Type: tele.ChatGroup},
				Sender:   &tele.User{ID: 9},
			},
			want: core.Message{
				ID:          "2",
				Platform:    core.PlatformTelegram,
				ChannelID:   "-1",
				ChannelName: "Unknown Channel",
				AuthorID:    "9",
				AuthorName:  "Unknown",
				Text:        "hello",
				Timestamp:   1710500002000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.msg); got != tt.want {
				t.Errorf("Normalize = %+v, want %+v", got, tt.want)
			}
		})
	}
}
