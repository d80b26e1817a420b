package telegram

import (
	"strings"
	"testing"
)

func TestSplitHTML(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		maxLen     int
		wantChunks int
	}{
		{
			name:       "short_text_single_chunk",
			text:       "hello",
			maxLen:     100,
			wantChunks: 1,
		},
		{
			name:       "exactly_at_limit",
			text:       strings.Repeat("a", 100),
			maxLen:     100,
			wantChunks: 1,
		},
		{
			name:       "splits_at_newline",
			text:       strings.Repeat("line one\n", 30),
			maxLen:     100,
			wantChunks: 3,
		},
		{
			name:       "hard_split_without_newlines",
			text:       strings.Repeat("a", 250),
			maxLen:     100,
			wantChunks: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := splitHTML(tt.text, tt.maxLen)
			if len(chunks) != tt.wantChunks {
				t.Errorf("chunks = %d, want %d", len(chunks), tt.wantChunks)
			}
			for i, chunk := range chunks {
				if len(chunk) > tt.maxLen {
					t.Errorf("chunk %d exceeds limit: %d > %d", i, len(chunk), tt.maxLen)
				}
			}
		})
	}
}
