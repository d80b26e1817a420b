package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sandevgo/scoutbot/internal/core"
)

type stubCommand struct {
	name   string
	result string
	err    error
	called []string
}

func (s *stubCommand) Name() string        { return s.name }
func (s *stubCommand) Description() string { return "stub" }

func (s *stubCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	s.called = args
	return s.result, s.err
}

func TestRouter_Execute(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantHandled bool
		wantOutput  string
		wantArgs    []string
	}{
		{
			name:        "plain_text_not_handled",
			input:       "what happened today",
			wantHandled: false,
		},
		{
			name:        "known_command",
			input:       "/ping",
			wantHandled: true,
			wantOutput:  "pong",
			wantArgs:    []string{},
		},
		{
			name:        "command_with_args",
			input:       "/ping one two",
			wantHandled: true,
			wantOutput:  "pong",
			wantArgs:    []string{"one", "two"},
		},
		{
			name:        "unknown_command",
			input:       "/nope",
			wantHandled: true,
			wantOutput:  "Unknown command: /nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCommand{name: "ping", result: "pong"}
			router := New([]core.Command{stub})

			output, handled := router.Execute(context.Background(), "alice", tt.input)
			if handled != tt.wantHandled {
				t.Fatalf("handled = %v, want %v", handled, tt.wantHandled)
			}
			if !tt.wantHandled {
				return
			}
			if output != tt.wantOutput {
				t.Errorf("output = %q, want %q", output, tt.wantOutput)
			}
			if tt.wantArgs != nil && len(stub.called) != len(tt.wantArgs) {
				t.Errorf("args = %v, want %v", stub.called, tt.wantArgs)
			}
		})
	}
}

func TestRouter_CommandError(t *testing.T) {
	stub := &stubCommand{name: "boom", err: errors.New("it broke")}
	router := New([]core.Command{stub})

	output, handled := router.Execute(context.Background(), "alice", "/boom")
	if !handled {
		t.Fatal("expected handled")
	}
	if !strings.Contains(output, "it broke") {
		t.Errorf("output = %q, want error text", output)
	}
}
