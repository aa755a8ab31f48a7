package greeting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusflow/campus-assistant-go/internal/bot"
	"github.com/campusflow/campus-assistant-go/internal/reply"
)

func TestCanHandle(t *testing.T) {
	t.Parallel()

	h := NewHandler(reply.NewSynthesizer(nil, nil))

	tests := []struct {
		text string
		want bool
	}{
		{"hello", true},
		{"Hey there!", true},
		{"good morning", true},
		{"helo", true}, // typo, fuzzy match
		{"help", true},
		{"what can you do", true},
		{"hello I would like to ask about the fee structure", false}, // too long
		{"notes", false},
		{"fees", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, h.CanHandle(tt.text), "text: %q", tt.text)
		})
	}
}

func TestHandle(t *testing.T) {
	t.Parallel()

	h := NewHandler(reply.NewSynthesizer(nil, nil))
	rep, err := h.Handle(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, bot.IntentHelpGreeting, rep.Intent)
	assert.NotEmpty(t, rep.Message)
}
