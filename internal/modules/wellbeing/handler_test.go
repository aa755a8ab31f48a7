package wellbeing

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusflow/campus-assistant-go/internal/bot"
	"github.com/campusflow/campus-assistant-go/internal/emotion"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/metrics"
	"github.com/campusflow/campus-assistant-go/internal/reply"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(
		emotion.NewDetector(),
		reply.NewSynthesizer(nil, nil),
		0.3,
		logger.New("error"),
		metrics.New(prometheus.NewRegistry()),
	)
}

func TestCanHandle(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"direct emotion word", "i am feeling very sad today", true},
		{"personal phrase", "i feel so empty today", true},
		{"indicator without emotion", "i am in room 204", false},
		{"academic stays academic", "I need notes, I'm so stressed about my exams", false},
		{"pyq stays academic", "previous year question papers please", false},
		{"plain info query", "what are the college fees", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, h.CanHandle(tt.text), "text: %q", tt.text)
		})
	}
}

func TestHandleComposesReply(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rep, err := h.Handle(context.Background(), "i feel so lonely and stressed")
	require.NoError(t, err)
	assert.Equal(t, bot.IntentMentalHealth, rep.Intent)
	assert.Equal(t, reply.TypeText, rep.Type)
	assert.NotEmpty(t, rep.Message)
}
