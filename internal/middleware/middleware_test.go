package middleware

import (
	"context"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clubgate/clubgate-bot/internal/actions"
	"github.com/clubgate/clubgate-bot/internal/contextkeys"
)

func classifyUpdate(t *testing.T, update *models.Update) context.Context {
	t.Helper()
	m := NewClassifier(zap.NewNop().Sugar())

	var got context.Context
	next := func(ctx context.Context, b *bot.Bot, u *models.Update) {
		got = ctx
	}
	m.ClassifyUpdate(next)(context.Background(), nil, update)
	require.NotNil(t, got)
	return got
}

func TestClassifyCommand(t *testing.T) {
	ctx := classifyUpdate(t, &models.Update{
		Message: &models.Message{Text: "/start"},
	})

	mt, ok := contextkeys.GetMessageType(ctx)
	require.True(t, ok)
	assert.Equal(t, contextkeys.MessageTypeCommand, mt)
}

func TestClassifyText(t *testing.T) {
	ctx := classifyUpdate(t, &models.Update{
		Message: &models.Message{Text: "0xabc123"},
	})

	mt, ok := contextkeys.GetMessageType(ctx)
	require.True(t, ok)
	assert.Equal(t, contextkeys.MessageTypeText, mt)
}

func TestClassifyCallbackWithAction(t *testing.T) {
	ctx := classifyUpdate(t, &models.Update{
		CallbackQuery: &models.CallbackQuery{Data: "approve_42"},
	})

	mt, ok := contextkeys.GetMessageType(ctx)
	require.True(t, ok)
	assert.Equal(t, contextkeys.MessageTypeClickButton, mt)

	action, ok := contextkeys.GetAction(ctx)
	require.True(t, ok)
	assert.Equal(t, actions.KindApprove, action.Kind)
	assert.Equal(t, int64(42), action.UserID)

	data, ok := contextkeys.GetCallbackData(ctx)
	require.True(t, ok)
	assert.Equal(t, "approve_42", data)
}

func TestClassifyCallbackMalformedPayload(t *testing.T) {
	ctx := classifyUpdate(t, &models.Update{
		CallbackQuery: &models.CallbackQuery{Data: "bogus_payload"},
	})

	mt, ok := contextkeys.GetMessageType(ctx)
	require.True(t, ok)
	assert.Equal(t, contextkeys.MessageTypeClickButton, mt)

	// The payload is preserved for logging but no action is attached.
	_, ok = contextkeys.GetAction(ctx)
	assert.False(t, ok)
}

func TestClassifyUnknownUpdate(t *testing.T) {
	ctx := classifyUpdate(t, &models.Update{})

	mt, ok := contextkeys.GetMessageType(ctx)
	require.True(t, ok)
	assert.Equal(t, contextkeys.MessageTypeUnknown, mt)
}
