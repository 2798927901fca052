package automation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visacrony-gateway/internal/chatbot"
)

type sent struct {
	to, body string
}

type fakeSender struct {
	sent []sent
	err  error
}

func (f *fakeSender) SendMessage(_ context.Context, to, body string) error {
	f.sent = append(f.sent, sent{to, body})
	return f.err
}

func TestProcessIncomingMessage_RepliesWithClassifiedText(t *testing.T) {
	s := &fakeSender{}
	e := NewEngine(s)

	require.NoError(t, e.ProcessIncomingMessage(context.Background(), "919000000000", "What's the visa price for Singapore?"))
	require.Len(t, s.sent, 1)

	_, want := chatbot.Classify("price")
	assert.Equal(t, "919000000000", s.sent[0].to)
	assert.Equal(t, want, s.sent[0].body)
}

func TestProcessIncomingMessage_Fallback(t *testing.T) {
	s := &fakeSender{}
	require.NoError(t, NewEngine(s).ProcessIncomingMessage(context.Background(), "1", "xyzzy"))
	require.Len(t, s.sent, 1)
	assert.Equal(t, chatbot.FallbackReply, s.sent[0].body)
}

func TestProcessIncomingMessage_BlankIgnored(t *testing.T) {
	s := &fakeSender{}
	require.NoError(t, NewEngine(s).ProcessIncomingMessage(context.Background(), "1", "   "))
	assert.Empty(t, s.sent)
}

func TestProcessIncomingMessage_SendError(t *testing.T) {
	s := &fakeSender{err: errors.New("401")}
	err := NewEngine(s).ProcessIncomingMessage(context.Background(), "1", "hello")
	assert.Error(t, err)
}

func TestProcessIncomingMessage_NoSender(t *testing.T) {
	assert.NoError(t, NewEngine(nil).ProcessIncomingMessage(context.Background(), "1", "hello"))
}
