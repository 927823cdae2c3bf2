package chat_test

import (
	"context"
	"io"
	"testing"

	"github.com/myrjola/thejury/internal/ai"
	"github.com/myrjola/thejury/internal/chat"
	"github.com/myrjola/thejury/internal/models"
	"github.com/myrjola/thejury/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

// fakeCompleter records the requests it sees and replays canned replies.
type fakeCompleter struct {
	requests []ai.ChatRequest
	reply    ai.ChatReply
	err      error
}

func (f *fakeCompleter) ChatCompletion(_ context.Context, request ai.ChatRequest) (ai.ChatReply, error) {
	f.requests = append(f.requests, request)
	if f.err != nil {
		return ai.ChatReply{}, f.err
	}
	return f.reply, nil
}

func newManager(t *testing.T, completer chat.Completer) *chat.Manager {
	t.Helper()
	return chat.NewManager(completer, testhelpers.NewLogger(io.Discard))
}

func TestManager_Send(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("fails before any session is primed", func(t *testing.T) {
		t.Parallel()
		manager := newManager(t, &fakeCompleter{reply: ai.ChatReply{Text: "hi"}})

		_, err := manager.Send(ctx, "anyone there?")
		require.ErrorIs(t, err, chat.ErrNotPrimed)
	})

	t.Run("appends both turns to the history", func(t *testing.T) {
		t.Parallel()
		completer := &fakeCompleter{reply: ai.ChatReply{Text: "the jury answers"}}
		manager := newManager(t, completer)
		manager.Prime("summary", "English")

		reply, err := manager.Send(ctx, "why FAIL?")
		require.NoError(t, err)
		require.Equal(t, "the jury answers", reply)

		history := manager.History()
		require.Equal(t, []models.ChatTurn{
			{Role: models.RoleUser, Text: "why FAIL?"},
			{Role: models.RoleAssistant, Text: "the jury answers"},
		}, history)
	})

	t.Run("forwards prior history with each request", func(t *testing.T) {
		t.Parallel()
		completer := &fakeCompleter{reply: ai.ChatReply{Text: "reply"}}
		manager := newManager(t, completer)
		manager.Prime("summary", "English")

		_, err := manager.Send(ctx, "first")
		require.NoError(t, err)
		_, err = manager.Send(ctx, "second")
		require.NoError(t, err)

		require.Len(t, completer.requests, 2)
		require.Empty(t, completer.requests[0].History)
		require.Len(t, completer.requests[1].History, 2)
		require.False(t, completer.requests[0].WebSearch)
	})

	t.Run("priming replaces the session and its history", func(t *testing.T) {
		t.Parallel()
		completer := &fakeCompleter{reply: ai.ChatReply{Text: "reply"}}
		manager := newManager(t, completer)
		first := manager.Prime("summary one", "English")

		_, err := manager.Send(ctx, "message")
		require.NoError(t, err)

		second := manager.Prime("summary two", "English")
		require.Greater(t, second, first)
		require.Equal(t, second, manager.Generation())
		require.Empty(t, manager.History(), "new session starts with an empty history")
	})
}

func TestManager_Compare(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	completer := &fakeCompleter{reply: ai.ChatReply{Text: "verdict on the competitor"}}
	manager := newManager(t, completer)
	manager.Prime("summary", "English")

	_, err := manager.Compare(ctx, "Acme Corp")
	require.NoError(t, err)

	require.Len(t, completer.requests, 1)
	require.Equal(t, "Cross-examine my product against Acme Corp", completer.requests[0].Message)
	require.True(t, completer.requests[0].WebSearch, "competitor turns must request web search")
}

func TestManager_EvidenceBlock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("appends distinct sources in order", func(t *testing.T) {
		t.Parallel()
		completer := &fakeCompleter{reply: ai.ChatReply{
			Text: "the facts",
			Sources: []models.GroundingSource{
				{Title: "A", URI: "https://example.com/x"},
				{Title: "B", URI: "https://example.com/y"},
				{Title: "A", URI: "https://example.com/x"},
			},
		}}
		manager := newManager(t, completer)
		manager.Prime("summary", "English")

		reply, err := manager.Compare(ctx, "Acme Corp")
		require.NoError(t, err)
		require.Equal(t, "the facts\n\n**EVIDENCE EXHIBIT (SOURCES):**\n"+
			"- [A](https://example.com/x)\n- [B](https://example.com/y)", reply)
	})

	t.Run("omits sources missing a title or URI", func(t *testing.T) {
		t.Parallel()
		completer := &fakeCompleter{reply: ai.ChatReply{
			Text: "the facts",
			Sources: []models.GroundingSource{
				{Title: "", URI: "https://example.com/x"},
				{Title: "B", URI: ""},
			},
		}}
		manager := newManager(t, completer)
		manager.Prime("summary", "English")

		reply, err := manager.Send(ctx, "sources?")
		require.NoError(t, err)
		require.Equal(t, "the facts", reply, "no evidence block without usable sources")
	})
}

func TestManager_StaleReply(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Re-prime while a completion is in flight: the late reply must not
	// leak into the new session's history.
	completer := &repriminingCompleter{ //nolint:exhaustruct
		inner: &fakeCompleter{reply: ai.ChatReply{Text: "late reply"}}, //nolint:exhaustruct
	}
	manager := newManager(t, completer)
	completer.manager = manager
	manager.Prime("summary", "English")

	reply, err := manager.Send(ctx, "slow question")
	require.NoError(t, err)
	require.Equal(t, "late reply", reply, "the caller still sees the reply")
	require.Empty(t, manager.History(), "the superseded session's turns are discarded")
}

// repriminingCompleter primes a fresh session mid-completion to simulate a
// new analysis finishing while a chat reply is in flight.
type repriminingCompleter struct {
	inner   *fakeCompleter
	manager *chat.Manager
}

func (r *repriminingCompleter) ChatCompletion(ctx context.Context, request ai.ChatRequest) (ai.ChatReply, error) {
	reply, err := r.inner.ChatCompletion(ctx, request)
	r.manager.Prime("replacement summary", "English")
	return reply, err
}
