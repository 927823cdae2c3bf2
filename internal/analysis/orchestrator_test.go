package analysis_test

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/myrjola/thejury/internal/ai"
	"github.com/myrjola/thejury/internal/analysis"
	"github.com/myrjola/thejury/internal/chat"
	"github.com/myrjola/thejury/internal/models"
	"github.com/myrjola/thejury/internal/testhelpers"
	"github.com/myrjola/thejury/internal/verdict"
	"github.com/stretchr/testify/require"
)

// fakeGenerator replays a canned structured-output response and records the
// request it received.
type fakeGenerator struct {
	request ai.GenerationRequest
	raw     []byte
	err     error
}

func (f *fakeGenerator) GenerateAnalysis(_ context.Context, request ai.GenerationRequest) ([]byte, error) {
	f.request = request
	return f.raw, f.err
}

type fakeCompleter struct {
	request ai.ChatRequest
}

func (f *fakeCompleter) ChatCompletion(_ context.Context, request ai.ChatRequest) (ai.ChatReply, error) {
	f.request = request
	return ai.ChatReply{Text: "reply"}, nil //nolint:exhaustruct
}

func validRaw(t *testing.T) []byte {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"case_title": "Sock Subscription Saga",
		"cto":        map[string]any{"thought": "a cron job", "verdict": "no", "status": "FAIL"},
		"genZ":       map[string]any{"vibe": "mid", "verdict": "drop it", "status": "DROP"},
		"mom":        map[string]any{"concerns": "monthly fees", "verdict": "save your money", "status": "NO TRUST"},
	})
	require.NoError(t, err)
	return raw
}

func TestOrchestrator_Submit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	logger := testhelpers.NewLogger(io.Discard)

	t.Run("rejects an empty submission", func(t *testing.T) {
		t.Parallel()
		generator := &fakeGenerator{}                   //nolint:exhaustruct
		manager := chat.NewManager(&fakeCompleter{}, logger) //nolint:exhaustruct
		orchestrator := analysis.NewOrchestrator(generator, manager, logger)

		_, err := orchestrator.Submit(ctx, analysis.SubmitRequest{Language: "English"}) //nolint:exhaustruct
		require.ErrorIs(t, err, analysis.ErrEmptyInput)
		require.Zero(t, manager.Generation(), "a failed submission must not prime chat")
	})

	t.Run("returns the parsed verdict and primes follow-up chat", func(t *testing.T) {
		t.Parallel()
		generator := &fakeGenerator{raw: validRaw(t)} //nolint:exhaustruct
		completer := &fakeCompleter{}                 //nolint:exhaustruct
		manager := chat.NewManager(completer, logger)
		orchestrator := analysis.NewOrchestrator(generator, manager, logger)

		result, err := orchestrator.Submit(ctx, analysis.SubmitRequest{ //nolint:exhaustruct
			PitchText: "socks as a service",
			Language:  "French",
		})
		require.NoError(t, err)
		require.Equal(t, "Sock Subscription Saga", result.CaseTitle)
		require.Equal(t, models.StatusDrop, result.TrendAnalyst.Status)

		require.Contains(t, generator.request.Instruction, "French",
			"the requested language reaches the generation instruction")
		require.Equal(t, "focus_group_verdict", generator.request.SchemaName)

		require.Equal(t, 1, manager.Generation())
		_, err = manager.Send(ctx, "follow-up")
		require.NoError(t, err)
		require.Contains(t, completer.request.Instruction, "User Input: socks as a service",
			"the chat instruction carries the analysis context")
		require.Contains(t, completer.request.Instruction, "RUSTY (CTO): a cron job (Verdict: FAIL)")
	})

	t.Run("accepts an image-only submission", func(t *testing.T) {
		t.Parallel()
		generator := &fakeGenerator{raw: validRaw(t)} //nolint:exhaustruct
		completer := &fakeCompleter{}                 //nolint:exhaustruct
		manager := chat.NewManager(completer, logger)
		orchestrator := analysis.NewOrchestrator(generator, manager, logger)

		_, err := orchestrator.Submit(ctx, analysis.SubmitRequest{ //nolint:exhaustruct
			Image:    &models.Image{Base64: "aGVsbG8=", MimeType: "image/png"},
			Language: "English",
		})
		require.NoError(t, err)
		require.NotNil(t, generator.request.Image)

		_, err = manager.Send(ctx, "follow-up")
		require.NoError(t, err)
		require.Contains(t, completer.request.Instruction, "(+ Image Uploaded)")
	})

	t.Run("propagates a malformed response without priming chat", func(t *testing.T) {
		t.Parallel()
		generator := &fakeGenerator{raw: []byte(`{"case_title": ""}`)} //nolint:exhaustruct
		manager := chat.NewManager(&fakeCompleter{}, logger)           //nolint:exhaustruct
		orchestrator := analysis.NewOrchestrator(generator, manager, logger)

		_, err := orchestrator.Submit(ctx, analysis.SubmitRequest{ //nolint:exhaustruct
			PitchText: "pitch",
			Language:  "English",
		})
		require.ErrorIs(t, err, verdict.ErrMalformedResponse)
		require.Zero(t, manager.Generation())
	})

	t.Run("propagates a remote failure", func(t *testing.T) {
		t.Parallel()
		generator := &fakeGenerator{err: ai.ErrRemoteCall} //nolint:exhaustruct
		manager := chat.NewManager(&fakeCompleter{}, logger) //nolint:exhaustruct
		orchestrator := analysis.NewOrchestrator(generator, manager, logger)

		_, err := orchestrator.Submit(ctx, analysis.SubmitRequest{ //nolint:exhaustruct
			PitchText: "pitch",
			Language:  "English",
		})
		require.ErrorIs(t, err, ai.ErrRemoteCall)
		require.Zero(t, manager.Generation())
	})
}
