package chat_test

import (
	"strings"
	"testing"

	"github.com/myrjola/thejury/internal/chat"
	"github.com/myrjola/thejury/internal/models"
	"github.com/stretchr/testify/require"
)

func digestResult() models.AnalysisResult {
	return models.AnalysisResult{
		CaseTitle: "The Case",
		Engineer: models.EngineerVerdict{
			Thought: "engineer thought", Verdict: "engineer verdict", Status: models.StatusFail,
		},
		TrendAnalyst: models.TrendVerdict{
			Vibe: "trend vibe", Verdict: "trend verdict", Status: models.StatusDrop,
		},
		BudgetKeeper: models.BudgetVerdict{
			Concerns: "budget concerns", Verdict: "budget verdict", Status: models.StatusNoTrust,
		},
	}
}

func TestContextSummary(t *testing.T) {
	t.Parallel()

	t.Run("includes the pitch and every persona digest", func(t *testing.T) {
		t.Parallel()
		summary := chat.ContextSummary("my pitch", false, digestResult())

		require.Contains(t, summary, "User Input: my pitch")
		require.Contains(t, summary, "RUSTY (CTO): engineer thought (Verdict: FAIL)")
		require.Contains(t, summary, "JULES (Gen-Z): trend vibe (Verdict: DROP)")
		require.Contains(t, summary, "BARB (Mom): budget concerns (Verdict: NO TRUST)")
		require.NotContains(t, summary, "Image Uploaded")
	})

	t.Run("notes an uploaded image", func(t *testing.T) {
		t.Parallel()
		summary := chat.ContextSummary("my pitch", true, digestResult())
		require.Contains(t, summary, "User Input: my pitch (+ Image Uploaded)")
	})

	t.Run("caps the pitch excerpt at 200 characters", func(t *testing.T) {
		t.Parallel()
		longPitch := strings.Repeat("拍", 300)
		summary := chat.ContextSummary(longPitch, false, digestResult())

		require.Contains(t, summary, strings.Repeat("拍", 200)+"...")
		require.NotContains(t, summary, strings.Repeat("拍", 201))
	})
}

func TestReloadedContextSummary(t *testing.T) {
	t.Parallel()

	summary := chat.ReloadedContextSummary("Case Name", "my pitch", digestResult())

	require.True(t, strings.HasPrefix(summary, `[HISTORICAL CASE RELOADED: "Case Name"]`))
	require.Contains(t, summary, "User Input: my pitch")
	require.Contains(t, summary, "BARB (Mom): budget concerns (Verdict: NO TRUST)")
}
