package verdict_test

import (
	"encoding/json"
	"testing"

	"github.com/myrjola/thejury/internal/models"
	"github.com/myrjola/thejury/internal/verdict"
	"github.com/stretchr/testify/require"
)

func validResponse() map[string]any {
	return map[string]any{
		"case_title": "The Left Socks Gambit",
		"cto": map[string]any{
			"thought": "A subscription backend for socks is a cron job and a spreadsheet.",
			"verdict": "Overengineered for what it does.",
			"status":  "FAIL",
		},
		"genZ": map[string]any{
			"vibe":    "Lowkey unserious but the branding slaps.",
			"verdict": "Would screenshot, would not subscribe.",
			"status":  "COP",
		},
		"mom": map[string]any{
			"concerns": "Why would anyone pay monthly for one sock?",
			"verdict":  "Keep your money, honey.",
			"status":   "NO TRUST",
		},
	}
}

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete response", func(t *testing.T) {
		t.Parallel()
		result, err := verdict.Parse(marshal(t, validResponse()))
		require.NoError(t, err)
		require.Equal(t, "The Left Socks Gambit", result.CaseTitle)
		require.Equal(t, models.StatusFail, result.Engineer.Status)
		require.Equal(t, models.StatusCop, result.TrendAnalyst.Status)
		require.Equal(t, models.StatusNoTrust, result.BudgetKeeper.Status)
	})

	t.Run("round-trips through JSON unchanged", func(t *testing.T) {
		t.Parallel()
		first, err := verdict.Parse(marshal(t, validResponse()))
		require.NoError(t, err)
		second, err := verdict.Parse(marshal(t, first))
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		t.Parallel()
		_, err := verdict.Parse([]byte(`{"case_title": "oops"`))
		require.ErrorIs(t, err, verdict.ErrMalformedResponse)
	})

	tests := []struct {
		name   string
		mutate func(response map[string]any)
	}{
		{
			name: "rejects an out-of-enum engineer status",
			mutate: func(response map[string]any) {
				response["cto"].(map[string]any)["status"] = "MAYBE"
			},
		},
		{
			name: "rejects a lowercased trend status",
			mutate: func(response map[string]any) {
				response["genZ"].(map[string]any)["status"] = "cop"
			},
		},
		{
			name: "rejects the one-word budget status",
			mutate: func(response map[string]any) {
				response["mom"].(map[string]any)["status"] = "NOTRUST"
			},
		},
		{
			name: "rejects a missing case title",
			mutate: func(response map[string]any) {
				delete(response, "case_title")
			},
		},
		{
			name: "rejects a whitespace-only verdict",
			mutate: func(response map[string]any) {
				response["mom"].(map[string]any)["verdict"] = "   "
			},
		},
		{
			name: "rejects an empty thought",
			mutate: func(response map[string]any) {
				response["cto"].(map[string]any)["thought"] = ""
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			response := validResponse()
			tt.mutate(response)
			result, err := verdict.Parse(marshal(t, response))
			require.ErrorIs(t, err, verdict.ErrMalformedResponse)
			require.Equal(t, models.AnalysisResult{}, result)
		})
	}
}
