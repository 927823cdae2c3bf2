package locale_test

import (
	"testing"

	"github.com/myrjola/thejury/internal/locale"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("falls back to English for unknown codes", func(t *testing.T) {
		t.Parallel()
		language, strings := locale.Get("xx")
		require.Equal(t, "en", language.Code)
		require.Equal(t, "Verdict First. Launch Second.", strings.Tagline)
	})

	t.Run("marks Arabic as right-to-left", func(t *testing.T) {
		t.Parallel()
		language, _ := locale.Get("ar")
		require.True(t, language.RTL)
		require.Equal(t, "Arabic", language.PromptName)
	})

	t.Run("every language has a complete translation table", func(t *testing.T) {
		t.Parallel()
		for _, language := range locale.Languages() {
			_, strings := locale.Get(language.Code)
			require.NotEmpty(t, strings.Tagline, language.Code)
			require.NotEmpty(t, strings.RoastBtn, language.Code)
			require.NotEmpty(t, strings.CrossExamine, language.Code)
			require.NotEmpty(t, strings.ClearRecords, language.Code)
		}
	})
}
