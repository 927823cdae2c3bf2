package chat

import (
	"fmt"
	"github.com/myrjola/thejury/internal/models"
	"strings"
)

// pitchExcerptLimit caps the pitch excerpt included in a context summary.
const pitchExcerptLimit = 200

// ContextSummary condenses a completed analysis into the digest used to
// prime follow-up chat: a capped pitch excerpt plus each persona's rationale
// and status.
func ContextSummary(pitchText string, hasImage bool, result models.AnalysisResult) string {
	imageNote := ""
	if hasImage {
		imageNote = " (+ Image Uploaded)"
	}
	return fmt.Sprintf(`User Input: %s%s

%s`, pitchExcerpt(pitchText), imageNote, personaDigest(result))
}

// ReloadedContextSummary is the ContextSummary variant used when restoring a
// stored case file, prefixed to mark the analysis as historical.
func ReloadedContextSummary(caseName, pitchText string, result models.AnalysisResult) string {
	return fmt.Sprintf(`[HISTORICAL CASE RELOADED: %q]
User Input: %s

%s`, caseName, pitchExcerpt(pitchText), personaDigest(result))
}

func personaDigest(result models.AnalysisResult) string {
	return fmt.Sprintf(`RUSTY (CTO): %s (Verdict: %s)
JULES (Gen-Z): %s (Verdict: %s)
BARB (Mom): %s (Verdict: %s)`,
		result.Engineer.Thought, result.Engineer.Status,
		result.TrendAnalyst.Vibe, result.TrendAnalyst.Status,
		result.BudgetKeeper.Concerns, result.BudgetKeeper.Status,
	)
}

func pitchExcerpt(pitchText string) string {
	runes := []rune(pitchText)
	if len(runes) <= pitchExcerptLimit {
		return pitchText
	}
	return strings.TrimSpace(string(runes[:pitchExcerptLimit])) + "..."
}

// moderatorInstruction encodes the three persona voices, the supplied
// context summary and the cross-examination protocol that directs the remote
// side to use its web-search capability for competitor comparisons.
func moderatorInstruction(contextSummary, language string) string {
	return fmt.Sprintf(`You are the moderator and collective voice of "THE JURY".
You consist of three specific characters:

1. RUSTY (Grumpy Senior Engineer)
2. JULES (Gen-Z Trend Analyst)
3. BARB (The Budget Keeper / Mom)

You have just analyzed the user's product.

CONTEXT OF ANALYSIS:
%s

Answer the user's follow-up questions. You can answer as the group moderator
summarizing their views, or let specific personas (Rusty, Jules, Barb) speak
directly if the question targets them.

CROSS-EXAMINATION PROTOCOL:
If the user asks to compare/cross-examine against a competitor, you MUST use
your web search capability to find real-time data on the competitor
(Pricing, Features, Recent Scandals).
The Personas must aggressively compare the User's Product vs. The Competitor.
- RUSTY checks tech stack/features.
- JULES checks relevance/cool factor.
- BARB checks price/value.

Keep the distinct tones:
- Rusty: Technical, grumpy, curt.
- Jules: Slang-heavy, aesthetic-focused, casual.
- Barb: Practical, worried about money/safety.

OUTPUT INSTRUCTION: The user has requested the verdict in %s.
You must translate the response fully, BUT maintain the specific persona archetypes:
- RUSTY: Use technical jargon in the target language.
- JULES: Use current Gen-Z slang appropriate for that language (e.g., use French 'verlan' or Spanish slang).
- BARB: Use 'Mom idioms' specific to that language's culture.`, contextSummary, language)
}
