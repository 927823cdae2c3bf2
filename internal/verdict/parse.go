package verdict

import (
	"encoding/json"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/myrjola/thejury/internal/models"
	"log/slog"
	"strings"
)

// ErrMalformedResponse means the remote reply failed schema validation.
var ErrMalformedResponse = errors.NewSentinel("malformed analysis response")

// Parse decodes raw model output and enforces the analysis result shape.
//
// The result is all-or-nothing: a parse failure, an absent or empty required
// field, or a status outside its persona-specific enumeration yields
// ErrMalformedResponse and no partial result.
func Parse(raw []byte) (models.AnalysisResult, error) {
	var result models.AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return models.AnalysisResult{}, errors.Wrap(ErrMalformedResponse, "decode analysis JSON",
			errors.SlogError(err))
	}
	if err := validate(result); err != nil {
		return models.AnalysisResult{}, err
	}
	return result, nil
}

func validate(result models.AnalysisResult) error {
	required := map[string]string{
		"case_title":   result.CaseTitle,
		"cto.thought":  result.Engineer.Thought,
		"cto.verdict":  result.Engineer.Verdict,
		"genZ.vibe":    result.TrendAnalyst.Vibe,
		"genZ.verdict": result.TrendAnalyst.Verdict,
		"mom.concerns": result.BudgetKeeper.Concerns,
		"mom.verdict":  result.BudgetKeeper.Verdict,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return errors.Wrap(ErrMalformedResponse, "required field is empty",
				slog.String("field", field))
		}
	}

	switch result.Engineer.Status {
	case models.StatusPass, models.StatusFail:
	default:
		return errors.Wrap(ErrMalformedResponse, "engineer status outside enumeration",
			slog.String("status", string(result.Engineer.Status)))
	}
	switch result.TrendAnalyst.Status {
	case models.StatusCop, models.StatusDrop:
	default:
		return errors.Wrap(ErrMalformedResponse, "trend analyst status outside enumeration",
			slog.String("status", string(result.TrendAnalyst.Status)))
	}
	switch result.BudgetKeeper.Status {
	case models.StatusTrust, models.StatusNoTrust:
	default:
		return errors.Wrap(ErrMalformedResponse, "budget keeper status outside enumeration",
			slog.String("status", string(result.BudgetKeeper.Status)))
	}

	return nil
}
