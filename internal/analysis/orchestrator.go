// Package analysis drives a single pitch submission end to end: request
// assembly, the remote generation call, schema validation and priming the
// follow-up chat session.
package analysis

import (
	"context"
	"github.com/myrjola/thejury/internal/ai"
	"github.com/myrjola/thejury/internal/chat"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/myrjola/thejury/internal/models"
	"github.com/myrjola/thejury/internal/verdict"
	"log/slog"
)

// ErrEmptyInput means neither pitch text nor an image was supplied.
var ErrEmptyInput = errors.NewSentinel("no pitch text or image supplied")

// Generator is the structured generation remote call consumed by the
// orchestrator.
type Generator interface {
	GenerateAnalysis(ctx context.Context, request ai.GenerationRequest) ([]byte, error)
}

type Orchestrator struct {
	generator Generator
	chat      *chat.Manager
	logger    *slog.Logger
}

func NewOrchestrator(generator Generator, chatManager *chat.Manager, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		generator: generator,
		chat:      chatManager,
		logger:    logger.With("source", "analysis.Orchestrator"),
	}
}

// SubmitRequest is one pitch submission. At least one of PitchText and Image
// must be present; Language selects the human language of the verdict text
// without affecting the schema or status vocabulary.
type SubmitRequest struct {
	PitchText string
	Image     *models.Image
	Language  string
}

// Submit runs one analysis. On success the chat session manager is primed
// with a context summary of the result so follow-up chat can continue the
// conversation. Remote and validation failures are returned unchanged; the
// orchestrator never retries.
func (o *Orchestrator) Submit(ctx context.Context, request SubmitRequest) (models.AnalysisResult, error) {
	if request.PitchText == "" && request.Image == nil {
		return models.AnalysisResult{}, errors.Wrap(ErrEmptyInput, "submit analysis")
	}

	raw, err := o.generator.GenerateAnalysis(ctx, ai.GenerationRequest{
		Instruction: juryInstruction(request.Language),
		PitchText:   request.PitchText,
		Image:       request.Image,
		Schema:      verdict.ResponseSchema(),
		SchemaName:  "focus_group_verdict",
	})
	if err != nil {
		return models.AnalysisResult{}, errors.Wrap(err, "generate analysis")
	}

	result, err := verdict.Parse(raw)
	if err != nil {
		return models.AnalysisResult{}, errors.Wrap(err, "validate analysis")
	}

	summary := chat.ContextSummary(request.PitchText, request.Image != nil, result)
	generation := o.chat.Prime(summary, request.Language)
	o.logger.LogAttrs(ctx, slog.LevelInfo, "analysis complete",
		slog.String("case_title", result.CaseTitle),
		slog.Int("chat_generation", generation))

	return result, nil
}
