// Package restore rehydrates UI and chat state from a stored case file so
// that follow-up chat behaves exactly as it does right after a fresh
// analysis.
package restore

import (
	"github.com/myrjola/thejury/internal/chat"
	"github.com/myrjola/thejury/internal/models"
	"log/slog"
)

type Controller struct {
	chat   *chat.Manager
	logger *slog.Logger
}

func NewController(chatManager *chat.Manager, logger *slog.Logger) *Controller {
	return &Controller{
		chat:   chatManager,
		logger: logger.With("source", "restore.Controller"),
	}
}

// View is the restored presentation state: the stored record plus the image
// payload re-encoded to a displayable form when present.
type View struct {
	CaseFile     models.CaseFile
	ImageDataURL string
}

// Restore re-primes the chat session manager with a context summary
// reconstructed from the stored case file, marked as a reloaded historical
// case. It returns the restored view and the new chat generation token.
//
// Priming replaces any prior session, which also invalidates the transient
// chat history scoped to it.
func (c *Controller) Restore(caseFile models.CaseFile, language string) (View, int) {
	summary := chat.ReloadedContextSummary(caseFile.Name, caseFile.PitchText, caseFile.Result)
	generation := c.chat.Prime(summary, language)
	c.logger.Debug("restored case file",
		slog.String("id", caseFile.ID), slog.Int("chat_generation", generation))

	view := View{CaseFile: caseFile} //nolint:exhaustruct
	if caseFile.Image != nil {
		view.ImageDataURL = caseFile.Image.DataURL()
	}
	return view, generation
}
