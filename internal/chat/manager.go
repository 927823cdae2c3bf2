// Package chat owns the single continuing conversation with the persona
// group. A session is scoped to the most recent analysis or restoration and
// is replaced wholesale each time one of those completes.
package chat

import (
	"context"
	"fmt"
	"github.com/myrjola/thejury/internal/ai"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/myrjola/thejury/internal/models"
	"log/slog"
	"strings"
	"sync"
)

// ErrNotPrimed means chat was attempted before any analysis or restoration
// primed a session.
var ErrNotPrimed = errors.NewSentinel("chat session not primed")

// Completer is the conversational remote call consumed by the manager.
type Completer interface {
	ChatCompletion(ctx context.Context, request ai.ChatRequest) (ai.ChatReply, error)
}

type session struct {
	generation  int
	instruction string
	history     []models.ChatTurn
}

// Manager holds at most one active chat session. Prime replaces the session
// unconditionally; Send and Compare forward turns to the active one.
//
// Callers are expected to issue one Send or Compare at a time per session.
// The generation token returned by Prime lets them detect and discard replies
// that arrive after the session has been superseded.
type Manager struct {
	completer Completer
	logger    *slog.Logger

	mu         sync.Mutex
	generation int
	session    *session
}

func NewManager(completer Completer, logger *slog.Logger) *Manager {
	return &Manager{ //nolint:exhaustruct
		completer: completer,
		logger:    logger.With("source", "chat.Manager"),
	}
}

// Prime (re)creates the single active session from a context summary and the
// requested output language. Any existing session is replaced, never merged.
// It returns the new session's generation token.
func (m *Manager) Prime(contextSummary, language string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	m.session = &session{
		generation:  m.generation,
		instruction: moderatorInstruction(contextSummary, language),
		history:     nil,
	}
	m.logger.Debug("primed chat session", "generation", m.generation)
	return m.generation
}

// Generation returns the active session's generation token, or zero when no
// session has been primed.
func (m *Manager) Generation() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return 0
	}
	return m.session.generation
}

// History returns a copy of the active session's transient chat history.
func (m *Manager) History() []models.ChatTurn {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil
	}
	history := make([]models.ChatTurn, len(m.session.history))
	copy(history, m.session.history)
	return history
}

// Send forwards a user message to the active session and returns the
// assistant's reply. When the reply carries grounding sources, a formatted
// evidence block is appended to the returned text.
func (m *Manager) Send(ctx context.Context, message string) (string, error) {
	return m.send(ctx, message, false)
}

// Compare sends the canonical cross-examination prompt for the given
// competitor, requesting the web-search capability for the turn.
func (m *Manager) Compare(ctx context.Context, competitorName string) (string, error) {
	message := fmt.Sprintf("Cross-examine my product against %s", competitorName)
	return m.send(ctx, message, true)
}

func (m *Manager) send(ctx context.Context, message string, webSearch bool) (string, error) {
	m.mu.Lock()
	if m.session == nil {
		m.mu.Unlock()
		return "", errors.Wrap(ErrNotPrimed, "send message")
	}
	generation := m.session.generation
	request := ai.ChatRequest{
		Instruction: m.session.instruction,
		History:     append([]models.ChatTurn(nil), m.session.history...),
		Message:     message,
		WebSearch:   webSearch,
	}
	m.mu.Unlock()

	reply, err := m.completer.ChatCompletion(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "chat completion", slog.Int("generation", generation))
	}

	text := appendSources(reply.Text, reply.Sources)

	m.mu.Lock()
	defer m.mu.Unlock()
	// A reply that arrives after the session was re-primed must not leak
	// into the new session's history.
	if m.session != nil && m.session.generation == generation {
		m.session.history = append(m.session.history,
			models.ChatTurn{Role: models.RoleUser, Text: message},
			models.ChatTurn{Role: models.RoleAssistant, Text: text},
		)
	}
	return text, nil
}

// appendSources formats grounding citations as a deterministic evidence
// block, one bullet per distinct source in the order the remote side
// returned them. Sources with a missing title or URI are omitted.
func appendSources(text string, sources []models.GroundingSource) string {
	var bullets []string
	seen := make(map[models.GroundingSource]bool, len(sources))
	for _, source := range sources {
		if source.Title == "" || source.URI == "" {
			continue
		}
		if seen[source] {
			continue
		}
		seen[source] = true
		bullets = append(bullets, fmt.Sprintf("- [%s](%s)", source.Title, source.URI))
	}
	if len(bullets) == 0 {
		return text
	}
	return text + "\n\n**EVIDENCE EXHIBIT (SOURCES):**\n" + strings.Join(bullets, "\n")
}
