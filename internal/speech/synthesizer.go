// Package speech reads verdicts aloud through the remote text-to-speech
// call. It is entirely outside the result/history core: its failures are
// surfaced to the UI only and never touch persisted state.
package speech

import (
	"context"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/myrjola/thejury/internal/models"
	"github.com/sashabaranov/go-openai"
	"log/slog"
)

// Speaker is the remote speech call consumed by the synthesizer.
type Speaker interface {
	Speak(ctx context.Context, text string, voice openai.SpeechVoice, speed float64) ([]byte, error)
}

// personaVoices is the fixed persona-to-voice-identity mapping.
var personaVoices = map[models.Persona]openai.SpeechVoice{
	models.PersonaEngineer:     openai.VoiceOnyx,
	models.PersonaTrendAnalyst: openai.VoiceNova,
	models.PersonaBudgetKeeper: openai.VoiceShimmer,
}

// speechSpeed keeps delivery steady across personas.
const speechSpeed = 1.0

type Synthesizer struct {
	speaker Speaker
	logger  *slog.Logger
}

func NewSynthesizer(speaker Speaker, logger *slog.Logger) *Synthesizer {
	return &Synthesizer{
		speaker: speaker,
		logger:  logger.With("source", "speech.Synthesizer"),
	}
}

// Synthesize returns MP3 audio of the text spoken in the persona's voice.
// Unknown personas fall back to the engineer's voice.
func (s *Synthesizer) Synthesize(ctx context.Context, persona models.Persona, text string) ([]byte, error) {
	voice, ok := personaVoices[persona]
	if !ok {
		voice = personaVoices[models.PersonaEngineer]
	}
	audio, err := s.speaker.Speak(ctx, text, voice, speechSpeed)
	if err != nil {
		return nil, errors.Wrap(err, "synthesize speech", slog.String("persona", string(persona)))
	}
	return audio, nil
}
