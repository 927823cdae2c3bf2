package main

import (
	"net/http"
	"strings"

	"github.com/myrjola/thejury/internal/ai"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/myrjola/thejury/internal/models"
)

// speak synthesises a persona's verdict text and streams back MP3 audio.
func (app *application) speak(w http.ResponseWriter, r *http.Request) {
	text := strings.TrimSpace(r.PostFormValue("text"))
	if text == "" {
		app.clientError(w, r, http.StatusUnprocessableEntity)
		return
	}

	audio, err := app.speech.Synthesize(r.Context(), models.Persona(r.PostFormValue("persona")), text)
	if errors.Is(err, ai.ErrRemoteCall) {
		app.clientError(w, r, http.StatusBadGateway)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(audio)
}
