package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/myrjola/thejury/internal/ai"
	"github.com/myrjola/thejury/internal/chat"
	"github.com/myrjola/thejury/internal/errors"
)

// chatMessage handles one follow-up turn in the negotiation window.
func (app *application) chatMessage(w http.ResponseWriter, r *http.Request) {
	message := strings.TrimSpace(r.PostFormValue("message"))
	if message == "" {
		app.clientError(w, r, http.StatusUnprocessableEntity)
		return
	}

	if app.staleGeneration(r) {
		// The session belongs to an analysis that has since been replaced.
		app.clientError(w, r, http.StatusConflict)
		return
	}

	_, err := app.chat.Send(r.Context(), message)
	if err != nil {
		app.chatError(w, r, err)
		return
	}

	app.renderChat(w, r)
}

// compare runs a cross-examination turn against a named competitor. The
// competitor turn always goes through the web-search model.
func (app *application) compare(w http.ResponseWriter, r *http.Request) {
	competitor := strings.TrimSpace(r.PostFormValue("competitor"))
	if competitor == "" {
		app.clientError(w, r, http.StatusUnprocessableEntity)
		return
	}

	if app.staleGeneration(r) {
		app.clientError(w, r, http.StatusConflict)
		return
	}

	_, err := app.chat.Compare(r.Context(), competitor)
	if err != nil {
		app.chatError(w, r, err)
		return
	}

	app.renderChat(w, r)
}

func (app *application) chatError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, chat.ErrNotPrimed):
		app.clientError(w, r, http.StatusConflict)
	case errors.Is(err, ai.ErrRemoteCall):
		app.clientError(w, r, http.StatusBadGateway)
	default:
		app.serverError(w, r, err)
	}
}

// staleGeneration reports whether the browser's chat session token no longer
// matches the live chat session. Replies for replaced sessions are discarded
// instead of being appended to the new conversation. The token comes from the
// hidden generation field of the verdict partial; the session copy serves as
// fallback for requests without one.
func (app *application) staleGeneration(r *http.Request) bool {
	generation, err := strconv.Atoi(r.PostFormValue("generation"))
	if err != nil {
		generation = app.sessionManager.GetInt(r.Context(), chatGenerationSessionKey)
	}
	return generation != app.chat.Generation()
}

func (app *application) renderChat(w http.ResponseWriter, r *http.Request) {
	data := verdictTemplateData{ //nolint:exhaustruct
		BaseTemplateData: app.newBaseTemplateData(r),
		ChatGeneration:   app.chat.Generation(),
		History:          app.chat.History(),
	}
	app.renderPartial(w, r, http.StatusOK, "home", "chat-turns", data)
}
