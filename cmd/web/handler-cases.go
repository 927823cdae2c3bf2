package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/myrjola/thejury/internal/casefile"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/myrjola/thejury/internal/locale"
)

// restoreCase reloads a historical case file into the courtroom view and
// re-primes the chat session from its stored verdict.
func (app *application) restoreCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID := r.PathValue("caseID")

	caseFile, err := app.cases.Get(ctx, caseID)
	if errors.Is(err, casefile.ErrNotFound) {
		app.notFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	code := app.sessionManager.GetString(ctx, languageSessionKey)
	language, _ := locale.Get(code)
	view, generation := app.restorer.Restore(caseFile, language.PromptName)
	app.sessionManager.Put(ctx, chatGenerationSessionKey, generation)

	data := verdictTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Case:             view.CaseFile,
		ImageDataURL:     view.ImageDataURL,
		ChatGeneration:   generation,
		History:          app.chat.History(),
	}
	app.renderPartial(w, r, http.StatusOK, "home", "verdict", data)
}

// renameCase updates a stored case file's display name. Whitespace-only
// names leave the record untouched.
func (app *application) renameCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID := r.PathValue("caseID")
	name := r.PostFormValue("name")

	err := app.cases.Rename(ctx, caseID, name)
	if errors.Is(err, casefile.ErrNotFound) {
		app.notFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.logger.LogAttrs(ctx, slog.LevelDebug, "renamed case file",
		slog.String("case_id", caseID), slog.String("name", strings.TrimSpace(name)))

	app.renderSidebar(w, r)
}

// clearCases wipes the whole case history.
func (app *application) clearCases(w http.ResponseWriter, r *http.Request) {
	if err := app.cases.Clear(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.renderSidebar(w, r)
}

func (app *application) renderSidebar(w http.ResponseWriter, r *http.Request) {
	data := sidebarTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Cases:            app.cases.List(r.Context()),
	}
	app.renderPartial(w, r, http.StatusOK, "home", "sidebar", data)
}
