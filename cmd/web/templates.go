package main

import (
	"net/http"

	"github.com/myrjola/thejury/internal/locale"
	"github.com/myrjola/thejury/internal/models"
)

type BaseTemplateData struct {
	Language  locale.Language
	T         locale.Strings
	Languages []locale.Language
}

func (app *application) newBaseTemplateData(r *http.Request) BaseTemplateData {
	code := app.sessionManager.GetString(r.Context(), languageSessionKey)
	language, strings := locale.Get(code)
	return BaseTemplateData{
		Language:  language,
		T:         strings,
		Languages: locale.Languages(),
	}
}

// verdictTemplateData renders the courtroom view: the analysed case with its
// persona verdicts plus the follow-up chat transcript.
type verdictTemplateData struct {
	BaseTemplateData

	Case           models.CaseFile
	ImageDataURL   string
	ChatGeneration int
	History        []models.ChatTurn
}

type sidebarTemplateData struct {
	BaseTemplateData

	Cases []models.CaseFile
}
