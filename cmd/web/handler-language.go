package main

import (
	"net/http"

	"github.com/myrjola/thejury/internal/locale"
)

// switchLanguage stores the selected UI language in the session. The client
// reloads so every translated string re-renders.
func (app *application) switchLanguage(w http.ResponseWriter, r *http.Request) {
	language, _ := locale.Get(r.PostFormValue("language"))
	app.sessionManager.Put(r.Context(), languageSessionKey, language.Code)

	h := app.htmx.NewHandler(w, r)
	if h.IsHxRequest() {
		h.Refresh(true)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
