package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	fileServer := http.FileServer(http.Dir("./ui/static/"))
	mux.Handle("GET /static/", cacheForeverHeaders(http.StripPrefix("/static", fileServer)))

	session := alice.New(app.sessionManager.LoadAndSave, noSurf, commonContext)

	mux.Handle("GET /{$}", session.ThenFunc(app.home))
	mux.Handle("POST /analyze", session.ThenFunc(app.analyze))
	mux.Handle("POST /chat", session.ThenFunc(app.chatMessage))
	mux.Handle("POST /compare", session.ThenFunc(app.compare))
	mux.Handle("POST /language", session.ThenFunc(app.switchLanguage))
	mux.Handle("POST /cases/{caseID}/restore", session.ThenFunc(app.restoreCase))
	mux.Handle("POST /cases/{caseID}/rename", session.ThenFunc(app.renameCase))
	mux.Handle("POST /cases/clear", session.ThenFunc(app.clearCases))
	mux.Handle("POST /speech", session.ThenFunc(app.speak))

	mux.HandleFunc("GET /api/healthy", app.healthy)

	return app.recoverPanic(app.logRequest(app.secureHeaders(mux)))
}
