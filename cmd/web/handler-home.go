package main

import (
	"net/http"

	"github.com/myrjola/thejury/internal/models"
)

type homeTemplateData struct {
	BaseTemplateData

	Cases []models.CaseFile
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	data := homeTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Cases:            app.cases.List(r.Context()),
	}

	app.render(w, r, http.StatusOK, "home", data)
}
