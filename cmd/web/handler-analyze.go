package main

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/myrjola/thejury/internal/ai"
	"github.com/myrjola/thejury/internal/analysis"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/myrjola/thejury/internal/locale"
	"github.com/myrjola/thejury/internal/models"
	"github.com/myrjola/thejury/internal/verdict"
)

const maxUploadBytes = 10 << 20

// errEvidenceTooLarge means the uploaded evidence exceeds maxUploadBytes.
var errEvidenceTooLarge = errors.NewSentinel("evidence upload exceeds size limit")

// analyze runs the pitch through the focus group and appends the verdict to
// the case history. Responds with the courtroom partial for htmx swaps.
func (app *application) analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	pitch := strings.TrimSpace(r.PostFormValue("pitch"))
	language := app.resolveLanguage(r)

	image, err := formImage(r)
	switch {
	case err == nil:
	case errors.Is(err, errEvidenceTooLarge):
		app.clientError(w, r, http.StatusRequestEntityTooLarge)
		return
	default:
		app.clientError(w, r, http.StatusUnsupportedMediaType)
		return
	}

	result, err := app.orchestrator.Submit(ctx, analysis.SubmitRequest{
		PitchText: pitch,
		Image:     image,
		Language:  language.PromptName,
	})
	switch {
	case err == nil:
	case errors.Is(err, analysis.ErrEmptyInput):
		app.clientError(w, r, http.StatusUnprocessableEntity)
		return
	case errors.Is(err, ai.ErrRemoteCall), errors.Is(err, verdict.ErrMalformedResponse):
		app.clientError(w, r, http.StatusBadGateway)
		return
	default:
		app.serverError(w, r, err)
		return
	}

	caseFile, err := app.cases.Append(ctx, pitch, image, result)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	generation := app.chat.Generation()
	app.sessionManager.Put(ctx, chatGenerationSessionKey, generation)

	app.logger.LogAttrs(ctx, slog.LevelInfo, "verdict reached",
		slog.String("case_id", caseFile.ID), slog.String("case_title", result.CaseTitle))

	data := verdictTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Case:             caseFile,
		ChatGeneration:   generation,
		History:          app.chat.History(),
	}
	if caseFile.Image != nil {
		data.ImageDataURL = caseFile.Image.DataURL()
	}

	h := app.htmx.NewHandler(w, r)
	if h.IsHxRequest() {
		app.renderPartial(w, r, http.StatusOK, "home", "verdict", data)
		return
	}
	app.render(w, r, http.StatusOK, "home", homeTemplateData{
		BaseTemplateData: data.BaseTemplateData,
		Cases:            app.cases.List(ctx),
	})
}

// resolveLanguage reads the language from the form falling back to the
// session, persisting a valid selection back to the session.
func (app *application) resolveLanguage(r *http.Request) locale.Language {
	ctx := r.Context()
	code := r.PostFormValue("language")
	if code == "" {
		code = app.sessionManager.GetString(ctx, languageSessionKey)
	}
	language, _ := locale.Get(code)
	app.sessionManager.Put(ctx, languageSessionKey, language.Code)
	return language
}

// formImage extracts the optional evidence screenshot from the multipart
// form. A missing file is not an error; a non-image payload is.
func formImage(r *http.Request) (*models.Image, error) {
	file, header, err := r.FormFile("evidence")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil //nolint:nilnil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read evidence upload")
	}
	defer file.Close()

	// Read one byte past the limit so an oversized upload is rejected
	// instead of silently truncated.
	payload, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read evidence payload")
	}
	if len(payload) > maxUploadBytes {
		return nil, errors.Wrap(errEvidenceTooLarge, "read evidence payload")
	}
	if len(payload) == 0 {
		return nil, nil //nolint:nilnil
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(payload)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, errors.New("evidence upload is not an image", slog.String("mime_type", mimeType))
	}

	return &models.Image{
		Base64:   base64.StdEncoding.EncodeToString(payload),
		MimeType: mimeType,
	}, nil
}
